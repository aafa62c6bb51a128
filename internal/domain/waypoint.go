package domain

// Identifies a waypoint within a single path.
type WaypointID string

// Represents a single node of a planned path.
// Two waypoints are the same node only if both ID and Location match.
type Waypoint struct {
	ID       WaypointID
	Location Coordinates
}

// A planned path as persisted by the path store.
// Waypoints are ordered in the direction of travel and never mutated once stored.
type StoredPath struct {
	ID        string
	Name      string
	Waypoints []Waypoint
}

// Lightweight listing view of a stored path.
type PathSummary struct {
	ID            string
	Name          string
	WaypointCount int
}
