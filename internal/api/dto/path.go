package dto

type WaypointResponse struct {
	WaypointID string `json:"waypoint_id"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

type PathResponse struct {
	PathID    string             `json:"path_id"`
	Name      string             `json:"name"`
	Waypoints []WaypointResponse `json:"waypoints"`
}

type PathSummaryResponse struct {
	PathID        string `json:"path_id"`
	Name          string `json:"name"`
	WaypointCount int    `json:"waypoint_count"`
}

type ListPathsResponse struct {
	Paths []PathSummaryResponse `json:"paths"`
}
