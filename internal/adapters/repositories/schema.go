package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
)

// Initialize the Postgres schema for path storage.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPathsQuery := `
	CREATE TABLE IF NOT EXISTS paths (
		path_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT ''
	);
	`

	createWaypointsQuery := `
	CREATE TABLE IF NOT EXISTS waypoints (
        path_id TEXT NOT NULL REFERENCES paths(path_id) ON DELETE CASCADE,
        seq INTEGER NOT NULL,
        waypoint_id TEXT NOT NULL,
        x INTEGER NOT NULL,
        y INTEGER NOT NULL,
        PRIMARY KEY (path_id, seq),
        UNIQUE (path_id, waypoint_id)
    );
	`

	statements := []string{
		createPathsQuery,
		createWaypointsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type WaypointSeed struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

type PathSeed struct {
	PathID    string         `json:"path_id"`
	Name      string         `json:"name"`
	Waypoints []WaypointSeed `json:"waypoints"`
}

// Read and validate path seeds from a JSON file.
func LoadPathSeeds(jsonPath string) ([]PathSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load path seeds: read %q: %w", jsonPath, err)
	}

	seeds, err := ParsePathSeeds(bytes)
	if err != nil {
		return nil, fmt.Errorf("load path seeds: %q: %w", jsonPath, err)
	}

	return seeds, nil
}

// Parse and validate path seeds. IDs are trimmed; waypoint IDs must be unique within a path.
func ParsePathSeeds(data []byte) ([]PathSeed, error) {
	var raw []PathSeed
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	seenPaths := make(map[string]struct{}, len(raw))
	out := make([]PathSeed, 0, len(raw))
	for i, item := range raw {
		pathID := strings.TrimSpace(item.PathID)
		if pathID == "" {
			return nil, fmt.Errorf("path at index %d: path_id cannot be empty", i+1)
		}
		if _, ok := seenPaths[pathID]; ok {
			return nil, fmt.Errorf("path at index %d: duplicate path_id %q", i+1, pathID)
		}
		seenPaths[pathID] = struct{}{}

		if len(item.Waypoints) == 0 {
			return nil, fmt.Errorf("path %q: waypoints cannot be empty", pathID)
		}

		seenWaypoints := make(map[string]struct{}, len(item.Waypoints))
		waypoints := make([]WaypointSeed, 0, len(item.Waypoints))
		for j, w := range item.Waypoints {
			id := strings.TrimSpace(w.ID)
			if id == "" {
				return nil, fmt.Errorf("path %q: waypoint at index %d: id cannot be empty", pathID, j+1)
			}
			if _, ok := seenWaypoints[id]; ok {
				return nil, fmt.Errorf("path %q: waypoint at index %d: duplicate id %q", pathID, j+1, id)
			}
			seenWaypoints[id] = struct{}{}
			if !fitsColumn(w.X) || !fitsColumn(w.Y) {
				return nil, fmt.Errorf("path %q: waypoint at index %d: coordinates %d,%d out of range", pathID, j+1, w.X, w.Y)
			}
			waypoints = append(waypoints, WaypointSeed{ID: id, X: w.X, Y: w.Y})
		}

		out = append(out, PathSeed{
			PathID:    pathID,
			Name:      strings.TrimSpace(item.Name),
			Waypoints: waypoints,
		})
	}

	return out, nil
}

// Upsert seeded paths. Existing waypoint rows of a seeded path are replaced.
func SeedPaths(ctx context.Context, db *sql.DB, seeds []PathSeed) error {
	if db == nil {
		return errors.New("seed paths: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed paths: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upsertPath, err := tx.PrepareContext(ctx, `
	INSERT INTO paths (path_id, name)
	VALUES ($1, $2)
	ON CONFLICT (path_id) DO UPDATE
	SET name = EXCLUDED.name;
	`)
	if err != nil {
		return fmt.Errorf("seed paths: prepare path upsert: %w", err)
	}
	defer upsertPath.Close()

	insertWaypoint, err := tx.PrepareContext(ctx, `
	INSERT INTO waypoints (path_id, seq, waypoint_id, x, y)
	VALUES ($1, $2, $3, $4, $5);
	`)
	if err != nil {
		return fmt.Errorf("seed paths: prepare waypoint insert: %w", err)
	}
	defer insertWaypoint.Close()

	for _, p := range seeds {
		if _, err := upsertPath.ExecContext(ctx, p.PathID, p.Name); err != nil {
			return fmt.Errorf("seed paths: upsert path_id=%q: %w", p.PathID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM waypoints WHERE path_id = $1;`, p.PathID); err != nil {
			return fmt.Errorf("seed paths: clear waypoints path_id=%q: %w", p.PathID, err)
		}

		for seq, w := range p.Waypoints {
			if _, err := insertWaypoint.ExecContext(ctx, p.PathID, seq, w.ID, w.X, w.Y); err != nil {
				return fmt.Errorf("seed paths: insert path_id=%q waypoint_id=%q: %w", p.PathID, w.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed paths: commit tx: %w", err)
	}

	return nil
}

// x and y are stored as INTEGER (int32).
func fitsColumn(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
