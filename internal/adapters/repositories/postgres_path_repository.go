package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"guidance-service/internal/domain"
	"guidance-service/internal/platform/obs"
)

// Postgres-backed implementation of the PathRepository port.
// Expects a *sql.DB opened with the pgx stdlib driver.
type PostgresPathRepository struct{ DB *sql.DB }

func NewPostgresPathRepository(db *sql.DB) *PostgresPathRepository {
	return &PostgresPathRepository{DB: db}
}

// Return a path with its waypoints in travel order.
func (s *PostgresPathRepository) GetPath(ctx context.Context, pathID string) (_ *domain.StoredPath, err error) {
	defer obs.Time(ctx, "paths.repo.GetPath")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres path repository: DB is nil")
	}

	path := &domain.StoredPath{ID: pathID}
	err = s.DB.QueryRowContext(ctx, `SELECT name FROM paths WHERE path_id = $1;`, pathID).Scan(&path.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get path: %q: %w", pathID, domain.ErrPathNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get path: query paths table: %w", err)
	}

	query := `
	SELECT
		waypoint_id,
		x,
		y
	FROM waypoints
	WHERE path_id = $1
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query, pathID)
	if err != nil {
		return nil, fmt.Errorf("get path: query waypoints table: %w", err)
	}
	defer rows.Close()

	waypoints := make([]domain.Waypoint, 0, 32)
	for rows.Next() {
		var id string
		var x, y int
		if err := rows.Scan(&id, &x, &y); err != nil {
			return nil, fmt.Errorf("get path: scan row: %w", err)
		}
		waypoints = append(waypoints, domain.Waypoint{
			ID:       domain.WaypointID(id),
			Location: domain.Coordinates{X: x, Y: y},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get path: row iteration: %w", err)
	}

	path.Waypoints = waypoints
	return path, nil
}

// Return summaries for all stored paths.
func (s *PostgresPathRepository) ListPaths(ctx context.Context) (_ []domain.PathSummary, err error) {
	defer obs.Time(ctx, "paths.repo.ListPaths")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres path repository: DB is nil")
	}

	query := `
	SELECT
		p.path_id,
		p.name,
		COUNT(w.waypoint_id)
	FROM paths p
	LEFT JOIN waypoints w ON w.path_id = p.path_id
	GROUP BY p.path_id, p.name
	ORDER BY p.path_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list paths: query paths table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PathSummary, 0, 16)
	for rows.Next() {
		var p domain.PathSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.WaypointCount); err != nil {
			return nil, fmt.Errorf("list paths: scan row: %w", err)
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list paths: row iteration: %w", err)
	}

	return out, nil
}
