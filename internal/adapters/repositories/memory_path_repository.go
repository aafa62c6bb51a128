package repositories

import (
	"context"
	"fmt"
	"guidance-service/internal/domain"
	"sort"
	"sync"
)

// In-memory implementation of the PathRepository port, used by tests and local runs.
type MemoryPathRepository struct {
	mu    sync.RWMutex
	paths map[string]domain.StoredPath
}

func NewMemoryPathRepository(paths ...domain.StoredPath) *MemoryPathRepository {
	r := &MemoryPathRepository{paths: make(map[string]domain.StoredPath, len(paths))}
	for _, p := range paths {
		r.Put(p)
	}
	return r
}

// Store or replace a path. The waypoint slice is copied.
func (r *MemoryPathRepository) Put(p domain.StoredPath) {
	p.Waypoints = append([]domain.Waypoint(nil), p.Waypoints...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths[p.ID] = p
}

func (r *MemoryPathRepository) GetPath(ctx context.Context, pathID string) (*domain.StoredPath, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.paths[pathID]
	if !ok {
		return nil, fmt.Errorf("memory path repository: %q: %w", pathID, domain.ErrPathNotFound)
	}

	p.Waypoints = append([]domain.Waypoint(nil), p.Waypoints...)
	return &p, nil
}

func (r *MemoryPathRepository) ListPaths(ctx context.Context) ([]domain.PathSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PathSummary, 0, len(r.paths))
	for _, p := range r.paths {
		out = append(out, domain.PathSummary{ID: p.ID, Name: p.Name, WaypointCount: len(p.Waypoints)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
