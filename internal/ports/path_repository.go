package ports

import (
	"context"
	"guidance-service/internal/domain"
)

// Port: a boundary for retrieving planned paths from a data source.
// Paths are immutable once stored; implementations return them in travel order.
type PathRepository interface {
	// Retrieve a single path by ID. Returns domain.ErrPathNotFound when absent.
	GetPath(ctx context.Context, pathID string) (*domain.StoredPath, error)
	// List summaries of all stored paths.
	ListPaths(ctx context.Context) ([]domain.PathSummary, error)
}
