package services

import (
	"context"
	"errors"
	"fmt"
	"guidance-service/internal/domain"
	"guidance-service/internal/platform/obs"
	"guidance-service/internal/ports"
	"strings"
)

// GuidanceService answers guidance queries against stored paths.
//
// It loads the requested path, builds an Evaluator over it and resolves the
// next waypoint by ID. Each query targets exactly one path.
type GuidanceService struct {
	Repo ports.PathRepository
}

func NewGuidanceService(repo ports.PathRepository) *GuidanceService {
	return &GuidanceService{Repo: repo}
}

// Return the stored path with its ordered waypoints.
func (s *GuidanceService) Path(ctx context.Context, pathID string) (_ *domain.StoredPath, err error) {
	defer obs.Time(ctx, "guidance.Path")(&err)

	pathID = strings.TrimSpace(pathID)
	if pathID == "" {
		return nil, errors.New("get path: pathID must be non-empty")
	}

	path, err := s.Repo.GetPath(ctx, pathID)
	if err != nil {
		return nil, fmt.Errorf("get path %q: %w", pathID, err)
	}

	return path, nil
}

// Return summaries of every stored path.
func (s *GuidanceService) Paths(ctx context.Context) (_ []domain.PathSummary, err error) {
	defer obs.Time(ctx, "guidance.Paths")(&err)

	paths, err := s.Repo.ListPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}

	return paths, nil
}

// Guide computes the instruction for a user at current walking towards waypointID on pathID.
func (s *GuidanceService) Guide(
	ctx context.Context,
	pathID string,
	current domain.Coordinates,
	waypointID domain.WaypointID,
) (_ domain.GuidanceResult, err error) {
	defer obs.Time(ctx, "guidance.Guide")(&err)

	path, err := s.Path(ctx, pathID)
	if err != nil {
		return domain.GuidanceResult{}, fmt.Errorf("guide: %w", err)
	}

	evaluator, err := NewEvaluator(path.Waypoints)
	if err != nil {
		return domain.GuidanceResult{}, fmt.Errorf("guide: path %q: %w", pathID, err)
	}

	next, ok := evaluator.Waypoint(waypointID)
	if !ok {
		return domain.GuidanceResult{}, fmt.Errorf(
			"guide: path %q waypoint %q: %w",
			pathID, waypointID, domain.ErrWaypointNotFound,
		)
	}

	result, err := evaluator.Evaluate(current, next)
	if err != nil {
		return domain.GuidanceResult{}, fmt.Errorf("guide: path %q: %w", pathID, err)
	}

	return result, nil
}
