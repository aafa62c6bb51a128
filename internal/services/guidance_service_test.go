package services

import (
	"context"
	"errors"
	"guidance-service/internal/adapters/repositories"
	"guidance-service/internal/domain"
	"testing"
)

func TestGuidanceServiceGuide(t *testing.T) {
	repo := repositories.NewMemoryPathRepository(domain.StoredPath{
		ID:        "corner",
		Name:      "corner",
		Waypoints: []domain.Waypoint{wp("a", 0, 0), wp("b", 0, 5), wp("c", 5, 5)},
	})
	svc := NewGuidanceService(repo)

	got, err := svc.Guide(context.Background(), "corner", domain.Coordinates{X: 0, Y: 0}, "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Distance != 5 {
		t.Fatalf("distance = %v, want 5", got.Distance)
	}
	if got.Event != domain.EventTurn {
		t.Fatalf("event = %v, want turn", got.Event)
	}
	if got.Direction != domain.DirectionLeft {
		t.Fatalf("direction = %v, want left", got.Direction)
	}

	last, err := svc.Guide(context.Background(), "corner", domain.Coordinates{X: 5, Y: 0}, "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last.Event != domain.EventReachingDestinationAhead || last.Direction != domain.DirectionAhead {
		t.Fatalf("got %v/%v, want reaching_destination_ahead/ahead", last.Event, last.Direction)
	}
}

func TestGuidanceServiceErrors(t *testing.T) {
	repo := repositories.NewMemoryPathRepository(
		domain.StoredPath{ID: "corner", Waypoints: []domain.Waypoint{wp("a", 0, 0), wp("b", 0, 5)}},
		domain.StoredPath{ID: "empty"},
		domain.StoredPath{ID: "dup", Waypoints: []domain.Waypoint{wp("a", 0, 0), wp("a", 1, 1)}},
	)
	svc := NewGuidanceService(repo)
	ctx := context.Background()

	tests := []struct {
		pathID     string
		waypointID domain.WaypointID
		want       error
	}{
		{"missing", "a", domain.ErrPathNotFound},
		{"corner", "zzz", domain.ErrWaypointNotFound},
		{"empty", "a", domain.ErrInvalidPath},
		{"dup", "a", domain.ErrDuplicateWaypoint},
	}

	for _, tt := range tests {
		_, err := svc.Guide(ctx, tt.pathID, domain.Coordinates{}, tt.waypointID)
		if !errors.Is(err, tt.want) {
			t.Errorf("Guide(%q, %q) err = %v, want %v", tt.pathID, tt.waypointID, err, tt.want)
		}
	}

	if _, err := svc.Path(ctx, "  "); err == nil {
		t.Errorf("expected error for blank path id")
	}
}

func TestGuidanceServicePaths(t *testing.T) {
	repo := repositories.NewMemoryPathRepository(
		domain.StoredPath{ID: "b", Waypoints: []domain.Waypoint{wp("x", 0, 0)}},
		domain.StoredPath{ID: "a", Waypoints: []domain.Waypoint{wp("x", 0, 0), wp("y", 0, 3)}},
	)
	svc := NewGuidanceService(repo)

	paths, err := svc.Paths(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 || paths[0].ID != "a" || paths[0].WaypointCount != 2 {
		t.Fatalf("paths = %+v", paths)
	}
}
