package services

import (
	"fmt"
	"guidance-service/internal/domain"
)

// Distance (grid units) at or below which a waypoint and its successor are treated
// as the same spot, i.e. the path ends there.
const DeltaDistance = 1.0

// DeltaDistance in whole grid units, for the exact integer comparison.
const deltaDistanceUnits = int(DeltaDistance)

// Evaluator turns path geometry into the next guidance instruction.
//
// The path is copied and indexed once at construction and never mutated afterwards,
// so a single Evaluator is safe for concurrent use.
type Evaluator struct {
	path  []domain.Waypoint
	index map[domain.WaypointID]int
}

func NewEvaluator(path []domain.Waypoint) (*Evaluator, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("new evaluator: %w", domain.ErrInvalidPath)
	}

	index := make(map[domain.WaypointID]int, len(path))
	for i, wp := range path {
		if prev, ok := index[wp.ID]; ok {
			return nil, fmt.Errorf(
				"new evaluator: waypoint %q at positions %d and %d: %w",
				wp.ID, prev, i, domain.ErrDuplicateWaypoint,
			)
		}
		index[wp.ID] = i
	}

	return &Evaluator{
		path:  append([]domain.Waypoint(nil), path...),
		index: index,
	}, nil
}

// Number of waypoints in the path.
func (e *Evaluator) Len() int { return len(e.path) }

// Resolve a waypoint by ID.
func (e *Evaluator) Waypoint(id domain.WaypointID) (domain.Waypoint, bool) {
	i, ok := e.index[id]
	if !ok {
		return domain.Waypoint{}, false
	}
	return e.path[i], true
}

// Evaluate computes distance, event and direction for a user at current walking towards next.
func (e *Evaluator) Evaluate(current domain.Coordinates, next domain.Waypoint) (domain.GuidanceResult, error) {
	i, err := e.indexOf(next)
	if err != nil {
		return domain.GuidanceResult{}, fmt.Errorf("evaluate: %w", err)
	}

	event := e.eventAt(i)
	direction, err := e.directionFor(event, current, i)
	if err != nil {
		return domain.GuidanceResult{}, fmt.Errorf("evaluate: waypoint %q: %w", next.ID, err)
	}

	return domain.GuidanceResult{
		Distance:  current.Distance(next.Location),
		Event:     event,
		Direction: direction,
	}, nil
}

func (e *Evaluator) indexOf(wp domain.Waypoint) (int, error) {
	i, ok := e.index[wp.ID]
	// A matching ID with another location is a stale reference, not the same node.
	if !ok || e.path[i] != wp {
		return 0, fmt.Errorf("waypoint %q at %v: %w", wp.ID, wp.Location, domain.ErrWaypointNotFound)
	}
	return i, nil
}

func (e *Evaluator) successor(i int) (domain.Waypoint, error) {
	if i+1 >= len(e.path) {
		return domain.Waypoint{}, domain.ErrMissingSuccessor
	}
	return e.path[i+1], nil
}

func (e *Evaluator) eventAt(i int) domain.Event {
	if i == len(e.path)-1 {
		return domain.EventReachingDestinationAhead
	}

	following := e.path[i+1]
	if following.Location.Within(e.path[i].Location, deltaDistanceUnits) {
		return domain.EventReachingDestination
	}
	return domain.EventTurn
}

func (e *Evaluator) directionFor(event domain.Event, current domain.Coordinates, i int) (domain.Direction, error) {
	switch event {
	case domain.EventReachingDestinationAhead:
		// Final node: there is no further leg to measure against.
		return domain.DirectionAhead, nil
	case domain.EventTurn:
		sign, err := e.crossAt(current, i)
		if err != nil {
			return 0, err
		}
		return directionFromCross(sign, domain.DirectionBehind), nil
	case domain.EventReachingDestination:
		sign, err := e.crossAt(current, i)
		if err != nil {
			return 0, err
		}
		// Heading is unknown, so a collinear destination is assumed to be ahead.
		return directionFromCross(sign, domain.DirectionAhead), nil
	default:
		return 0, fmt.Errorf("resolve direction: unknown event %v", event)
	}
}

func (e *Evaluator) crossAt(current domain.Coordinates, i int) (int, error) {
	following, err := e.successor(i)
	if err != nil {
		return 0, err
	}
	return domain.CrossSign(current, e.path[i].Location, following.Location), nil
}

func directionFromCross(sign int, collinear domain.Direction) domain.Direction {
	switch {
	case sign < 0:
		return domain.DirectionLeft
	case sign > 0:
		return domain.DirectionRight
	default:
		return collinear
	}
}
