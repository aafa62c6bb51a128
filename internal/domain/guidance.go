package domain

import "fmt"

// The navigational occurrence expected at the next waypoint.
type Event int

const (
	EventTurn Event = iota + 1
	EventReachingDestination
	EventReachingDestinationAhead
)

func (e Event) String() string {
	switch e {
	case EventTurn:
		return "turn"
	case EventReachingDestination:
		return "reaching_destination"
	case EventReachingDestinationAhead:
		return "reaching_destination_ahead"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

func (e Event) MarshalText() ([]byte, error) {
	switch e {
	case EventTurn, EventReachingDestination, EventReachingDestinationAhead:
		return []byte(e.String()), nil
	}
	return nil, fmt.Errorf("marshal event: unknown value %d", int(e))
}

// Relative bearing of an event, seen from the user's current position.
type Direction int

const (
	DirectionLeft Direction = iota + 1
	DirectionRight
	DirectionAhead
	DirectionBehind
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionAhead:
		return "ahead"
	case DirectionBehind:
		return "behind"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case DirectionLeft, DirectionRight, DirectionAhead, DirectionBehind:
		return []byte(d.String()), nil
	}
	return nil, fmt.Errorf("marshal direction: unknown value %d", int(d))
}

// The instruction a speech layer renders, e.g. "Turn left in 5 meters".
// Produced fresh per evaluation and owned by the caller.
type GuidanceResult struct {
	Distance  float64
	Event     Event
	Direction Direction
}
