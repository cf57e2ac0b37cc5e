// Package movement turns requested directions into validated position changes.
package movement

import (
	"github.com/samdwyer/dungeoncrawl/internal/camera"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Direction is a requested step.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for a direction; unknown directions do not move.
func (d Direction) Delta() world.Point {
	switch d {
	case DirLeft:
		return world.Point{X: -1, Y: 0}
	case DirRight:
		return world.Point{X: 1, Y: 0}
	case DirUp:
		return world.Point{X: 0, Y: -1}
	case DirDown:
		return world.Point{X: 0, Y: 1}
	default:
		return world.Point{}
	}
}

// Outcome describes what a resolve call did.
type Outcome int

const (
	// OutcomeIdle means no step was requested.
	OutcomeIdle Outcome = iota
	// OutcomeMoved means the step was valid and committed.
	OutcomeMoved
	// OutcomeBlocked means the destination could not be entered; nothing changed.
	OutcomeBlocked
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Acted reports whether the actor took a step this tick.
func (o Outcome) Acted() bool {
	return o == OutcomeMoved
}

// Passability is the oracle consulted for every step.
type Passability interface {
	CanEnter(p world.Point) bool
}

// Resolve applies dir to current. A valid step returns the destination and
// recenters vp on it; an idle or blocked step returns current and leaves vp
// untouched.
func Resolve(current world.Point, dir Direction, grid Passability, vp *camera.Viewport) (world.Point, Outcome) {
	delta := dir.Delta()
	if delta.IsZero() {
		return current, OutcomeIdle
	}

	destination := current.Add(delta)
	if !grid.CanEnter(destination) {
		return current, OutcomeBlocked
	}

	if vp != nil {
		vp.OnMove(destination)
	}
	return destination, OutcomeMoved
}
