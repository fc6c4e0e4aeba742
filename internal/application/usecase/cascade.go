package usecase

import "github.com/bnema/dumbdesk/internal/domain/entity"

// CascadePolicy places newly opened windows.
// Each new window is offset by Step from the most recently opened one;
// when that would push it past Bounds it wraps back to Origin.
type CascadePolicy struct {
	Origin entity.Point
	Step   entity.Point
	Bounds entity.Size // Zero disables wrapping
}

// DefaultCascadePolicy returns the policy used when none is configured.
func DefaultCascadePolicy() CascadePolicy {
	return CascadePolicy{
		Origin: entity.Point{X: 4, Y: 2},
		Step:   entity.Point{X: 4, Y: 2},
		Bounds: entity.Size{Width: 120, Height: 36},
	}
}

// Next returns the position for a window of the given size opened into state.
// The result depends only on state, so replays are deterministic.
func (p CascadePolicy) Next(state entity.SessionState, size entity.Size) entity.Point {
	if len(state.Windows) == 0 {
		return p.Origin
	}

	last := state.Windows[len(state.Windows)-1]
	candidate := last.Position.Add(p.Step.X, p.Step.Y)

	if p.Bounds.IsZero() {
		return candidate
	}
	if candidate.X < 0 || candidate.Y < 0 ||
		candidate.X+size.Width > p.Bounds.Width ||
		candidate.Y+size.Height > p.Bounds.Height {
		return p.Origin
	}
	return candidate
}
