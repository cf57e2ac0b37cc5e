package game

import "context"

// Phase is one step of a tick.
type Phase interface {
	Name() string
	Run(ctx context.Context, s *State, t *Tick)
}

// PhaseFunc adapts a function into a Phase.
type PhaseFunc struct {
	name string
	fn   func(ctx context.Context, s *State, t *Tick)
}

// NewPhase creates a named phase from fn.
func NewPhase(name string, fn func(ctx context.Context, s *State, t *Tick)) PhaseFunc {
	return PhaseFunc{name: name, fn: fn}
}

// Name returns the phase name.
func (p PhaseFunc) Name() string { return p.name }

// Run executes the phase.
func (p PhaseFunc) Run(ctx context.Context, s *State, t *Tick) { p.fn(ctx, s, t) }

// Schedule runs phases in order, each to completion before the next starts.
type Schedule struct {
	phases []Phase
}

// NewSchedule creates a schedule from an ordered phase list.
func NewSchedule(phases ...Phase) *Schedule {
	copied := append([]Phase(nil), phases...)
	return &Schedule{phases: copied}
}

// Execute runs every phase once.
func (s *Schedule) Execute(ctx context.Context, state *State, tick *Tick) {
	for _, p := range s.phases {
		p.Run(ctx, state, tick)
	}
}

// Names returns the phase names in execution order.
func (s *Schedule) Names() []string {
	names := make([]string, 0, len(s.phases))
	for _, p := range s.phases {
		names = append(names, p.Name())
	}
	return names
}
