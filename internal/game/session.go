package game

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeoncrawl/internal/camera"
	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/movement"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Session is one running dungeon, advanced a tick at a time.
type Session struct {
	state    *State
	schedule *Schedule
	ticks    int
}

// NewSession generates a dungeon from cfg and populates it.
// A nil renderer runs the session headless.
func NewSession(ctx context.Context, cfg config.Config, r Renderer) (*Session, error) {
	state, err := newState(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Session{
		state:    state,
		schedule: buildSchedule(r),
	}, nil
}

// newState builds the dungeon, entities and viewport for cfg.
func newState(ctx context.Context, cfg config.Config) (*State, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := world.NewRandom(seed)

	d, err := world.Generate(ctx, cfg.Params(), rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dungeon generation failed")
		return nil, fmt.Errorf("generate dungeon (seed %d): %w", seed, err)
	}

	registry, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load enemies: %w", err)
	}

	ents := entity.NewWorld()
	player := entity.Populate(ents, d, registry, rng)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("party.start_x", d.Start.X),
		attribute.Int("party.start_y", d.Start.Y),
		attribute.Int("enemies.spawned", len(ents.Tagged(entity.TagEnemy))),
		attribute.Int("enemies.kinds", registry.Count()),
		attribute.Bool("dungeon.connected", d.Connected()),
	)

	return &State{
		Dungeon:  d,
		Entities: ents,
		Enemies:  registry,
		Viewport: camera.New(d.Start, cfg.Display.Width, cfg.Display.Height),
		Player:   player,
		Mode:     ModeExplore,
		Seed:     seed,
	}, nil
}

// State returns the current game state.
func (s *Session) State() *State {
	return s.state
}

// Step runs one tick with the given input.
func (s *Session) Step(ctx context.Context, dir movement.Direction) Tick {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.tick")
	defer span.End()

	s.ticks++
	tick := Tick{Number: s.ticks, Input: dir}
	s.schedule.Execute(ctx, s.state, &tick)

	span.SetAttributes(
		attribute.Int("tick.number", tick.Number),
		attribute.String("tick.input", tick.Input.String()),
		attribute.String("tick.outcome", tick.Outcome.String()),
		attribute.Int("tick.removed", tick.Removed),
	)
	return tick
}

// Reload replaces the dungeon with one generated from cfg. On failure the
// current dungeon is kept and the error is returned.
func (s *Session) Reload(ctx context.Context, cfg config.Config) error {
	state, err := newState(ctx, cfg)
	if err != nil {
		return err
	}
	s.state = state
	s.ticks = 0
	return nil
}

// SetMessage sets the status line message.
func (s *Session) SetMessage(msg string) {
	s.state.Message = msg
}
