package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/dungeoncrawl/internal/camera"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/movement"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Renderer draws a frame. It only reads game state.
type Renderer interface {
	Clear()
	DrawMap(grid *world.Grid, vp *camera.Viewport)
	DrawEntities(entities *entity.World, vp *camera.Viewport)
	RenderMessage(msg string, y int)
	Show()
}

// Phase names, in execution order.
const (
	PhaseInput        = "input"
	PhaseCollision    = "collision"
	PhaseFlush        = "flush"
	PhaseMapRender    = "map_render"
	PhaseEntityRender = "entity_render"
)

// buildSchedule returns the per-tick phase list.
//
// Input is the only writer of positions and the viewport. Collision only
// queues removals, and Flush applies them, so both render phases see the
// tick's final positions. A nil renderer drops the render phases.
func buildSchedule(r Renderer) *Schedule {
	phases := []Phase{
		NewPhase(PhaseInput, inputPhase),
		NewPhase(PhaseCollision, collisionPhase),
		NewPhase(PhaseFlush, flushPhase),
	}
	if r != nil {
		phases = append(phases,
			NewPhase(PhaseMapRender, func(_ context.Context, s *State, _ *Tick) {
				r.Clear()
				r.DrawMap(s.Dungeon.Grid, s.Viewport)
			}),
			NewPhase(PhaseEntityRender, func(_ context.Context, s *State, t *Tick) {
				r.DrawEntities(s.Entities, s.Viewport)
				_, height := s.Viewport.Size()
				r.RenderMessage(statusLine(s, t), height)
				r.Show()
			}),
		)
	}
	return NewSchedule(phases...)
}

// inputPhase moves the player one step in the requested direction.
func inputPhase(_ context.Context, s *State, t *Tick) {
	pos, ok := s.Entities.Position(s.Player)
	if !ok {
		return
	}
	next, outcome := movement.Resolve(pos, t.Input, s.Dungeon.Grid, s.Viewport)
	t.Outcome = outcome
	if outcome == movement.OutcomeMoved {
		s.Entities.SetPosition(s.Player, next)
	}
}

// collisionPhase queues every enemy standing on the player's cell for removal.
func collisionPhase(_ context.Context, s *State, t *Tick) {
	if !t.Outcome.Acted() {
		return
	}
	_, playerPos, ok := s.Entities.Player()
	if !ok {
		return
	}
	for id, p := range s.Entities.EnemyPositions() {
		if p == playerPos {
			s.Entities.QueueRemove(id)
			s.Message = fmt.Sprintf("Caught the %s!", enemyName(s, id))
		}
	}
}

// enemyName looks up the display name of the enemy's kind.
func enemyName(s *State, id entity.ID) string {
	kind, ok := s.Entities.Kind(id)
	if !ok || s.Enemies == nil {
		return "enemy"
	}
	if def := s.Enemies.GetByID(kind); def != nil {
		return def.Name
	}
	return kind
}

// flushPhase applies pending removals.
func flushPhase(_ context.Context, s *State, t *Tick) {
	t.Removed = s.Entities.Flush()
	if t.Removed > 0 && s.Mode == ModeExplore && len(s.Entities.Tagged(entity.TagEnemy)) == 0 {
		s.Mode = ModeCleared
		s.Message = "Dungeon cleared!"
	}
}

// statusLine summarises the tick for the row below the map.
func statusLine(s *State, t *Tick) string {
	enemies := len(s.Entities.Tagged(entity.TagEnemy))
	line := fmt.Sprintf("seed %d  enemies %d  turn %d  [arrows] move  [q] quit", s.Seed, enemies, t.Number)
	if s.Message != "" {
		line += "  " + s.Message
	}
	return line
}
