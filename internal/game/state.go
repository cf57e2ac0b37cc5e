// Package game provides the main game loop and state management.
package game

import (
	"github.com/samdwyer/dungeoncrawl/internal/camera"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/movement"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Mode represents the current game mode.
type Mode int

const (
	// ModeExplore is the default mode while enemies remain.
	ModeExplore Mode = iota
	// ModeCleared means every enemy has been caught.
	ModeCleared
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// State holds everything the phases read and write.
type State struct {
	Dungeon  *world.Dungeon
	Entities *entity.World
	Enemies  *gamedata.EnemyRegistry
	Viewport *camera.Viewport
	Player   entity.ID
	Mode     Mode
	Seed     int64
	Message  string // Shown on the status line until replaced
}

// Tick carries one tick's input and the results phases report back.
type Tick struct {
	Number  int
	Input   movement.Direction
	Outcome movement.Outcome
	Removed int
}
