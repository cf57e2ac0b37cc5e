package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/movement"
)

// DirectionForKey maps arrow keys to movement directions.
// Every other key maps to DirNone.
func DirectionForKey(ev *tcell.EventKey) movement.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return movement.DirUp
	case tcell.KeyDown:
		return movement.DirDown
	case tcell.KeyLeft:
		return movement.DirLeft
	case tcell.KeyRight:
		return movement.DirRight
	default:
		return movement.DirNone
	}
}

// IsQuit reports whether the key should end the game.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
