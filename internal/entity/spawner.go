package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// SpawnPlayer creates the player entity at pos.
func SpawnPlayer(w *World, pos world.Point) ID {
	id := w.Create()
	w.AddTag(id, TagPlayer)
	w.SetPosition(id, pos)
	w.SetRender(id, Render{Glyph: '@', Fg: tcell.ColorWhite, Bg: tcell.ColorBlack})
	return id
}

// SpawnEnemy creates an enemy of the given kind at pos.
func SpawnEnemy(w *World, def *gamedata.EnemyDef, pos world.Point) ID {
	id := w.Create()
	w.AddTag(id, TagEnemy)
	w.SetKind(id, def.ID)
	w.SetPosition(id, pos)
	w.SetRender(id, Render{Glyph: def.GlyphRune(), Fg: def.TCellColor(), Bg: tcell.ColorBlack})
	return id
}

// Populate places the player at the dungeon start and one enemy at the center
// of every room except the first. It returns the player's ID.
func Populate(w *World, d *world.Dungeon, registry *gamedata.EnemyRegistry, rng gamedata.Roller) ID {
	player := SpawnPlayer(w, d.Start)

	if len(d.Rooms) < 2 {
		return player
	}
	for _, room := range d.Rooms[1:] {
		def := registry.SpawnRandom(rng)
		if def == nil {
			continue
		}
		SpawnEnemy(w, def, room.Center())
	}

	return player
}
