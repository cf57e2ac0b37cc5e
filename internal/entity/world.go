// Package entity stores game entities as IDs with parallel attribute tables.
package entity

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// ID identifies an entity. IDs start at 1 and are never reused.
type ID int

// String returns the numeric ID.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Render describes how an entity is drawn.
type Render struct {
	Glyph rune
	Fg    tcell.Color
	Bg    tcell.Color
}

// World owns all entities and their attributes.
//
// Removal is deferred: QueueRemove records the request and Flush applies
// every pending removal at once, so a phase iterating a table never sees it
// shrink underneath it.
type World struct {
	nextID  ID
	alive   []bool // ID-1 -> alive
	pending []ID

	positions table[world.Point]
	renders   table[Render]
	tags      table[TagSet]
	kinds     table[string]
}

// NewWorld creates an empty entity world.
func NewWorld() *World {
	return &World{}
}

// Create allocates a new entity with no attributes.
func (w *World) Create() ID {
	w.nextID++
	w.alive = append(w.alive, true)
	return w.nextID
}

// IsAlive reports whether id refers to an entity that has not been removed.
func (w *World) IsAlive(id ID) bool {
	return id > 0 && int(id) <= len(w.alive) && w.alive[id-1]
}

// Len returns the number of live entities.
func (w *World) Len() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}

// SetPosition sets the entity's position.
func (w *World) SetPosition(id ID, p world.Point) {
	if w.IsAlive(id) {
		w.positions.set(id, p)
	}
}

// Position returns the entity's position.
func (w *World) Position(id ID) (world.Point, bool) {
	return w.positions.get(id)
}

// SetRender sets the entity's render descriptor.
func (w *World) SetRender(id ID, r Render) {
	if w.IsAlive(id) {
		w.renders.set(id, r)
	}
}

// Render returns the entity's render descriptor.
func (w *World) Render(id ID) (Render, bool) {
	return w.renders.get(id)
}

// SetKind records which definition the entity was spawned from.
func (w *World) SetKind(id ID, kind string) {
	if w.IsAlive(id) {
		w.kinds.set(id, kind)
	}
}

// Kind returns the definition ID the entity was spawned from.
func (w *World) Kind(id ID) (string, bool) {
	return w.kinds.get(id)
}

// AddTag adds a tag to the entity.
func (w *World) AddTag(id ID, t Tag) {
	if !w.IsAlive(id) {
		return
	}
	s, _ := w.tags.get(id)
	w.tags.set(id, s.With(t))
}

// Tags returns the entity's tag set.
func (w *World) Tags(id ID) TagSet {
	s, _ := w.tags.get(id)
	return s
}

// Tagged returns the IDs of all entities carrying t.
func (w *World) Tagged(t Tag) []ID {
	var out []ID
	for i, id := range w.tags.ids {
		if w.tags.values[i].Has(t) {
			out = append(out, id)
		}
	}
	return out
}

// Player returns the player entity and its position.
func (w *World) Player() (ID, world.Point, bool) {
	for _, id := range w.Tagged(TagPlayer) {
		if p, ok := w.positions.get(id); ok {
			return id, p, true
		}
	}
	return 0, world.Point{}, false
}

// EnemyPositions returns the position of every positioned enemy, keyed by ID.
func (w *World) EnemyPositions() map[ID]world.Point {
	out := make(map[ID]world.Point)
	for _, id := range w.Tagged(TagEnemy) {
		if p, ok := w.positions.get(id); ok {
			out[id] = p
		}
	}
	return out
}

// EachRenderable calls fn for every entity with both a position and a render descriptor.
func (w *World) EachRenderable(fn func(id ID, p world.Point, r Render)) {
	for i, id := range w.renders.ids {
		if p, ok := w.positions.get(id); ok {
			fn(id, p, w.renders.values[i])
		}
	}
}

// QueueRemove schedules id for removal at the next Flush.
func (w *World) QueueRemove(id ID) {
	if w.IsAlive(id) {
		w.pending = append(w.pending, id)
	}
}

// Pending returns the number of queued removals.
func (w *World) Pending() int {
	return len(w.pending)
}

// Flush applies all queued removals and returns how many entities were removed.
func (w *World) Flush() int {
	removed := 0
	for _, id := range w.pending {
		if !w.IsAlive(id) {
			continue // queued twice
		}
		w.positions.remove(id)
		w.renders.remove(id)
		w.tags.remove(id)
		w.kinds.remove(id)
		w.alive[id-1] = false
		removed++
	}
	w.pending = w.pending[:0]
	return removed
}
