package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/camera"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Clear starts a new frame.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// Show presents the finished frame.
func (r *Renderer) Show() {
	r.screen.Show()
}

// DrawMap draws every map cell inside the viewport. Cells beyond the map
// edge are left blank.
func (r *Renderer) DrawMap(grid *world.Grid, vp *camera.Viewport) {
	width, height := vp.Size()
	offset := vp.Offset()

	for ly := 0; ly < height; ly++ {
		for lx := 0; lx < width; lx++ {
			p := offset.Add(world.Pt(lx, ly))
			if !grid.InBounds(p) {
				continue
			}
			tile := grid.At(p)
			r.screen.SetContent(lx, ly, tile.Rune(), r.getTileStyle(tile))
		}
	}
}

// DrawEntities draws every positioned entity that falls on the display.
func (r *Renderer) DrawEntities(entities *entity.World, vp *camera.Viewport) {
	entities.EachRenderable(func(_ entity.ID, p world.Point, rd entity.Render) {
		if !vp.Contains(p) {
			return
		}
		local := vp.ToLocal(p)
		style := tcell.StyleDefault.Foreground(rd.Fg).Background(rd.Bg).Bold(true)
		r.screen.SetContent(local.X, local.Y, rd.Glyph, style)
	})
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
