package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/JnyJny/DungeonGenerator/internal/world"
)

// Renderer draws a dungeon with one terminal cell per grid cell.
type Renderer struct {
	screen  *Screen
	palette *Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the dungeon and a status line, then flushes the screen.
// Rooms are drawn background layer first so main rooms stay on top.
func (r *Renderer) Render(d *world.Dungeon, status string) {
	r.screen.Fill(r.palette.Background)

	width, height := r.screen.Size()
	grid := d.GridSpacing + 1
	for _, layer := range world.Layers {
		style := r.palette.Style(layer)
		for _, room := range d.Rooms {
			if room.Layer != layer {
				continue
			}
			r.drawRoom(room, grid, width, height-1, style)
		}
	}

	// Neighbor links are marked at both room centers
	for _, e := range d.Edges() {
		for _, room := range e {
			c := room.Center()
			r.plot(int(c.X)/grid, int(c.Y)/grid, width, height-1, '*', r.palette.Style(world.MainRoom).Bold(true))
		}
	}

	r.RenderMessage(status, height-1)
	r.screen.Show()
}

// drawRoom fills the cells covered by a room, clipped to the drawable area.
func (r *Renderer) drawRoom(room *world.Room, grid, width, height int, style tcell.Style) {
	x0 := room.Rect.X / grid
	y0 := room.Rect.Y / grid
	for y := y0; y < y0+room.GridHeight; y++ {
		for x := x0; x < x0+room.GridWidth; x++ {
			r.plot(x, y, width, height, room.Layer.Rune(), style)
		}
	}
}

func (r *Renderer) plot(x, y, width, height int, ch rune, style tcell.Style) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	r.screen.SetContent(x, y, ch, style)
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
