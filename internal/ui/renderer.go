package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wayfinder/internal/config"
	"github.com/samdwyer/wayfinder/internal/grid"
	"github.com/samdwyer/wayfinder/internal/sim"
)

const (
	tileWidth  = 2 // Terminal cells per tile, so tiles look square
	mapSpacing = 4 // Columns between the two maps
	mapTop     = 2 // Row where maps start, below the titles
)

// Renderer draws the world map and the explorer's knowledge side by side.
type Renderer struct {
	screen     *Screen
	area       *sim.Area
	background tcell.Color
	colors     map[string]tcell.Color
}

// NewRenderer creates a renderer for area. background is a hex color.
func NewRenderer(screen *Screen, area *sim.Area, background string) (*Renderer, error) {
	r := &Renderer{
		screen: screen,
		area:   area,
		colors: make(map[string]tcell.Color),
	}
	bg, err := r.color(background)
	if err != nil {
		return nil, err
	}
	r.background = bg
	return r, nil
}

// Start draws the full initial frame.
func (r *Renderer) Start() {
	r.drawAll()
	r.screen.Show()
}

// Update redraws what the tick changed.
func (r *Renderer) Update(s sim.Summary) {
	if s.Grew {
		// The knowledge map's origin may have moved; redraw everything.
		r.drawAll()
		r.screen.Show()
		return
	}

	r.drawWorldTile(s.From)
	r.drawWorldTile(s.To)

	pos := r.area.Explorer().Knowledge.Position()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r.drawKnowledgeTile(pos.Add(grid.Coord{Row: dr, Col: dc}))
		}
	}
	r.drawStatus()
	r.screen.Show()
}

func (r *Renderer) knowledgeX() int {
	return r.area.World().Width()*tileWidth + mapSpacing
}

func (r *Renderer) drawAll() {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(0, 0, "World", title)
	r.drawText(r.knowledgeX(), 0, "Explorer", title)

	m := r.area.World()
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			r.drawWorldTile(grid.Coord{Row: row, Col: col})
		}
	}

	k := r.area.Explorer().Knowledge
	for row := 0; row < k.Height(); row++ {
		for col := 0; col < k.Width(); col++ {
			r.drawKnowledgeTile(grid.Coord{Row: row, Col: col})
		}
	}
	r.drawStatus()
}

func (r *Renderer) drawWorldTile(c grid.Coord) {
	m := r.area.World()
	if !m.InBounds(c) {
		return
	}
	hex := m.TileAt(c).Color
	if c == r.area.Position() {
		hex = r.area.Explorer().Color
	}
	r.fill(c.Col*tileWidth, mapTop+c.Row, r.colorOrDefault(hex))
}

func (r *Renderer) drawKnowledgeTile(c grid.Coord) {
	explorer := r.area.Explorer()
	k := explorer.Knowledge
	if c.Row < 0 || c.Row >= k.Height() || c.Col < 0 || c.Col >= k.Width() {
		return
	}

	color := r.background
	if cell, ok := k.Cell(c.Row, c.Col); ok {
		switch {
		case c == k.Position():
			color = r.colorOrDefault(explorer.Color)
		case cell.Explored:
			color = r.colorOrDefault(explorer.ExploredColor)
		default:
			color = r.colorOrDefault(cell.Tile.Color)
		}
	}
	r.fill(r.knowledgeX()+c.Col*tileWidth, mapTop+c.Row, color)
}

func (r *Renderer) drawStatus() {
	m := r.area.World()
	k := r.area.Explorer().Knowledge
	y := mapTop + max(m.Height(), k.Height()) + 1

	line := fmt.Sprintf("tick %-6s %-10s at %-9s knowledge %dx%d explored %s",
		humanize.Comma(int64(r.area.Ticks())), r.area.Status(), r.area.Position(),
		k.Width(), k.Height(), humanize.Comma(int64(k.Explored())))
	width := r.knowledgeX() + k.Width()*tileWidth
	for x := 0; x < max(width, len(line)); x++ {
		r.screen.SetContent(x, y, ' ', tcell.StyleDefault)
	}
	r.drawText(0, y, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) fill(x, y int, color tcell.Color) {
	style := tcell.StyleDefault.Background(color)
	for i := 0; i < tileWidth; i++ {
		r.screen.SetContent(x+i, y, ' ', style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// color resolves a hex string, caching the result.
func (r *Renderer) color(hex string) (tcell.Color, error) {
	if c, ok := r.colors[hex]; ok {
		return c, nil
	}
	parsed, err := config.ParseColor(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	red, green, blue := parsed.RGB255()
	c := tcell.NewRGBColor(int32(red), int32(green), int32(blue))
	r.colors[hex] = c
	return c, nil
}

func (r *Renderer) colorOrDefault(hex string) tcell.Color {
	c, err := r.color(hex)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return c
}
