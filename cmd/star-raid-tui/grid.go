package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/tsujio/game-star-raid/shooter"
)

// Arena pixels per terminal cell. Cells are about twice as tall as wide.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

type cell struct {
	ch    rune
	style tcell.Style
}

// grid is a character raster of the arena.
type grid struct {
	cols, rows int
	cells      []cell
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range g.cells {
		g.cells[i] = cell{ch: ' ', style: tcell.StyleDefault}
	}
	return g
}

func (g *grid) at(col, row int) (cell, bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return cell{}, false
	}
	return g.cells[row*g.cols+col], true
}

func (g *grid) set(col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = cell{ch: ch, style: style}
}

// point plots arena coordinates x, y.
func (g *grid) point(x, y float64, ch rune, style tcell.Style) {
	g.set(int(math.Floor(x/cellWidth)), int(math.Floor(y/cellHeight)), ch, style)
}

// rect fills every cell the arena rectangle covers.
func (g *grid) rect(r shooter.Rect, ch rune, style tcell.Style) {
	c0, r0 := int(math.Floor(r.X/cellWidth)), int(math.Floor(r.Y/cellHeight))
	c1, r1 := int(math.Ceil((r.X+r.W)/cellWidth)), int(math.Ceil((r.Y+r.H)/cellHeight))
	for row := r0; row < max(r1, r0+1); row++ {
		for col := c0; col < max(c1, c0+1); col++ {
			g.set(col, row, ch, style)
		}
	}
}

func (g *grid) text(col, row int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		g.set(col+i, row, ch, style)
	}
}

func fg(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

var enemyGlyphs = map[shooter.EnemyKind]rune{
	shooter.Basic:  'V',
	shooter.Weaver: 'W',
	shooter.Tank:   'M',
}

// renderSnapshot rasterizes s. The grid is sized to the arena.
func renderSnapshot(s *shooter.Snapshot) *grid {
	g := newGrid(int(math.Ceil(s.Width/cellWidth)), int(math.Ceil(s.Height/cellHeight)))

	for _, st := range s.Stars {
		g.point(st.X, st.Y, '.', fg(st.Color).Dim(true))
	}
	for _, pt := range s.Particles {
		ch := '*'
		if pt.Alpha < 0.5 {
			ch = '\''
		}
		g.point(pt.X, pt.Y, ch, fg(pt.Color))
	}
	for _, e := range s.Enemies {
		g.rect(e.Rect, enemyGlyphs[e.Kind], fg(e.Color).Bold(e.HPRatio >= 1))
	}
	for _, b := range s.Bullets {
		ch := '|'
		if b.Enemy {
			ch = 'o'
		}
		c := b.Rect.Center()
		g.point(c.X, c.Y, ch, fg(b.Color))
	}
	if s.PlayerVisible() {
		p := s.Player
		g.point(p.X+p.W/2, p.Y+p.H/2, 'A', tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true))
	}
	return g
}
