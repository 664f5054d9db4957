package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tsujio/game-star-raid/shooter"
	"golang.org/x/image/colornames"
)

// Width and height of a glyph in the debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

func drawWorld(dst *ebiten.Image, s *shooter.Snapshot) {
	dst.Fill(colornames.Black)

	for _, st := range s.Stars {
		vector.DrawFilledRect(dst, float32(st.X), float32(st.Y), float32(st.Size), float32(st.Size), st.Color, false)
	}

	for _, pt := range s.Particles {
		vector.DrawFilledCircle(dst, float32(pt.X), float32(pt.Y), float32(pt.Size), fade(pt.Color, pt.Alpha), true)
	}

	for _, e := range s.Enemies {
		drawRect(dst, e.Rect, e.Color)
		if e.HPRatio < 1 {
			bar := shooter.Rect{X: e.X, Y: e.Y - 5, W: e.W * e.HPRatio, H: 3}
			drawRect(dst, bar, colornames.Limegreen)
		}
	}

	for _, b := range s.Bullets {
		if b.Enemy {
			c := b.Rect.Center()
			vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(b.W/2), b.Color, true)
		} else {
			drawRect(dst, b.Rect, b.Color)
		}
	}

	if s.PlayerVisible() {
		drawPlayer(dst, s.Player)
	}
}

func drawPlayer(dst *ebiten.Image, p shooter.PlayerView) {
	var path vector.Path
	path.MoveTo(float32(p.X+p.W/2), float32(p.Y))
	path.LineTo(float32(p.X+p.W), float32(p.Y+p.H))
	path.LineTo(float32(p.X+p.W/2), float32(p.Y+p.H*0.75))
	path.LineTo(float32(p.X), float32(p.Y+p.H))
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := colornames.Deepskyblue.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = float32(r) / 0xffff
		vertices[i].ColorG = float32(g) / 0xffff
		vertices[i].ColorB = float32(b) / 0xffff
		vertices[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

func drawRect(dst *ebiten.Image, r shooter.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func drawHUD(dst *ebiten.Image, s *shooter.Snapshot) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("SCORE %d\nBEST  %d\nHP    %s", s.HUD.Score, s.HUD.Best, strings.Repeat("*", max(s.HUD.HP, 0))), 8, 8)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("LV %.1f\n%.0f FPS", s.Difficulty, ebiten.ActualFPS()), int(s.Width)-72, 8)
}

func drawTitle(dst *ebiten.Image, s *shooter.Snapshot) {
	drawCentered(dst, s, strings.Join([]string{
		"STAR RAID",
		"",
		"ARROWS / WASD  move",
		"SPACE / J      fire",
		"P              pause",
		"R              restart",
		"Q              quit",
		"",
		"Press Enter",
	}, "\n"))
}

func drawCentered(dst *ebiten.Image, s *shooter.Snapshot, text string) {
	lines := strings.Split(text, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	x := (int(s.Width) - width*glyphWidth) / 2
	y := (int(s.Height) - len(lines)*glyphHeight) / 2
	ebitenutil.DebugPrintAt(dst, text, x, y)
}
