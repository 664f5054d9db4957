package shooter

import (
	"image/color"
	"slices"

	"github.com/samber/lo"
)

type PlayerView struct {
	Rect
	HP           int
	Invulnerable bool
}

type EnemyView struct {
	Rect
	Kind    EnemyKind
	HPRatio float64
	Color   color.RGBA
}

type BulletView struct {
	Rect
	Enemy bool
	Color color.RGBA
}

type ParticleView struct {
	X, Y  float64
	Size  float64
	Alpha float64
	Color color.RGBA
}

type StarView struct {
	X, Y  float64
	Size  float64
	Color color.RGBA
}

// Snapshot is a detached copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width, Height float64

	Player    PlayerView
	Enemies   []EnemyView
	Bullets   []BulletView
	Particles []ParticleView
	Stars     []StarView

	Score      int
	HUD        HUD
	Difficulty float64
	Frame      int
	Paused     bool
	GameOver   bool
	Events     []Event
}

// PlayerVisible reports whether the player should be drawn this frame. The
// craft blinks while invulnerable.
func (s *Snapshot) PlayerVisible() bool {
	return !s.Player.Invulnerable || (s.Frame/4)%2 == 0
}

func (g *Game) Snapshot() *Snapshot {
	w := g.world
	p := w.Player
	return &Snapshot{
		Width:  w.Params.ArenaWidth,
		Height: w.Params.ArenaHeight,
		Player: PlayerView{
			Rect:         p.Rect(),
			HP:           p.HP,
			Invulnerable: p.Invulnerable > 0,
		},
		Enemies: lo.Map(w.Enemies, func(e *Enemy, _ int) EnemyView {
			return EnemyView{
				Rect:    e.Rect(),
				Kind:    e.Kind,
				HPRatio: float64(e.HP) / float64(e.MaxHP),
				Color:   e.Kind.Color(),
			}
		}),
		Bullets: lo.Map(w.Bullets, func(b *Bullet, _ int) BulletView {
			return BulletView{Rect: b.Rect(), Enemy: b.Enemy, Color: b.Color}
		}),
		Particles: lo.Map(w.Particles, func(pt *Particle, _ int) ParticleView {
			return ParticleView{
				X:     pt.Pos.X,
				Y:     pt.Pos.Y,
				Size:  pt.Size,
				Alpha: float64(pt.Life) / float64(pt.MaxLife),
				Color: pt.Color,
			}
		}),
		Stars: lo.Map(w.Stars, func(s *Star, _ int) StarView {
			return StarView{X: s.Pos.X, Y: s.Pos.Y, Size: s.Size, Color: s.Color}
		}),
		Score:      w.Score,
		HUD:        g.hud,
		Difficulty: w.Difficulty,
		Frame:      w.Frame,
		Paused:     g.paused,
		GameOver:   w.GameOver,
		Events:     slices.Clone(w.events),
	}
}
