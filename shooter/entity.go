package shooter

import (
	"image/color"

	"github.com/tsujio/game-util/mathutil"
)

type Player struct {
	Pos          *mathutil.Vector2D
	W, H         float64
	Cooldown     int
	HP           int
	Invulnerable int
}

func newPlayer(params Params) *Player {
	return &Player{
		Pos: mathutil.NewVector2D(
			params.ArenaWidth/2-playerWidth/2,
			params.ArenaHeight-playerHeight*2.5,
		),
		W:  playerWidth,
		H:  playerHeight,
		HP: playerHP,
	}
}

func (p *Player) Rect() Rect {
	return NewRect(p.Pos, p.W, p.H)
}

type Bullet struct {
	Mark
	Pos   *mathutil.Vector2D
	W, H  float64
	VY    float64
	Color color.RGBA
	Enemy bool
}

func (b *Bullet) Rect() Rect {
	return NewRect(b.Pos, b.W, b.H)
}

type Enemy struct {
	Mark
	Pos       *mathutil.Vector2D
	W, H      float64
	HP, MaxHP int
	VX, VY    float64
	Kind      EnemyKind
	// Timer counts the ticks the enemy has been alive.
	Timer int
}

func (e *Enemy) Rect() Rect {
	return NewRect(e.Pos, e.W, e.H)
}

type Particle struct {
	Pos     *mathutil.Vector2D
	Vel     *mathutil.Vector2D
	Life    int
	MaxLife int
	Color   color.RGBA
	Size    float64
}

func (p *Particle) Removed() bool {
	return p.Life <= 0
}

type Star struct {
	Pos   *mathutil.Vector2D
	Speed float64
	Size  float64
	Color color.RGBA
}
