package shooter

import (
	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
	"golang.org/x/image/colornames"
)

func updatePlayer(w *World, in *Input) {
	p := w.Player

	d := mathutil.NewVector2D(0, 0)
	if in.Pressed(KeyLeft) {
		d.X -= playerSpeed
	}
	if in.Pressed(KeyRight) {
		d.X += playerSpeed
	}
	if in.Pressed(KeyUp) {
		d.Y -= playerSpeed
	}
	if in.Pressed(KeyDown) {
		d.Y += playerSpeed
	}
	p.Pos = p.Pos.Add(d)
	p.Pos.X = lo.Clamp(p.Pos.X, 0, w.Params.ArenaWidth-p.W)
	p.Pos.Y = lo.Clamp(p.Pos.Y, 0, w.Params.ArenaHeight-p.H)

	p.Cooldown = max(p.Cooldown-1, 0)
	p.Invulnerable = max(p.Invulnerable-1, 0)

	if in.Pressed(KeyFire) && p.Cooldown <= 0 {
		nose := mathutil.NewVector2D(p.Pos.X+p.W/2, p.Pos.Y)
		fired := w.addBullet(&Bullet{
			Pos:   mathutil.NewVector2D(nose.X-playerBulletWidth/2, nose.Y-playerBulletHeight),
			W:     playerBulletWidth,
			H:     playerBulletHeight,
			VY:    playerBulletSpeed,
			Color: colornames.Cyan,
		})
		if !fired {
			return
		}
		p.Cooldown = playerFireCooldown
		w.spawnBurst(nose, recoilBurst)
		w.emit(Event{Kind: EventFire, X: nose.X, Y: nose.Y})
	}
}

func updateBullets(w *World) {
	for _, b := range w.Bullets {
		b.Pos.Y += b.VY
		if b.Pos.Y < -bulletMargin || b.Pos.Y > w.Params.ArenaHeight+bulletMargin {
			b.MarkForDeletion()
		}
	}
}

func updateEnemies(w *World) {
	for _, e := range w.Enemies {
		row := &kinds[e.Kind]
		e.Timer++
		row.move(e, w.Params.ArenaWidth)
		e.Pos.Y += e.VY

		if a := row.attack; a != nil && e.Timer%a.period == 0 && w.random.Float64() < a.chance {
			x := e.Pos.X + e.W/2 - a.w/2
			y := e.Pos.Y + e.H
			fired := w.addBullet(&Bullet{
				Pos:   mathutil.NewVector2D(x, y),
				W:     a.w,
				H:     a.h,
				VY:    a.vy,
				Color: a.color,
				Enemy: true,
			})
			if fired {
				w.emit(Event{Kind: EventEnemyFire, Enemy: e.Kind, X: x, Y: y})
			}
		}

		if e.Pos.Y > w.Params.ArenaHeight {
			e.MarkForDeletion()
		}
	}
}

func updateParticles(w *World) {
	for _, p := range w.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
	}
}

func updateStars(w *World) {
	for _, s := range w.Stars {
		s.Pos.Y += s.Speed
		if s.Pos.Y > w.Params.ArenaHeight {
			s.Pos.Y = 0
			s.Pos.X = w.random.Float64() * w.Params.ArenaWidth
		}
	}
}
