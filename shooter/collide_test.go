package shooter

import (
	"image/color"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsujio/game-util/mathutil"
)

func TestKillBasicWithOneShot(t *testing.T) {
	g := newTestGame(1)
	w := g.world
	// The player sits at (220, 540); its first bullet travels up through this box.
	e := &Enemy{Pos: mathutil.NewVector2D(225, 500), W: 30, H: 30, HP: 1, MaxHP: 1, Kind: Basic}
	w.Enemies = []*Enemy{e}

	g.Input().Set(KeyFire, true)
	g.Tick()

	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Bullets)
	assert.Equal(t, 10, w.Score)
	assert.Equal(t, 1, g.Kills(Basic))

	explosion := lo.CountBy(w.Particles, func(p *Particle) bool {
		return lo.Contains(explosionBurst.colors, p.Color)
	})
	assert.Equal(t, 20, explosion)
	assert.Len(t, w.Particles, recoilBurst.count+hitBurst.count+explosionBurst.count)

	kinds := lo.Map(g.Events(), func(e Event, _ int) EventKind { return e.Kind })
	assert.Equal(t, []EventKind{EventFire, EventHit, EventKill}, kinds)
}

func TestHitWithoutKill(t *testing.T) {
	w := newTestGame(1).world
	e := &Enemy{Pos: mathutil.NewVector2D(100, 100), W: 50, H: 50, HP: 3, MaxHP: 3, Kind: Tank}
	b := &Bullet{Pos: mathutil.NewVector2D(120, 120), W: 4, H: 12, VY: playerBulletSpeed}
	w.Enemies = []*Enemy{e}
	w.Bullets = []*Bullet{b}

	resolveCollisions(w)
	assert.True(t, b.Removed())
	assert.False(t, e.Removed())
	assert.Equal(t, 2, e.HP)
	assert.Zero(t, w.Score)
	assert.Len(t, w.Particles, hitBurst.count)
}

func TestBulletHitsOnlyFirstEnemy(t *testing.T) {
	w := newTestGame(1).world
	first := &Enemy{Pos: mathutil.NewVector2D(100, 100), W: 30, H: 30, HP: 1, MaxHP: 1, Kind: Basic}
	second := &Enemy{Pos: mathutil.NewVector2D(105, 105), W: 30, H: 30, HP: 1, MaxHP: 1, Kind: Weaver}
	b := &Bullet{Pos: mathutil.NewVector2D(110, 110), W: 4, H: 12, VY: playerBulletSpeed}
	w.Enemies = []*Enemy{first, second}
	w.Bullets = []*Bullet{b}

	resolveCollisions(w)
	assert.True(t, first.Removed())
	assert.False(t, second.Removed())
	assert.Equal(t, 1, second.HP)
	assert.Equal(t, 10, w.Score)
}

func TestMarkedEnemyIgnoresLaterBullets(t *testing.T) {
	w := newTestGame(1).world
	e := &Enemy{Pos: mathutil.NewVector2D(100, 100), W: 30, H: 30, HP: 1, MaxHP: 1, Kind: Tank}
	b1 := &Bullet{Pos: mathutil.NewVector2D(110, 110), W: 4, H: 12, VY: playerBulletSpeed}
	b2 := &Bullet{Pos: mathutil.NewVector2D(112, 110), W: 4, H: 12, VY: playerBulletSpeed}
	w.Enemies = []*Enemy{e}
	w.Bullets = []*Bullet{b1, b2}

	resolveCollisions(w)
	assert.True(t, b1.Removed())
	assert.False(t, b2.Removed())
	assert.Equal(t, 50, w.Score)
	assert.Equal(t, 0, e.HP)
}

func TestNoHitWithoutOverlap(t *testing.T) {
	w := newTestGame(1).world
	e := &Enemy{Pos: mathutil.NewVector2D(100, 100), W: 30, H: 30, HP: 2, MaxHP: 2, Kind: Weaver}
	w.Enemies = []*Enemy{e}
	w.Bullets = []*Bullet{
		{Pos: mathutil.NewVector2D(130, 110), W: 4, H: 12, VY: playerBulletSpeed},
		{Pos: mathutil.NewVector2D(96, 110), W: 4, H: 12, VY: playerBulletSpeed},
		{Pos: mathutil.NewVector2D(110, 130), W: 4, H: 12, VY: playerBulletSpeed},
		{Pos: mathutil.NewVector2D(110, 88), W: 4, H: 12, VY: playerBulletSpeed},
	}

	resolveCollisions(w)
	assert.Equal(t, 2, e.HP)
	for _, b := range w.Bullets {
		assert.False(t, b.Removed())
	}
}

func TestEnemyBulletsDoNotHitEnemies(t *testing.T) {
	w := newTestGame(1).world
	e := &Enemy{Pos: mathutil.NewVector2D(100, 100), W: 30, H: 30, HP: 1, MaxHP: 1, Kind: Basic}
	b := &Bullet{Pos: mathutil.NewVector2D(110, 110), W: 6, H: 6, VY: 4, Enemy: true}
	w.Enemies = []*Enemy{e}
	w.Bullets = []*Bullet{b}

	resolveCollisions(w)
	assert.Equal(t, 1, e.HP)
	assert.False(t, b.Removed())
}

func enemyBulletAt(x, y float64) *Bullet {
	return &Bullet{Pos: mathutil.NewVector2D(x, y), W: 6, H: 6, Enemy: true, Color: color.RGBA{255, 0, 0, 255}}
}

func TestFatalHitEndsMatch(t *testing.T) {
	g := newTestGame(1)
	w := g.world
	w.Player.HP = 1
	// Bullet hitbox is (230, 550, 20, 20), contact hitbox is (225, 545, 30, 30).
	w.Bullets = []*Bullet{enemyBulletAt(235, 555), enemyBulletAt(240, 560)}
	w.Enemies = []*Enemy{{Pos: mathutil.NewVector2D(225, 545), W: 30, H: 30, HP: 1, MaxHP: 1, Kind: Basic}}

	g.Tick()

	assert.Equal(t, 0, w.Player.HP)
	assert.True(t, w.GameOver)
	assert.True(t, g.GameOver())
	assert.Equal(t, 0, g.HUD().HP)

	damage := lo.CountBy(g.Events(), func(e Event) bool { return e.Kind == EventDamage })
	assert.Equal(t, 1, damage)
	assert.Equal(t, EventGameOver, g.Events()[len(g.Events())-1].Kind)

	frame := w.Frame
	g.Tick()
	assert.Equal(t, frame, w.Frame, "a finished match does not advance")
	assert.Equal(t, 0, w.Player.HP)
}

func TestSimultaneousHitsStack(t *testing.T) {
	w := newTestGame(1).world
	w.Bullets = []*Bullet{enemyBulletAt(235, 555)}
	w.Enemies = []*Enemy{{Pos: mathutil.NewVector2D(225, 545), W: 30, H: 30, HP: 1, MaxHP: 1, Kind: Basic}}

	resolveCollisions(w)
	assert.Equal(t, playerHP-2, w.Player.HP)
	assert.Equal(t, invulnerableFrames, w.Player.Invulnerable)
	assert.False(t, w.GameOver)
	assert.True(t, w.Bullets[0].Removed())
	assert.True(t, w.Enemies[0].Removed())
	assert.Len(t, w.Particles, 2*damageBurst.count)
}

func TestInvulnerablePlayerIsNotHit(t *testing.T) {
	w := newTestGame(1).world
	w.Player.Invulnerable = 10
	b := enemyBulletAt(235, 555)
	w.Bullets = []*Bullet{b}

	resolveCollisions(w)
	assert.Equal(t, playerHP, w.Player.HP)
	assert.False(t, b.Removed())
}

func TestBulletGrazingVisualBoxMisses(t *testing.T) {
	w := newTestGame(1).world
	// Inside the player's visual box but outside the inset bullet hitbox.
	b := enemyBulletAt(221, 541)
	w.Bullets = []*Bullet{b}

	resolveCollisions(w)
	require.Equal(t, playerHP, w.Player.HP)
	assert.False(t, b.Removed())
}
