package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsujio/game-util/mathutil"
)

func TestPickKind(t *testing.T) {
	cases := []struct {
		r, difficulty float64
		want          EnemyKind
	}{
		{0.9, 1.0, Basic},
		{0.9, 1.2, Weaver},
		{0.9, 1.4, Tank},
		{0.81, 1.4, Tank},
		{0.8, 1.4, Weaver},
		{0.6, 1.4, Weaver},
		{0.6, 1.1, Basic},
		{0.5, 2.0, Basic},
		{0.1, 3.0, Basic},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pickKind(c.r, c.difficulty), "r=%v difficulty=%v", c.r, c.difficulty)
	}
}

func TestKindTable(t *testing.T) {
	assert.Equal(t, 10, Basic.Score())
	assert.Equal(t, 20, Weaver.Score())
	assert.Equal(t, 50, Tank.Score())

	for _, k := range Kinds {
		assert.NotEqual(t, "unknown", k.String())
		assert.NotNil(t, kinds[k].move, "%s has no movement rule", k)
	}
	assert.Equal(t, "unknown", EnemyKind(99).String())

	assert.Less(t, kinds[Tank].speedFactor, kinds[Basic].speedFactor)
	assert.Greater(t, kinds[Weaver].speedFactor, kinds[Basic].speedFactor)
	assert.Greater(t, kinds[Basic].attack.vy, kinds[Tank].attack.vy)
	assert.Less(t, kinds[Basic].attack.w, kinds[Tank].attack.w)
}

func TestMoveWeaveReflects(t *testing.T) {
	e := &Enemy{Pos: mathutil.NewVector2D(448, 0), W: 30, H: 30, VX: 2}
	moveWeave(e, 480)
	assert.Equal(t, 450.0, e.Pos.X)
	assert.Equal(t, -2.0, e.VX)

	moveWeave(e, 480)
	assert.Equal(t, 448.0, e.Pos.X)

	e = &Enemy{Pos: mathutil.NewVector2D(1, 0), W: 30, H: 30, VX: -2}
	moveWeave(e, 480)
	assert.Equal(t, 0.0, e.Pos.X)
	assert.Equal(t, 2.0, e.VX)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "kill", EventKill.String())
	assert.Equal(t, "game-over", EventGameOver.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}
