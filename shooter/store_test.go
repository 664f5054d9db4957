package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsujio/game-util/mathutil"
)

func TestCompactDropsMarked(t *testing.T) {
	a, b, c := &Bullet{}, &Bullet{}, &Bullet{}
	b.MarkForDeletion()

	got := Compact([]*Bullet{a, b, c})
	assert.Equal(t, []*Bullet{a, c}, got)
}

func TestCompactIsIdempotent(t *testing.T) {
	enemies := []*Enemy{{}, {}, {}, {}}
	enemies[0].MarkForDeletion()
	enemies[3].MarkForDeletion()

	once := Compact(enemies)
	twice := Compact(once)
	assert.Equal(t, once, twice)
	assert.Len(t, twice, 2)
}

func TestCompactParticlesByLife(t *testing.T) {
	alive := &Particle{Pos: mathutil.NewVector2D(0, 0), Life: 1, MaxLife: 10}
	dead := &Particle{Pos: mathutil.NewVector2D(0, 0), Life: 0, MaxLife: 10}
	overdue := &Particle{Pos: mathutil.NewVector2D(0, 0), Life: -3, MaxLife: 10}

	assert.Equal(t, []*Particle{alive}, Compact([]*Particle{dead, alive, overdue}))
}

func TestRoom(t *testing.T) {
	assert.Equal(t, 3, room(7, 10))
	assert.Equal(t, 0, room(10, 10))
	assert.Equal(t, 0, room(12, 10))
	assert.Greater(t, room(1<<20, 0), 1<<20)
}
