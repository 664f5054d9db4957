package shooter

import (
	"math"

	"github.com/tsujio/game-util/mathutil"
)

// SpawnInterval is the number of ticks between enemy spawns at the given
// difficulty.
func SpawnInterval(difficulty float64) int {
	return int(math.Floor(math.Max(minSpawnInterval, maxSpawnInterval-difficulty*spawnIntervalStep)))
}

func spawnEnemies(w *World) {
	if w.Frame%SpawnInterval(w.Difficulty) != 0 {
		return
	}
	kind := pickKind(w.random.Float64(), w.Difficulty)
	w.addEnemy(newEnemy(w, kind))
}

func newEnemy(w *World, kind EnemyKind) *Enemy {
	row := &kinds[kind]
	hp := row.hp * int(math.Ceil(w.Difficulty))

	var vx float64
	if row.drift != 0 {
		vx = row.drift
		if w.random.Float64() < 0.5 {
			vx = -vx
		}
	}

	return &Enemy{
		Pos: mathutil.NewVector2D(
			w.random.Float64()*(w.Params.ArenaWidth-row.w),
			-row.h,
		),
		W:     row.w,
		H:     row.h,
		HP:    hp,
		MaxHP: hp,
		VX:    vx,
		VY:    baseEnemySpeed * row.speedFactor * w.Difficulty,
		Kind:  kind,
	}
}
