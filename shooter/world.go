package shooter

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/kamstrup/intmap"
	"github.com/tsujio/game-util/mathutil"
	"golang.org/x/image/colornames"
)

// World is the mutable state of one match. Every update phase receives the
// world explicitly and nothing else holds on to it between ticks.
type World struct {
	Params     Params
	Player     *Player
	Bullets    []*Bullet
	Enemies    []*Enemy
	Particles  []*Particle
	Stars      []*Star
	Score      int
	GameOver   bool
	Frame      int
	Difficulty float64

	random *rand.Rand
	events []Event
	kills  *intmap.Map[EnemyKind, int]
}

func newWorld(params Params, random *rand.Rand) *World {
	w := &World{
		Params:     params,
		Player:     newPlayer(params),
		Difficulty: Difficulty(0),
		random:     random,
		kills:      intmap.New[EnemyKind, int](int(numKinds)),
	}
	w.Stars = make([]*Star, params.StarCount)
	for i := range w.Stars {
		w.Stars[i] = w.newStar(w.random.Float64() * params.ArenaHeight)
	}
	return w
}

var starColors = []color.RGBA{
	colornames.White,
	colornames.Lightsteelblue,
	colornames.Lightyellow,
}

func (w *World) newStar(y float64) *Star {
	return &Star{
		Pos:   mathutil.NewVector2D(w.random.Float64()*w.Params.ArenaWidth, y),
		Speed: 0.5 + w.random.Float64()*2.5,
		Size:  1 + w.random.Float64()*2,
		Color: starColors[w.random.Intn(len(starColors))],
	}
}

// Difficulty grows by a fixed step for every full 1000 points of score.
func Difficulty(score int) float64 {
	return 1 + math.Floor(float64(score)/scorePerDifficultyStep)*difficultyStep
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) addBullet(b *Bullet) bool {
	if room(len(w.Bullets), w.Params.Limits.Bullets) == 0 {
		return false
	}
	w.Bullets = append(w.Bullets, b)
	return true
}

func (w *World) addEnemy(e *Enemy) bool {
	if room(len(w.Enemies), w.Params.Limits.Enemies) == 0 {
		return false
	}
	w.Enemies = append(w.Enemies, e)
	return true
}

func (w *World) addKill(kind EnemyKind) {
	n, _ := w.kills.Get(kind)
	w.kills.Put(kind, n+1)
}

type burst struct {
	count  int
	speed  float64
	life   int
	size   float64
	colors []color.RGBA
	// Particles leave within arc radians centred on angle.
	angle, arc float64
}

var (
	recoilBurst = burst{
		count:  3,
		speed:  2,
		life:   10,
		size:   2,
		colors: []color.RGBA{colornames.Lightcyan, colornames.Deepskyblue},
		angle:  math.Pi / 2,
		arc:    math.Pi / 3,
	}
	hitBurst = burst{
		count:  5,
		speed:  3,
		life:   15,
		size:   2,
		colors: []color.RGBA{colornames.Yellow, colornames.White},
		arc:    2 * math.Pi,
	}
	explosionBurst = burst{
		count:  20,
		speed:  5,
		life:   40,
		size:   3,
		colors: []color.RGBA{colornames.Orange, colornames.Orangered, colornames.Gold},
		arc:    2 * math.Pi,
	}
	damageBurst = burst{
		count:  30,
		speed:  6,
		life:   50,
		size:   3,
		colors: []color.RGBA{colornames.Red, colornames.White, colornames.Deepskyblue},
		arc:    2 * math.Pi,
	}
)

// spawnBurst emits up to b.count particles at pos and returns how many fit
// under the particle limit.
func (w *World) spawnBurst(pos *mathutil.Vector2D, b burst) int {
	n := min(b.count, room(len(w.Particles), w.Params.Limits.Particles))
	for i := 0; i < n; i++ {
		angle := b.angle - b.arc/2 + w.random.Float64()*b.arc
		speed := b.speed * (0.3 + 0.7*w.random.Float64())
		life := b.life/2 + w.random.Intn(b.life/2+1)
		w.Particles = append(w.Particles, &Particle{
			Pos:     pos.Clone(),
			Vel:     mathutil.NewVector2D(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Life:    life,
			MaxLife: life,
			Color:   b.colors[w.random.Intn(len(b.colors))],
			Size:    b.size,
		})
	}
	return n
}
