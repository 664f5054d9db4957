package shooter

import "math/rand"

// HUD holds the numbers shown next to the arena. They trail the live state
// by up to hudInterval ticks.
type HUD struct {
	Score int
	HP    int
	Best  int
}

// Game drives a match one tick at a time.
type Game struct {
	params Params
	random *rand.Rand
	world  *World
	input  *Input
	paused bool
	hud    HUD
}

func NewGame(params Params, random *rand.Rand) *Game {
	g := &Game{
		params: params,
		random: random,
		input:  &Input{},
	}
	g.Reset()
	return g
}

// Reset starts a new match. Only the input state and the best score survive.
func (g *Game) Reset() {
	g.world = newWorld(g.params, g.random)
	g.paused = false
	g.syncHUD()
}

func (g *Game) Input() *Input {
	return g.input
}

func (g *Game) TogglePause() {
	if g.world.GameOver {
		return
	}
	g.paused = !g.paused
}

func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) GameOver() bool {
	return g.world.GameOver
}

func (g *Game) Score() int {
	return g.world.Score
}

func (g *Game) Frame() int {
	return g.world.Frame
}

func (g *Game) HUD() HUD {
	return g.hud
}

// Kills returns how many enemies of kind were destroyed this match.
func (g *Game) Kills(kind EnemyKind) int {
	n, _ := g.world.kills.Get(kind)
	return n
}

// Events returns what happened during the last tick.
func (g *Game) Events() []Event {
	return g.world.events
}

// Tick advances the match by one step. A paused or finished match is left
// untouched.
func (g *Game) Tick() {
	w := g.world
	w.events = w.events[:0]
	if g.paused || w.GameOver {
		return
	}

	w.Frame++
	w.Difficulty = Difficulty(w.Score)

	updatePlayer(w, g.input)
	spawnEnemies(w)
	updateBullets(w)
	updateEnemies(w)
	updateParticles(w)
	updateStars(w)
	resolveCollisions(w)
	cleanup(w)

	if w.Frame%hudInterval == 0 || w.GameOver {
		g.syncHUD()
	}
}

func (g *Game) syncHUD() {
	g.hud.Score = g.world.Score
	g.hud.HP = g.world.Player.HP
	g.hud.Best = max(g.hud.Best, g.world.Score)
}
