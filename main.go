package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/tsujio/game-star-raid/config"
	"github.com/tsujio/game-star-raid/shooter"
	"github.com/tsujio/game-star-raid/touchutil"
)

const (
	gameName      = "star-raid"
	stickDeadZone = 8
)

type gameScreen int

const (
	screenTitle gameScreen = iota
	screenPlaying
	screenGameOver
)

type Game struct {
	core   *shooter.Game
	stick  *touchutil.Stick
	sound  *sound
	screen gameScreen
	width  int
	height int
}

func (g *Game) Update() error {
	g.stick.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.screen {
	case screenTitle:
		if startPressed() {
			g.start()
		}
	case screenPlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.start()
			return nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.core.TogglePause()
		}

		readInput(g.core.Input(), g.stick)
		g.core.Tick()
		g.sound.playEvents(g.core.Events())

		if g.core.GameOver() {
			g.screen = screenGameOver
			log.Printf("game over: score=%d frame=%d %s", g.core.Score(), g.core.Frame(), g.killSummary())
		}
	case screenGameOver:
		if startPressed() || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.start()
		}
	}

	return nil
}

func (g *Game) start() {
	g.core.Reset()
	g.screen = screenPlaying
	log.Printf("match started: best=%d", g.core.HUD().Best)
}

func (g *Game) killSummary() string {
	return strings.Join(lo.Map(shooter.Kinds, func(k shooter.EnemyKind, _ int) string {
		return fmt.Sprintf("%s=%d", k, g.core.Kills(k))
	}), " ")
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.core.Snapshot()
	drawWorld(screen, s)

	switch g.screen {
	case screenTitle:
		drawTitle(screen, s)
	case screenPlaying:
		drawHUD(screen, s)
		if s.Paused {
			drawCentered(screen, s, "PAUSED\n\nP to resume")
		}
	case screenGameOver:
		drawHUD(screen, s)
		drawCentered(screen, s, fmt.Sprintf("GAME OVER\n\nSCORE %d\nBEST  %d\n\n%s\n\nEnter to retry", s.Score, s.HUD.Best, g.killSummary()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if len(cfg.Files) > 0 {
		log.Printf("loaded %s", strings.Join(cfg.Files, ", "))
	}

	params := cfg.Params()
	game := &Game{
		core:   shooter.NewGame(params, cfg.Random()),
		stick:  touchutil.NewStick(stickDeadZone),
		width:  int(params.ArenaWidth),
		height: int(params.ArenaHeight),
	}
	if !cfg.Mute {
		game.sound = newSound()
	}

	ebiten.SetWindowSize(int(params.ArenaWidth*cfg.Scale), int(params.ArenaHeight*cfg.Scale))
	ebiten.SetWindowTitle("Star Raid")

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
