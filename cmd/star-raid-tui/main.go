// Command star-raid-tui plays the game in a terminal.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tsujio/game-star-raid/config"
	"github.com/tsujio/game-star-raid/shooter"
)

// Ticks a key stays held after its last press or auto-repeat.
const latchTicks = 8

var keyRunes = map[rune]shooter.Key{
	'a': shooter.KeyLeft,
	'd': shooter.KeyRight,
	'w': shooter.KeyUp,
	's': shooter.KeyDown,
	'h': shooter.KeyLeft,
	'l': shooter.KeyRight,
	'k': shooter.KeyUp,
	'j': shooter.KeyDown,
	' ': shooter.KeyFire,
	'z': shooter.KeyFire,
}

var keyCodes = map[tcell.Key]shooter.Key{
	tcell.KeyLeft:  shooter.KeyLeft,
	tcell.KeyRight: shooter.KeyRight,
	tcell.KeyUp:    shooter.KeyUp,
	tcell.KeyDown:  shooter.KeyDown,
}

type app struct {
	screen  tcell.Screen
	core    *shooter.Game
	latch   *keyLatch
	sound   *sound
	started bool
	over    bool
}

// handleEvent applies one terminal event and reports whether to keep running.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'p') {
			a.core.TogglePause()
			return true
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
			a.start()
			return true
		}
		if ev.Key() == tcell.KeyEnter {
			if !a.started || a.over {
				a.start()
			}
			return true
		}

		if k, ok := keyCodes[ev.Key()]; ok {
			a.latch.press(k)
		} else if k, ok := keyRunes[ev.Rune()]; ok && ev.Key() == tcell.KeyRune {
			a.latch.press(k)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) start() {
	a.core.Reset()
	a.latch.reset()
	a.started = true
	a.over = false
}

func (a *app) tick() {
	if !a.started || a.over {
		return
	}
	a.latch.apply(a.core.Input())
	a.core.Tick()
	a.sound.playEvents(a.core.Events())
	if a.core.GameOver() {
		a.over = true
	}
}

func (a *app) draw() {
	s := a.core.Snapshot()
	g := renderSnapshot(s)

	status := fmt.Sprintf("SCORE %-6d BEST %-6d HP %d  LV %.1f", s.HUD.Score, s.HUD.Best, max(s.HUD.HP, 0), s.Difficulty)
	switch {
	case !a.started:
		overlay(g, "STAR RAID", "arrows/wasd move  space fire", "p pause  r restart  q quit", "", "press enter")
	case a.over:
		overlay(g, "GAME OVER", fmt.Sprintf("score %d", s.Score), "", "press enter")
	case s.Paused:
		overlay(g, "PAUSED")
	}

	a.screen.Clear()
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c, _ := g.at(col, row)
			a.screen.SetContent(col, row, c.ch, nil, c.style)
		}
	}
	for i, ch := range []rune(status) {
		a.screen.SetContent(i, g.rows, ch, nil, tcell.StyleDefault.Reverse(true))
	}
	a.screen.Show()
}

func overlay(g *grid, lines ...string) {
	top := (g.rows - len(lines)) / 2
	for i, l := range lines {
		g.text((g.cols-len(l))/2, top+i, l, tcell.StyleDefault.Bold(true))
	}
}

func (a *app) run(fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(fmt.Errorf("failed to create screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		log.Fatal(fmt.Errorf("failed to init screen: %w", err))
	}

	a := &app{
		screen: screen,
		core:   shooter.NewGame(cfg.Params(), cfg.Random()),
		latch:  newKeyLatch(latchTicks),
	}
	if !cfg.Mute {
		if a.sound, err = newSound(); err != nil {
			log.Printf("sound disabled: %v", err)
		}
	}

	a.run(cfg.TUIFPS)
	a.sound.close()
	screen.Fini()

	if a.started {
		log.Printf("final score=%d best=%d", a.core.Score(), a.core.HUD().Best)
	}
}
