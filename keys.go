package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/tsujio/game-star-raid/shooter"
	"github.com/tsujio/game-star-raid/touchutil"
)

var keyBindings = map[shooter.Key][]ebiten.Key{
	shooter.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	shooter.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	shooter.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	shooter.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	shooter.KeyFire:  {ebiten.KeySpace, ebiten.KeyJ, ebiten.KeyZ},
}

// readInput samples the keyboard and the touch stick into in.
func readInput(in *shooter.Input, stick *touchutil.Stick) {
	dir := stick.Direction()
	touched := map[shooter.Key]bool{
		shooter.KeyLeft:  dir.Left,
		shooter.KeyRight: dir.Right,
		shooter.KeyUp:    dir.Up,
		shooter.KeyDown:  dir.Down,
		shooter.KeyFire:  stick.Active(),
	}

	for _, k := range shooter.Keys {
		in.Set(k, touched[k] || lo.SomeBy(keyBindings[k], ebiten.IsKeyPressed))
	}
}

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
