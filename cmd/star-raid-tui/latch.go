package main

import "github.com/tsujio/game-star-raid/shooter"

// keyLatch keeps a control held for a few ticks after each key event.
// Terminals report presses and auto-repeats but never releases.
type keyLatch struct {
	ticks int
	left  map[shooter.Key]int
}

func newKeyLatch(ticks int) *keyLatch {
	return &keyLatch{ticks: ticks, left: map[shooter.Key]int{}}
}

func (l *keyLatch) press(k shooter.Key) {
	l.left[k] = l.ticks
}

// apply writes the latched state into in and ages every latch by one tick.
func (l *keyLatch) apply(in *shooter.Input) {
	for _, k := range shooter.Keys {
		n := l.left[k]
		in.Set(k, n > 0)
		if n > 0 {
			l.left[k] = n - 1
		}
	}
}

func (l *keyLatch) reset() {
	clear(l.left)
}
