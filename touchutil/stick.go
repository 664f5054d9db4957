package touchutil

import (
	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

// Direction is the set of directions a stick is pushed towards.
type Direction struct {
	Left, Right, Up, Down bool
}

// StickDirection maps the drag from origin to pos onto directions. Each axis
// counts once the drag along it exceeds deadZone.
func StickDirection(origin, pos *mathutil.Vector2D, deadZone float64) Direction {
	if origin == nil || pos == nil {
		return Direction{}
	}
	d := pos.Sub(origin)
	return Direction{
		Left:  d.X < -deadZone,
		Right: d.X > deadZone,
		Up:    d.Y < -deadZone,
		Down:  d.Y > deadZone,
	}
}

// Stick turns the oldest live pointer into a virtual joystick anchored where
// the press started.
type Stick struct {
	DeadZone float64
	pointers []Pointer
}

func NewStick(deadZone float64) *Stick {
	return &Stick{DeadZone: deadZone}
}

// Update tracks new presses and forgets released ones. Call once per tick.
func (s *Stick) Update() {
	s.pointers = AppendNewPointers(s.pointers)
	for _, p := range s.pointers {
		p.Update()
	}
	s.pointers = lo.Filter(s.pointers, func(p Pointer, _ int) bool {
		return !p.IsJustReleased()
	})
}

// Active reports whether any pointer is held.
func (s *Stick) Active() bool {
	return len(s.pointers) > 0
}

func (s *Stick) Direction() Direction {
	if len(s.pointers) == 0 {
		return Direction{}
	}
	p := s.pointers[0]
	return StickDirection(p.Origin(), p.Position(), s.DeadZone)
}
