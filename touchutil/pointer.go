package touchutil

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tsujio/game-util/mathutil"
)

var (
	justPressedTouchIDs = make([]ebiten.TouchID, 0)
)

// AppendNewPointers appends a pointer for every mouse press or screen touch
// that started this tick.
func AppendNewPointers(pointers []Pointer) []Pointer {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pointers = append(pointers, &mousePointer{
			button: ebiten.MouseButtonLeft,
		})
	}

	justPressedTouchIDs = inpututil.AppendJustPressedTouchIDs(justPressedTouchIDs[:0])
	for _, id := range justPressedTouchIDs {
		pointers = append(pointers, &touchPointer{
			id: id,
		})
	}

	return pointers
}

// Pointer follows one press from the tick it starts until it is released.
type Pointer interface {
	Update()
	IsJustReleased() bool
	Origin() *mathutil.Vector2D
	Position() *mathutil.Vector2D
}

type mousePointer struct {
	button      ebiten.MouseButton
	origin, pos *mathutil.Vector2D
}

func (m *mousePointer) Update() {
	x, y := ebiten.CursorPosition()
	m.pos = mathutil.NewVector2D(float64(x), float64(y))
	if m.origin == nil {
		m.origin = m.pos.Clone()
	}
}

func (m *mousePointer) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(m.button)
}

func (m *mousePointer) Origin() *mathutil.Vector2D {
	return m.origin
}

func (m *mousePointer) Position() *mathutil.Vector2D {
	return m.pos
}

type touchPointer struct {
	id          ebiten.TouchID
	origin, pos *mathutil.Vector2D
}

func (s *touchPointer) Update() {
	var x, y int
	if s.IsJustReleased() {
		x, y = inpututil.TouchPositionInPreviousTick(s.id)
	} else {
		x, y = ebiten.TouchPosition(s.id)
	}
	s.pos = mathutil.NewVector2D(float64(x), float64(y))
	if s.origin == nil {
		s.origin = s.pos.Clone()
	}
}

func (s *touchPointer) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(s.id)
}

func (s *touchPointer) Origin() *mathutil.Vector2D {
	return s.origin
}

func (s *touchPointer) Position() *mathutil.Vector2D {
	return s.pos
}
