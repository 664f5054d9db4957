package shooter

// Key is a logical control, independent of any keyboard layout.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire

	numKeys
)

// Keys lists every logical control.
var Keys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyFire}

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyFire:
		return "fire"
	}
	return "unknown"
}

// Input is the latest known pressed state of each control. Hosts write it
// from their own event sources between ticks; the simulation only reads it.
type Input struct {
	held [numKeys]bool
}

func (in *Input) Set(k Key, pressed bool) {
	if k < 0 || k >= numKeys {
		return
	}
	in.held[k] = pressed
}

func (in *Input) Pressed(k Key) bool {
	if k < 0 || k >= numKeys {
		return false
	}
	return in.held[k]
}

func (in *Input) Clear() {
	in.held = [numKeys]bool{}
}
