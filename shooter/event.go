package shooter

type EventKind int

const (
	EventFire EventKind = iota
	EventEnemyFire
	EventHit
	EventKill
	EventDamage
	EventGameOver
)

// Event records something that happened during a tick. Hosts use events to
// drive sound and logging; the simulation never reads them back.
type Event struct {
	Kind  EventKind
	Enemy EnemyKind
	X, Y  float64
}

var eventNames = [...]string{
	EventFire:      "fire",
	EventEnemyFire: "enemy-fire",
	EventHit:       "hit",
	EventKill:      "kill",
	EventDamage:    "damage",
	EventGameOver:  "game-over",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}
