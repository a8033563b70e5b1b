package components

import "github.com/yohamta/donburi"

type EventKind int

const (
	EventCoinCollected EventKind = iota
	EventPlayerDied
	EventSpawnReached
	EventLevelTransition
	EventSessionComplete
)

func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin-collected"
	case EventPlayerDied:
		return "player-died"
	case EventSpawnReached:
		return "spawn-reached"
	case EventLevelTransition:
		return "level-transition"
	case EventSessionComplete:
		return "session-complete"
	}
	return "unknown"
}

// EventData is published as its own entity and drained by the session after
// every tick.
type EventData struct {
	Kind     EventKind
	Target   string // Level id for transitions
	X, Y     float64
	Priority int // Spawn priority for EventSpawnReached
}

var Event = donburi.NewComponentType[EventData]()
