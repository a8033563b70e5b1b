// Package leveldata decodes level descriptors into typed entity records.
// It has no dependencies on ebitengine, donburi, or resolv. It is pure data.
package leveldata

import "strings"

// EndLevel is the level name that ends the session instead of loading.
const EndLevel = "end"

// IsEnd reports whether name is the session-complete sentinel.
func IsEnd(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), EndLevel)
}

// Kind is the closed set of entity kinds a level may contain.
type Kind int

const (
	KindWall Kind = iota
	KindSpike
	KindCoin
	KindCannon
	KindShadow
	KindSpawn
	KindText
	KindDoor
	kindCount
)

var categories = [kindCount]string{
	KindWall:   "walls",
	KindSpike:  "spikes",
	KindCoin:   "coins",
	KindCannon: "cannons",
	KindShadow: "shadows",
	KindSpawn:  "spawns",
	KindText:   "text",
	KindDoor:   "door",
}

// Category is the descriptor key for the kind.
func (k Kind) Category() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return categories[k]
}

func (k Kind) String() string { return k.Category() }

// KindOf looks up a descriptor category.
func KindOf(category string) (Kind, bool) {
	for k, c := range categories {
		if c == category {
			return Kind(k), true
		}
	}
	return 0, false
}

// Direction is one of the four cardinal directions, y-up.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ParseDirection accepts "up", "down", "left" or "right".
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return 0, false
}

// Vector returns the unit step for the direction.
func (d Direction) Vector() (x, y float64) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	}
	return 1, 0
}

func (d Direction) String() string {
	return [...]string{"up", "down", "left", "right"}[d]
}

// Rect is a positioned size.
type Rect struct {
	X, Y, W, H float64
}

type Wall struct {
	Rect
}

// Spike is a run of Length spike tiles starting at (X, Y), pointing
// toward Orientation.
type Spike struct {
	X, Y        float64
	Length      int
	Orientation Direction
}

type Coin struct {
	X, Y float64
}

// Cannon fires a bullet toward Direction every Period ticks.
type Cannon struct {
	X, Y      float64
	Direction Direction
	Period    int
}

type Shadow struct {
	Rect
}

// Spawn is a respawn trigger; higher Priority wins.
type Spawn struct {
	X, Y     float64
	Priority int
}

type Text struct {
	X, Y float64
	Text string
	Size float64
}

// Door requests a transition to Target when touched.
type Door struct {
	Rect
	Target string
}

// Entity is a tagged union: exactly the field matching Kind is set.
type Entity struct {
	Kind Kind

	Wall   *Wall
	Spike  *Spike
	Coin   *Coin
	Cannon *Cannon
	Shadow *Shadow
	Spawn  *Spawn
	Text   *Text
	Door   *Door
}

// Descriptor is a decoded level. Positions are in grid units until Scaled.
type Descriptor struct {
	Name     string
	StartX   float64
	StartY   float64
	Entities []Entity
}

// Count returns how many entities of kind the level has.
func (d *Descriptor) Count(kind Kind) int {
	n := 0
	for _, e := range d.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
