package components

import (
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton describing the loaded level and its spawn
// registry.
type LevelData struct {
	Name      string
	StartX    float64
	StartY    float64
	Bounds    gamemath.AABB
	OriginX   float64 // World position of space coordinate (0, 0)
	OriginY   float64
	Collected int

	Best *SpawnPointData // Highest-priority spawn touched so far
}

var Level = donburi.NewComponentType[LevelData]()

// Touch records a spawn point and reports whether it became the respawn
// point. Equal priority keeps the earlier one.
func (l *LevelData) Touch(sp SpawnPointData) bool {
	if l.Best != nil && sp.Priority <= l.Best.Priority {
		return false
	}
	l.Best = &sp
	return true
}

// RespawnPoint is the best touched spawn, or the level start.
func (l *LevelData) RespawnPoint() (x, y float64) {
	if l.Best != nil {
		return l.Best.X, l.Best.Y
	}
	return l.StartX, l.StartY
}
