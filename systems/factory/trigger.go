package factory

import (
	"github.com/automoto/godofsky/archetypes"
	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/tags"
	"github.com/yohamta/donburi"
)

// CreateSpawnPoint places a size×size trigger whose respawn position is its
// corner.
func CreateSpawnPoint(w donburi.World, x, y, size float64, priority int) *donburi.Entry {
	sp := archetypes.Spawn.Spawn(w)
	components.SpawnPoint.SetValue(sp, components.SpawnPointData{X: x, Y: y, Priority: priority})
	addObject(w, sp, gamemath.AABB{X: x, Y: y, W: size, H: size}, tags.ResolvSpawn)
	return sp
}

func CreateDoor(w donburi.World, box gamemath.AABB, target string) *donburi.Entry {
	door := archetypes.Door.Spawn(w)
	components.Door.SetValue(door, components.DoorData{Target: target})
	addObject(w, door, box, tags.ResolvDoor)
	return door
}
