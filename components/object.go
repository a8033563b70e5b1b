package components

import (
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broadphase object. The object lives in
// space coordinates, offset from the world by the level origin.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Box is an entity's world-space bounds. Static entities only ever have a
// Box; moving ones refresh it from their Body.
var Box = donburi.NewComponentType[gamemath.AABB]()

// Space is the singleton broadphase grid for the current level.
var Space = donburi.NewComponentType[resolv.Space]()
