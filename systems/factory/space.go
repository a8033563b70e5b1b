package factory

import (
	"math"

	"github.com/automoto/godofsky/archetypes"
	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceMargin is how many cells of empty space surround the level bounds.
const spaceMargin = 4

// CreateSpace builds the broadphase grid around bounds and records its
// origin on the level. Resolv cells start at zero, so world coordinates are
// shifted by the origin on the way in.
func CreateSpace(w donburi.World, level *components.LevelData, bounds gamemath.AABB, cell int) *donburi.Entry {
	c := float64(cell)
	level.OriginX = math.Floor(bounds.X/c)*c - spaceMargin*c
	level.OriginY = math.Floor(bounds.Y/c)*c - spaceMargin*c
	width := int(math.Ceil(bounds.Right()-level.OriginX)) + spaceMargin*cell
	height := int(math.Ceil(bounds.Top()-level.OriginY)) + spaceMargin*cell

	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, resolv.NewSpace(width, height, cell, cell))
	return space
}

// addObject registers box in the level's space under tags and links it back
// to entry.
func addObject(w donburi.World, entry *donburi.Entry, box gamemath.AABB, tags ...string) *resolv.Object {
	components.Box.SetValue(entry, box)

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry)

	obj := resolv.NewObject(box.X-level.OriginX, box.Y-level.OriginY, box.W, box.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
