package systems

import (
	"log"

	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/tags"
	"github.com/yohamta/donburi"
)

// UpdateTriggers registers touched spawn points and fires a level transition
// the tick the player steps into a door.
func UpdateTriggers(ctx *Context) {
	pe, ok := tags.Player.First(ctx.World)
	if !ok {
		return
	}
	lvl := level(ctx.World)
	if lvl == nil {
		return
	}
	box := *components.Box.Get(pe)

	for _, e := range Query(ctx.World, box, tags.ResolvSpawn) {
		sp := *components.SpawnPoint.Get(e)
		if lvl.Touch(sp) {
			log.Printf("[level] %s: respawn point (%.0f, %.0f) priority %d", lvl.Name, sp.X, sp.Y, sp.Priority)
			Emit(ctx, components.EventData{
				Kind: components.EventSpawnReached, X: sp.X, Y: sp.Y, Priority: sp.Priority,
			})
		}
	}

	tags.Door.Each(ctx.World, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		inside := gamemath.Overlaps(box, *components.Box.Get(e))
		if inside && !door.Inside {
			Emit(ctx, components.EventData{Kind: components.EventLevelTransition, Target: door.Target})
		}
		door.Inside = inside
	})
}
