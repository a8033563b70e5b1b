package systems

import (
	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/ability"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/tags"
	"github.com/yohamta/donburi"
)

// UpdateHazards kills the player on contact with a spike or a bullet. A
// bullet that hits is destroyed.
func UpdateHazards(ctx *Context) {
	pe, ok := tags.Player.First(ctx.World)
	if !ok {
		return
	}
	box := *components.Box.Get(pe)

	hit := len(Query(ctx.World, box, tags.ResolvHazard)) > 0

	var spent []*donburi.Entry
	tags.Bullet.Each(ctx.World, func(e *donburi.Entry) {
		if gamemath.Overlaps(box, *components.Box.Get(e)) {
			spent = append(spent, e)
		}
	})
	for _, e := range spent {
		Destroy(ctx.World, e)
		hit = true
	}

	if hit {
		Kill(ctx, pe)
	}
}

// Kill respawns the player at the best spawn point touched so far, or the
// level start, and drops any coins it was carrying.
func Kill(ctx *Context, pe *donburi.Entry) {
	lvl := level(ctx.World)
	if lvl == nil {
		return
	}
	player := components.Player.Get(pe)
	body := components.Body.Get(pe)

	x, y := lvl.RespawnPoint()
	player.Ability.Respawn(body, x, y)
	player.Deaths++
	player.Grounded = false
	player.State = ability.Airborne
	components.Box.SetValue(pe, body.Box(player.Width, player.Height))

	ReleaseCoins(ctx.World)
	Emit(ctx, components.EventData{Kind: components.EventPlayerDied, X: x, Y: y})
	StartFade(ctx)
	SnapCamera(ctx)
}
