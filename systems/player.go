package systems

import (
	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/ability"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/tags"
)

// UpdatePlayer classifies the player's contacts with the walls it touches and
// runs one ability step against them.
func UpdatePlayer(ctx *Context) {
	e, ok := tags.Player.First(ctx.World)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	body := components.Body.Get(e)

	box := body.Box(player.Width, player.Height)
	walls := Boxes(Query(ctx.World, box, tags.ResolvSolid))

	var mask gamemath.Mask
	if ctx.Tuning.Physics.PushOut {
		mask = gamemath.ResolveAndPush(&box, walls, ctx.Tuning.Physics.Epsilon)
		body.X, body.Y = box.X, box.Y
	} else {
		mask = gamemath.Classify(box, walls, ctx.Tuning.Physics.Epsilon)
	}

	ability.Step(&player.Ability, body, mask, ctx.Input, ctx.Ability, ctx.Dt)

	player.Grounded = mask.Any(gamemath.Down) && body.VY <= 0
	player.State = player.Ability.State(mask)
	switch {
	case player.Ability.Hooked:
		if player.Ability.HookSide == gamemath.Right {
			player.Facing = 1
		} else {
			player.Facing = -1
		}
	case body.VX > 0:
		player.Facing = 1
	case body.VX < 0:
		player.Facing = -1
	}
	components.Box.SetValue(e, body.Box(player.Width, player.Height))
}
