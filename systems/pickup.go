package systems

import (
	"math"

	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/kinematics"
	"github.com/automoto/godofsky/tags"
	"github.com/yohamta/donburi"
)

// UpdatePickups collects the coins the player touches. With
// CollectOnLanding a touched coin trails the player instead and is only
// collected once the player stands on ground.
func UpdatePickups(ctx *Context) {
	pe, ok := tags.Player.First(ctx.World)
	if !ok {
		return
	}
	player := components.Player.Get(pe)
	playerBox := *components.Box.Get(pe)
	coins := ctx.Tuning.Coins

	var collect []*donburi.Entry
	for _, e := range Query(ctx.World, playerBox, tags.ResolvCoin) {
		coin := components.Coin.Get(e)
		if coin.Connected {
			continue
		}
		if !coins.CollectOnLanding {
			collect = append(collect, e)
			continue
		}
		box := components.Box.Get(e)
		coin.Connected = true
		coin.Follow = kinematics.Body{X: box.X, Y: box.Y}
	}

	if coins.CollectOnLanding {
		tags.Coin.Each(ctx.World, func(e *donburi.Entry) {
			coin := components.Coin.Get(e)
			if !coin.Connected {
				return
			}
			if player.Grounded {
				collect = append(collect, e)
				return
			}
			follow(ctx, coin, playerBox.CenterX(), playerBox.CenterY())
			components.Box.SetValue(e, coin.Follow.Box(coin.Origin.W, coin.Origin.H))
		})
	}

	lvl := level(ctx.World)
	for _, e := range collect {
		box := *components.Box.Get(e)
		Destroy(ctx.World, e)
		if lvl != nil {
			lvl.Collected++
		}
		Emit(ctx, components.EventData{
			Kind: components.EventCoinCollected,
			X:    box.X,
			Y:    box.Y,
		})
	}
}

// follow pulls a connected coin toward (tx, ty) proportionally to the gap,
// stopping once it is within MinDist.
func follow(ctx *Context, coin *components.CoinData, tx, ty float64) {
	c := ctx.Tuning.Coins
	body := &coin.Follow
	dx := tx - (body.X + coin.Origin.W/2)
	dy := ty - (body.Y + coin.Origin.H/2)
	if math.Hypot(dx, dy) > c.MinDist {
		body.VX, body.VY = dx*c.FollowK, dy*c.FollowK
	} else {
		body.VX, body.VY = 0, 0
	}
	kinematics.Integrate(body, ctx.Dt)
}

// ReleaseCoins drops every connected coin back where it started.
func ReleaseCoins(w donburi.World) {
	tags.Coin.Each(w, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		if !coin.Connected {
			return
		}
		coin.Connected = false
		coin.Follow = kinematics.Body{}
		components.Box.SetValue(e, coin.Origin)
	})
}
