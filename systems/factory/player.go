package factory

import (
	"github.com/automoto/godofsky/archetypes"
	"github.com/automoto/godofsky/components"
	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/shared/kinematics"
	"github.com/yohamta/donburi"
)

// CreatePlayer places the player at (x, y) at rest.
func CreatePlayer(w donburi.World, x, y float64, pc cfg.PlayerConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	body := kinematics.Body{X: x, Y: y}
	components.Player.SetValue(player, components.PlayerData{
		Width:  pc.Width,
		Height: pc.Height,
		Facing: 1,
	})
	components.Body.SetValue(player, body)
	components.Box.SetValue(player, body.Box(pc.Width, pc.Height))
	return player
}
