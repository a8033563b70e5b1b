package ability

import "github.com/automoto/godofsky/shared/kinematics"

// Respawn teleports the player to (x, y) at rest and clears every timer, so
// a queued mercy jump cannot fire on arrival.
func (p *Player) Respawn(b *kinematics.Body, x, y float64) {
	kinematics.Teleport(b, x, y)
	*p = Player{}
}
