package components

import (
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/shared/kinematics"
	"github.com/yohamta/donburi"
)

// CoinData tracks a collectible. A connected coin trails the player until it
// is committed by landing or dropped back at Origin by a death.
type CoinData struct {
	Origin    gamemath.AABB
	Connected bool
	Follow    kinematics.Body
}

var Coin = donburi.NewComponentType[CoinData]()
