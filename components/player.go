package components

import (
	"github.com/automoto/godofsky/shared/ability"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Ability  ability.Player
	Width    float64
	Height   float64
	State    ability.StateID
	Grounded bool
	Facing   float64 // -1 left, 1 right
	Deaths   int
}

var Player = donburi.NewComponentType[PlayerData]()
