package components

import (
	"github.com/automoto/godofsky/shared/kinematics"
	"github.com/yohamta/donburi"
)

// Body is the kinematic state of anything that moves.
var Body = donburi.NewComponentType[kinematics.Body]()
