package config

import "github.com/automoto/godofsky/shared/ability"

// Type aliases so renderers can switch on player state through config.
type StateID = ability.StateID

const (
	StateNone       = ability.StateNone
	Grounded        = ability.Grounded
	Airborne        = ability.Airborne
	WallHooked      = ability.WallHooked
	Dashing         = ability.Dashing
	WallJumpLockout = ability.WallJumpLockout
)
