package ability

import "github.com/automoto/godofsky/shared/gamemath"

// StateID names the player's dominant state for renderers.
type StateID int

const (
	StateNone StateID = iota
	Grounded
	Airborne
	WallHooked
	Dashing
	WallJumpLockout
)

func (s StateID) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case WallHooked:
		return "wall_hooked"
	case Dashing:
		return "dashing"
	case WallJumpLockout:
		return "wall_jump_lockout"
	}
	return "none"
}

// Flags is the non-exclusive set of states the player is in.
type Flags uint8

const (
	FlagGrounded Flags = 1 << iota
	FlagAirborne
	FlagWallHooked
	FlagDashing
	FlagWallJumpLockout
)

// Flags returns every state that holds for the player given this tick's mask.
func (p *Player) Flags(mask gamemath.Mask) Flags {
	var f Flags
	if mask.Any(gamemath.Down) {
		f |= FlagGrounded
	} else {
		f |= FlagAirborne
	}
	if p.Hooked {
		f |= FlagWallHooked
	}
	if p.Dashing() {
		f |= FlagDashing
	}
	if p.HookLockout > 0 {
		f |= FlagWallJumpLockout
	}
	return f
}

// State picks the one state that best describes the player.
func (p *Player) State(mask gamemath.Mask) StateID {
	f := p.Flags(mask)
	switch {
	case f&FlagDashing != 0:
		return Dashing
	case f&FlagWallHooked != 0:
		return WallHooked
	case f&FlagGrounded != 0:
		return Grounded
	case f&FlagWallJumpLockout != 0:
		return WallJumpLockout
	}
	return Airborne
}
