// Package ability is the player's movement state machine: ground and wall
// jumps, the wall hook, dash, and the timers that make them forgiving. It has
// no dependency on the world; callers pass in the tick's collision mask.
package ability

import "github.com/automoto/godofsky/shared/gamemath"

// Input is one tick of logical actions. The *Pressed fields are edges and
// are only true on the tick the action went down.
type Input struct {
	Up, Down, Left, Right bool
	Jump, Hook            bool

	JumpPressed bool
	DashPressed bool
	HookPressed bool
}

// Tuning holds every constant the state machine reads. Durations are in
// seconds, speeds in world units per second.
type Tuning struct {
	Gravity float64
	MaxFall float64

	MaxSpeed  float64
	Accel     float64
	Decel     float64
	AirFactor float64

	JumpForce     float64
	JumpBuffer    float64
	JumpHoldForce float64
	GroundGrace   float64
	Mercy         float64
	WallJumpX     float64
	WallJumpY     float64

	HookSpeed       float64
	HookReleaseUp   float64
	HookLockout     float64
	RegrabWhileHeld bool

	DashSpeed           float64
	DashDuration        float64
	DashEndY            float64
	DashDiagonalDivisor float64
}

// Player is the ability state of one player. Timers count down to zero and
// zero means inactive.
type Player struct {
	JumpBuffer  float64
	GroundGrace float64
	Mercy       float64
	Dash        float64
	HookLockout float64

	CanJump  bool
	CanDash  bool
	Hooked   bool
	HookSide gamemath.Mask
}

// Dashing reports whether a dash is in progress.
func (p *Player) Dashing() bool { return p.Dash > 0 }

func (p *Player) release() {
	p.Hooked = false
	p.HookSide = 0
}
