package ability

import (
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/shared/kinematics"
)

// JumpKind is the outcome of a jump attempt.
type JumpKind int

const (
	NoJump JumpKind = iota
	GroundJump
	WallJump
)

func (k JumpKind) String() string {
	switch k {
	case GroundJump:
		return "ground"
	case WallJump:
		return "wall"
	}
	return "none"
}

// Jump tries a ground jump, then a wall jump off a touched or hooked wall.
func (p *Player) Jump(b *kinematics.Body, mask gamemath.Mask, t Tuning) JumpKind {
	if p.CanJump {
		p.CanJump = false
		p.JumpBuffer = t.JumpBuffer
		b.VY = t.JumpForce
		return GroundJump
	}

	side := mask.Side()
	if p.Hooked {
		side = p.HookSide
	}
	if side == 0 {
		return NoJump
	}

	away := 1.0
	if side == gamemath.Right {
		away = -1
	}
	p.release()
	b.VX = t.WallJumpX * away
	b.VY = t.WallJumpY
	p.HookLockout = t.HookLockout
	return WallJump
}
