package ability

import (
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/shared/kinematics"
)

// StartDash launches a dash in the held direction. Nothing happens without
// a held direction or while the dash is spent.
func (p *Player) StartDash(b *kinematics.Body, in Input, t Tuning) bool {
	if !p.CanDash {
		return false
	}
	x, y := gamemath.InputDirection(in.Left, in.Right, in.Up, in.Down)
	if x == 0 && y == 0 {
		return false
	}

	speed := t.DashSpeed
	if x != 0 && y != 0 {
		speed /= t.DashDiagonalDivisor
	}
	b.VX = x * speed
	b.VY = y * speed
	p.Dash = t.DashDuration
	p.CanDash = false
	p.release()
	return true
}
