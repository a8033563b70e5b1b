package ability

import (
	"math"

	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/shared/kinematics"
)

// Step advances the player by one fixed tick. mask is the contact summary
// against static geometry computed for this tick, before anything moved.
// The order of the stages is part of the behavior.
func Step(p *Player, b *kinematics.Body, mask gamemath.Mask, in Input, t Tuning, dt float64) {
	dashEnded := p.decay(b, t, dt)

	jumpFailed := false
	if in.JumpPressed {
		jumpFailed = p.Jump(b, mask, t) == NoJump
	}
	if in.DashPressed {
		p.StartDash(b, in, t)
	}

	grounded := mask.Any(gamemath.Down) && b.VY <= 0
	if grounded {
		p.CanJump = true
		if !p.Dashing() {
			p.CanDash = true
		}
		if b.VY < 0 {
			p.GroundGrace = t.GroundGrace
		}
	} else if p.GroundGrace == 0 {
		p.CanJump = false
	}

	if in.Jump && p.JumpBuffer > 0 {
		b.VY += t.JumpHoldForce * dt
	} else {
		p.JumpBuffer = 0
	}

	if p.Mercy > 0 {
		if p.Jump(b, mask, t) != NoJump {
			p.Mercy = 0
		} else {
			p.Mercy = gamemath.Decay(p.Mercy, dt)
		}
	}

	if !p.Dashing() {
		p.updateHook(b, mask, in, t)
	}

	if !(p.Hooked && p.HookLockout == 0) && !p.Dashing() && !grounded {
		b.VY = math.Max(b.VY-t.Gravity*dt, -t.MaxFall)
	}

	if !p.Hooked && !p.Dashing() && !dashEnded {
		moveX(b, in, t, grounded, dt)
	}

	if jumpFailed && p.Mercy == 0 {
		p.Mercy = t.Mercy
	}

	kinematics.Block(b, mask)
	kinematics.Integrate(b, dt)
}

// decay counts every timer down except mercy, which only decays on a failed
// retry. It reports whether a dash ran out on this tick.
func (p *Player) decay(b *kinematics.Body, t Tuning, dt float64) bool {
	p.GroundGrace = gamemath.Decay(p.GroundGrace, dt)
	p.JumpBuffer = gamemath.Decay(p.JumpBuffer, dt)
	p.HookLockout = gamemath.Decay(p.HookLockout, dt)
	if p.Dash == 0 {
		return false
	}
	p.Dash = gamemath.Decay(p.Dash, dt)
	if p.Dash > 0 {
		return false
	}
	b.VY = t.DashEndY * gamemath.Sign(b.VY)
	return true
}

func moveX(b *kinematics.Body, in Input, t Tuning, grounded bool, dt float64) {
	mult := t.AirFactor
	if grounded {
		mult = 1
	}
	dir, _ := gamemath.InputDirection(in.Left, in.Right, false, false)
	target := t.MaxSpeed * dir

	// Above top speed in the held direction, bleed off gently.
	if math.Abs(b.VX) > t.MaxSpeed && gamemath.Sign(b.VX) == dir {
		b.VX = gamemath.Approach(b.VX, target, t.Decel*mult*dt)
		return
	}
	b.VX = gamemath.Approach(b.VX, target, t.Accel*mult*dt)
}
