package ability

import (
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/shared/kinematics"
)

func (p *Player) updateHook(b *kinematics.Body, mask gamemath.Mask, in Input, t Tuning) {
	if p.Hooked {
		lostWall := !mask.Any(p.HookSide)
		noRoom := !mask.CanHook()
		if lostWall || noRoom {
			p.release()
		}
		if noRoom && b.VY >= 0 {
			b.VY = t.HookReleaseUp
		}
	}

	switch {
	case p.Hooked && !in.Hook:
		p.release()
	case !p.Hooked && in.Hook && (in.HookPressed || t.RegrabWhileHeld):
		p.grab(b, mask)
	}

	if !p.Hooked {
		return
	}
	_, dir := gamemath.InputDirection(false, false, in.Up, in.Down)
	b.VY = t.HookSpeed * dir
}

func (p *Player) grab(b *kinematics.Body, mask gamemath.Mask) {
	side := mask.Side()
	if side == 0 || !mask.CanHook() || p.HookLockout > 0 {
		return
	}
	p.Hooked = true
	p.HookSide = side
	b.VY = 0
}
