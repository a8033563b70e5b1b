// Package kinematics holds the position/velocity body shared by every moving
// entity and the fixed timestep that advances it.
package kinematics

import "github.com/automoto/godofsky/shared/gamemath"

// Body is a point mass with its position at the bottom-left of its box.
type Body struct {
	X, Y   float64
	VX, VY float64
}

// Integrate advances the position by the velocity over dt.
func Integrate(b *Body, dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Teleport moves the body without integration and stops it.
func Teleport(b *Body, x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
}

// Box returns the body's bounds for a w×h hitbox.
func (b Body) Box(w, h float64) gamemath.AABB {
	return gamemath.AABB{X: b.X, Y: b.Y, W: w, H: h}
}

// Block zeroes the velocity components that point into a blocked side.
func Block(b *Body, m gamemath.Mask) {
	if m.Any(gamemath.Up) && b.VY > 0 {
		b.VY = 0
	}
	if m.Any(gamemath.Down) && b.VY < 0 {
		b.VY = 0
	}
	if m.Any(gamemath.Right) && b.VX > 0 {
		b.VX = 0
	}
	if m.Any(gamemath.Left) && b.VX < 0 {
		b.VX = 0
	}
}
