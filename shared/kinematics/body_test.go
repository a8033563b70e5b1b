package kinematics

import (
	"math"
	"testing"

	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrateIsLinear(t *testing.T) {
	tests := []struct {
		name string
		body Body
		dt   float64
	}{
		{"still", Body{X: 3, Y: 4}, 0.01},
		{"moving", Body{X: 1, Y: 2, VX: 200, VY: -600}, 1.0 / 180},
		{"negative velocity", Body{VX: -700, VY: 300}, 0.006},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := tt.body
			Integrate(&once, 2*tt.dt)

			twice := tt.body
			Integrate(&twice, tt.dt)
			Integrate(&twice, tt.dt)

			assert.InDelta(t, once.X, twice.X, 1e-9)
			assert.InDelta(t, once.Y, twice.Y, 1e-9)
			assert.Equal(t, tt.body.VX, twice.VX)
			assert.Equal(t, tt.body.VY, twice.VY)
		})
	}
}

func TestTeleportStopsBody(t *testing.T) {
	b := Body{X: 10, Y: 10, VX: 50, VY: -50}
	Teleport(&b, 64, 96)
	assert.Equal(t, Body{X: 64, Y: 96}, b)
}

func TestTimestep(t *testing.T) {
	ts := Timestep{TargetFPS: 60, SubSteps: 3}
	assert.InDelta(t, 1.0/180, ts.Dt(), 1e-15)

	s := &Stepper{Timestep: ts}
	var seen []int
	s.Frame(func(i int, dt float64) {
		require.Equal(t, ts.Dt(), dt)
		seen = append(seen, i)
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, uint64(3), s.Ticks)
	assert.InDelta(t, 1.0/60, s.Elapsed(), 1e-12)
}

func TestTimestepWithoutSubSteps(t *testing.T) {
	s := &Stepper{Timestep: Timestep{TargetFPS: 60}}
	n := 0
	s.Frame(func(int, float64) { n++ })
	assert.Equal(t, 1, n)
	assert.InDelta(t, 1.0/60, s.Dt(), 1e-15)
}

func TestTimestepFallsBackToDefaultFPS(t *testing.T) {
	tests := []struct {
		name string
		ts   Timestep
		fps  int
		dt   float64
	}{
		{"zero fps", Timestep{SubSteps: 3}, 60, 1.0 / 180},
		{"negative fps", Timestep{TargetFPS: -30, SubSteps: 3}, 60, 1.0 / 180},
		{"zero value", Timestep{}, 60, 1.0 / 60},
		{"configured", Timestep{TargetFPS: 120, SubSteps: 2}, 120, 1.0 / 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fps, tt.ts.FPS())
			assert.InDelta(t, tt.dt, tt.ts.Dt(), 1e-15)
			assert.False(t, math.IsInf(tt.ts.Dt(), 0))
		})
	}
}

func TestBlock(t *testing.T) {
	tests := []struct {
		name string
		mask gamemath.Mask
		in   Body
		want Body
	}{
		{"floor stops falling", gamemath.Down, Body{VX: 5, VY: -100}, Body{VX: 5}},
		{"floor keeps a jump", gamemath.Down, Body{VY: 300}, Body{VY: 300}},
		{"ceiling stops rising", gamemath.Up, Body{VY: 300}, Body{}},
		{"right wall", gamemath.Right, Body{VX: 200, VY: -10}, Body{VY: -10}},
		{"left wall keeps moving away", gamemath.Left, Body{VX: 200}, Body{VX: 200}},
		{"corner", gamemath.Left | gamemath.Down, Body{VX: -200, VY: -600}, Body{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.in
			Block(&b, tt.mask)
			assert.Equal(t, tt.want, b)
		})
	}
}
