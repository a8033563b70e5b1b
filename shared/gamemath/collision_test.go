package gamemath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const dirs = Left | Right | Up | Down

func TestClassifyDirections(t *testing.T) {
	tests := []struct {
		name   string
		moving AABB
		wall   AABB
		want   Mask
	}{
		{"touching wall on the right", AABB{5, 0, 10, 10}, AABB{15, 0, 10, 10}, Right},
		{"wall on the left", AABB{20, 0, 10, 10}, AABB{0, 0, 22, 10}, Left},
		{"standing on floor", AABB{0, 32, 30, 38}, AABB{0, 0, 64, 32}, Down},
		{"head against ceiling", AABB{0, 0, 30, 38}, AABB{0, 38, 64, 32}, Up},
		{"corner clip suppresses both axes", AABB{0, 0, 10, 10}, AABB{8, 8, 10, 10}, 0},
		{"separated", AABB{0, 0, 10, 10}, AABB{11, 0, 10, 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.moving, []AABB{tt.wall}, DefaultEpsilon)
			assert.Equal(t, tt.want, got&dirs, "mask %s", got)
		})
	}
}

func TestClassifyEmptyStaticSet(t *testing.T) {
	assert.Equal(t, Mask(0), Classify(AABB{0, 0, 10, 10}, nil, DefaultEpsilon))
}

func TestClassifyHookZones(t *testing.T) {
	player := AABB{X: 0, Y: 100, W: 30, H: 30}

	tall := AABB{X: 30, Y: 0, W: 32, H: 320}
	m := Classify(player, []AABB{tall}, DefaultEpsilon)
	assert.True(t, m.Has(Right))
	assert.True(t, m.CanHook())

	// Wall top sits below the player's upper third: nothing to hang from.
	low := AABB{X: 30, Y: 0, W: 32, H: 115}
	m = Classify(player, []AABB{low}, DefaultEpsilon)
	assert.False(t, m.Any(HookUp))
	assert.True(t, m.Any(HookDown))

	// Wall bottom sits above the player's lower third.
	high := AABB{X: 30, Y: 115, W: 32, H: 200}
	m = Classify(player, []AABB{high}, DefaultEpsilon)
	assert.True(t, m.Any(HookUp))
	assert.False(t, m.Any(HookDown))
}

func TestClassifyOrsMultipleWalls(t *testing.T) {
	player := AABB{X: 32, Y: 32, W: 30, H: 38}
	walls := []AABB{
		{X: 0, Y: 0, W: 128, H: 32},
		{X: 62, Y: 32, W: 32, H: 128},
	}
	m := Classify(player, walls, DefaultEpsilon)
	assert.Equal(t, Down|Right, m&dirs)
}

func TestOverlapsIsCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	box := func() AABB {
		return AABB{rng.Float64() * 100, rng.Float64() * 100, rng.Float64() * 40, rng.Float64() * 40}
	}
	for i := 0; i < 500; i++ {
		a, b := box(), box()
		assert.Equal(t, Overlaps(a, b), Overlaps(b, a))
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	walls := make([]AABB, 20)
	for i := range walls {
		walls[i] = AABB{rng.Float64() * 200, rng.Float64() * 200, 32, 32}
	}
	for i := 0; i < 100; i++ {
		p := AABB{rng.Float64() * 200, rng.Float64() * 200, 30, 38}
		assert.Equal(t, Classify(p, walls, DefaultEpsilon), Classify(p, walls, DefaultEpsilon))
	}
}

func TestDegenerateBoxes(t *testing.T) {
	point := AABB{X: 5, Y: 5}
	assert.True(t, Overlaps(point, AABB{0, 0, 10, 10}))
	assert.True(t, Overlaps(AABB{X: 10, Y: 0, H: 10}, AABB{0, 0, 10, 10}))
	assert.NotPanics(t, func() {
		Classify(point, []AABB{{0, 0, 10, 10}, {5, 5, 0, 0}}, DefaultEpsilon)
	})
}

func TestResolveAndPush(t *testing.T) {
	t.Run("pushed up out of the floor", func(t *testing.T) {
		p := AABB{X: 0, Y: 28, W: 30, H: 38}
		m := ResolveAndPush(&p, []AABB{{0, 0, 64, 32}}, DefaultEpsilon)
		assert.True(t, m.Has(Down))
		assert.Equal(t, 32.0, p.Y)
		assert.Equal(t, 0.0, p.X)
	})
	t.Run("pushed left out of a wall", func(t *testing.T) {
		p := AABB{X: 37, Y: 0, W: 30, H: 38}
		m := ResolveAndPush(&p, []AABB{{64, 0, 32, 128}}, DefaultEpsilon)
		assert.True(t, m.Has(Right))
		assert.Equal(t, 34.0, p.X)
	})
	t.Run("still touching after the push", func(t *testing.T) {
		p := AABB{X: 0, Y: 28, W: 30, H: 38}
		floor := []AABB{{0, 0, 64, 32}}
		ResolveAndPush(&p, floor, DefaultEpsilon)
		assert.True(t, Classify(p, floor, DefaultEpsilon).Has(Down))
	})
}

func TestResolveAndPushSeveralBoxes(t *testing.T) {
	floor := AABB{0, -32, 100, 32}
	wall := AABB{40, 0, 32, 128}
	tests := []struct {
		name     string
		moving   AABB
		statics  []AABB
		want     AABB
		wantMask Mask
	}{
		{
			name:     "deep corner pushes on both axes",
			moving:   AABB{0, 0, 32, 32},
			statics:  []AABB{{24, 24, 32, 32}},
			want:     AABB{-8, -8, 32, 32},
			wantMask: Right | Up | HookUp,
		},
		{
			name:     "floor then wall",
			moving:   AABB{10, -3, 32, 64},
			statics:  []AABB{floor, wall},
			want:     AABB{8, 0, 32, 64},
			wantMask: Down | Right | HookUp | HookDown,
		},
		{
			name:     "wall then floor",
			moving:   AABB{10, -3, 32, 64},
			statics:  []AABB{wall, floor},
			want:     AABB{8, 0, 32, 64},
			wantMask: Down | Right | HookUp | HookDown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.moving
			m := ResolveAndPush(&p, tt.statics, DefaultEpsilon)
			assert.Equal(t, tt.wantMask, m)
			assert.InDelta(t, tt.want.X, p.X, 1e-9)
			assert.InDelta(t, tt.want.Y, p.Y, 1e-9)
			assert.Equal(t, tt.moving.W, p.W)
			assert.Equal(t, tt.moving.H, p.H)
		})
	}
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "none", Mask(0).String())
	assert.Equal(t, "left|down", (Left | Down).String())
}
