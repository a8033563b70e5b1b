package factory

import (
	"math/rand"

	"github.com/automoto/godofsky/archetypes"
	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/shared/kinematics"
	"github.com/automoto/godofsky/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateCannon adds up to jitter extra ticks to the period, drawn once from
// rng so a seed reproduces the level.
func CreateCannon(w donburi.World, box gamemath.AABB, c leveldata.Cannon, jitter int, rng *rand.Rand) *donburi.Entry {
	period := c.Period
	if jitter > 0 && rng != nil {
		period += rng.Intn(jitter + 1)
	}

	cannon := archetypes.Cannon.Spawn(w)
	components.Cannon.SetValue(cannon, components.CannonData{
		Direction: c.Direction,
		Period:    period,
	})
	components.Box.SetValue(cannon, box)
	return cannon
}

// CreateBullet spawns a size×size projectile centered on (cx, cy).
func CreateBullet(w donburi.World, cx, cy, size, speed float64, dir leveldata.Direction) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(w)
	dx, dy := dir.Vector()
	body := kinematics.Body{X: cx - size/2, Y: cy - size/2, VX: dx * speed, VY: dy * speed}
	components.Bullet.SetValue(bullet, components.BulletData{Direction: dir})
	components.Body.SetValue(bullet, body)
	components.Box.SetValue(bullet, body.Box(size, size))
	return bullet
}
