package systems

import (
	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/shared/kinematics"
	"github.com/automoto/godofsky/shared/leveldata"
	"github.com/automoto/godofsky/systems/factory"
	"github.com/automoto/godofsky/tags"
	"github.com/yohamta/donburi"
)

// UpdateCannons advances every cannon's counter and fires a bullet from its
// center when the counter reaches the period.
func UpdateCannons(ctx *Context) {
	type shot struct {
		x, y float64
		dir  leveldata.Direction
	}
	var shots []shot

	tags.Cannon.Each(ctx.World, func(e *donburi.Entry) {
		cannon := components.Cannon.Get(e)
		if cannon.Period <= 0 {
			return
		}
		cannon.Counter++
		if cannon.Counter < cannon.Period {
			return
		}
		cannon.Counter = 0
		box := components.Box.Get(e)
		shots = append(shots, shot{box.CenterX(), box.CenterY(), cannon.Direction})
	})

	c := ctx.Tuning.Cannons
	for _, s := range shots {
		factory.CreateBullet(ctx.World, s.x, s.y, c.BulletSize, c.BulletSpeed, s.dir)
	}
}

// UpdateBullets moves bullets and destroys the ones that hit a wall or leave
// the level. Player hits are handled by UpdateHazards.
func UpdateBullets(ctx *Context) {
	lvl := level(ctx.World)
	size := ctx.Tuning.Cannons.BulletSize

	var dead []*donburi.Entry
	tags.Bullet.Each(ctx.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		kinematics.Integrate(body, ctx.Dt)
		box := body.Box(size, size)
		components.Box.SetValue(e, box)

		if lvl != nil && !gamemath.Overlaps(box, lvl.Bounds) {
			dead = append(dead, e)
			return
		}
		if len(Query(ctx.World, box, tags.ResolvSolid)) > 0 {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		Destroy(ctx.World, e)
	}
}
