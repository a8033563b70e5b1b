package systems

import (
	"math"

	"github.com/automoto/godofsky/components"
	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/tags"
	dmath "github.com/yohamta/donburi/features/math"
)

// Follow eases the camera toward target, then clamps it so target never
// drifts more than the dead zone away on either axis.
func Follow(cam *components.CameraData, target dmath.Vec2, t cfg.CameraConfig) {
	k := t.Smoothing
	if k < 1 {
		k = 1
	}
	cam.X += (target.X - cam.X) / k
	cam.Y += (target.Y - cam.Y) / k

	cam.X = clamp(cam.X, target.X-t.DeadZone, target.X+t.DeadZone)
	cam.Y = clamp(cam.Y, target.Y-t.DeadZone, target.Y+t.DeadZone)
}

// Snap moves the camera straight to target.
func Snap(cam *components.CameraData, target dmath.Vec2) {
	cam.X, cam.Y = target.X, target.Y
}

// CameraTarget is the camera corner that centers the player on screen.
func CameraTarget(ctx *Context) (dmath.Vec2, bool) {
	pe, ok := tags.Player.First(ctx.World)
	if !ok {
		return dmath.Vec2{}, false
	}
	player := components.Player.Get(pe)
	body := components.Body.Get(pe)
	screen := ctx.Tuning.Screen
	return dmath.Vec2{
		X: body.X - (float64(screen.Width)-player.Width)/2,
		Y: body.Y - (float64(screen.Height)-player.Height)/2,
	}, true
}

func UpdateCamera(ctx *Context) {
	if target, ok := CameraTarget(ctx); ok {
		Follow(ctx.Camera, target, ctx.Tuning.Camera)
	}
}

// SnapCamera centers the camera on the player immediately.
func SnapCamera(ctx *Context) {
	if target, ok := CameraTarget(ctx); ok {
		Snap(ctx.Camera, target)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
