package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StartFade covers the screen and fades it back in.
func StartFade(ctx *Context) {
	d := ctx.Tuning.Fade.Duration
	if d <= 0 {
		return
	}
	ctx.Fade.Tween = gween.New(1, 0, d, ease.Linear)
	ctx.Fade.Alpha = 1
}

func UpdateFade(ctx *Context) {
	f := ctx.Fade
	if f.Tween == nil {
		return
	}
	alpha, done := f.Tween.Update(float32(ctx.Dt))
	f.Alpha = alpha
	if done {
		f.Tween = nil
		f.Alpha = 0
	}
}
