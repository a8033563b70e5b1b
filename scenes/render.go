package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/godofsky/components"
	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/fonts"
	"github.com/automoto/godofsky/session"
	"github.com/automoto/godofsky/shared/ability"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

// view maps y-up world coordinates onto the y-down screen.
type view struct {
	cam     components.CameraData
	screenH float64
}

func (v view) rect(b gamemath.AABB) (x, y, w, h float32) {
	return float32(b.X - v.cam.X), float32(v.screenH - (b.Y - v.cam.Y) - b.H), float32(b.W), float32(b.H)
}

func (v view) fill(screen *ebiten.Image, b gamemath.AABB, clr color.Color) {
	x, y, w, h := v.rect(b)
	vector.FillRect(screen, x, y, w, h, clr, false)
}

func (v view) stroke(screen *ebiten.Image, b gamemath.AABB, clr color.Color) {
	x, y, w, h := v.rect(b)
	vector.StrokeRect(screen, x, y, w, h, 2, clr, false)
}

func drawWorld(screen *ebiten.Image, s *session.Session) {
	w := s.World()
	v := view{cam: s.Camera(), screenH: float64(s.Tuning().Screen.Height)}

	var best *components.SpawnPointData
	if e, ok := components.Level.First(w); ok {
		best = components.Level.Get(e).Best
	}

	boxes := func(tag *donburi.ComponentType[donburi.Tag], clr color.Color) {
		tag.Each(w, func(e *donburi.Entry) {
			v.fill(screen, *components.Box.Get(e), clr)
		})
	}

	boxes(tags.Shadow, cfg.Shade)
	tags.Spawn.Each(w, func(e *donburi.Entry) {
		sp := components.SpawnPoint.Get(e)
		clr := color.Color(cfg.White)
		if best != nil && best.X == sp.X && best.Y == sp.Y {
			clr = cfg.Green
		}
		v.stroke(screen, *components.Box.Get(e), clr)
	})
	boxes(tags.Door, cfg.Purple)
	boxes(tags.Wall, cfg.Stone)
	boxes(tags.Spike, cfg.Red)
	boxes(tags.Cannon, cfg.Orange)
	boxes(tags.Bullet, cfg.Red)
	boxes(tags.Coin, cfg.Gold)

	tags.Label.Each(w, func(e *donburi.Entry) {
		label := components.Label.Get(e)
		x, y, _, _ := v.rect(*components.Box.Get(e))
		text.Draw(screen, label.Text, fonts.Sized(label.Size), int(x), int(y), cfg.White)
	})

	if pe, ok := tags.Player.First(w); ok {
		p := components.Player.Get(pe)
		v.fill(screen, *components.Box.Get(pe), playerColor(p.State))
	}
}

func playerColor(state ability.StateID) color.Color {
	switch state {
	case ability.Dashing:
		return cfg.Orange
	case ability.WallHooked:
		return cfg.Green
	case ability.WallJumpLockout:
		return cfg.Purple
	}
	return cfg.White
}

func drawHUD(screen *ebiten.Image, s *session.Session, coins, deaths int) {
	state := ability.StateNone
	if pe, ok := tags.Player.First(s.World()); ok {
		state = components.Player.Get(pe).State
	}
	line := fmt.Sprintf("%s   coins %d   deaths %d   %s", s.Level(), coins, deaths, state)
	text.Draw(screen, line, fonts.HUD.Get(), 12, 24, cfg.White)
}

func drawFade(screen *ebiten.Image, alpha float32) {
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	clr := cfg.BlackOverlay
	clr.A = uint8(alpha * 255)
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), clr, false)
}
