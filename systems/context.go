package systems

import (
	"math/rand"

	"github.com/automoto/godofsky/archetypes"
	"github.com/automoto/godofsky/components"
	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/shared/ability"
	"github.com/yohamta/donburi"
)

// Context is everything a system reads or writes during one sub-step. The
// session owns it and swaps World on every level load.
type Context struct {
	World   donburi.World
	Input   ability.Input
	Tuning  cfg.Tuning
	Ability ability.Tuning
	Dt      float64
	Rand    *rand.Rand

	Camera *components.CameraData
	Fade   *components.FadeData
}

// NewContext builds a context for world with tuning and a seeded RNG.
func NewContext(w donburi.World, t cfg.Tuning, seed int64) *Context {
	return &Context{
		World:   w,
		Tuning:  t,
		Ability: t.Ability(),
		Dt:      t.Timestep().Dt(),
		Rand:    rand.New(rand.NewSource(seed)),
		Camera:  &components.CameraData{},
		Fade:    &components.FadeData{},
	}
}

// System is one stage of the tick.
type System func(ctx *Context)

// Pipeline is the fixed per-tick system order.
var Pipeline = []System{
	UpdateCannons,
	UpdateBullets,
	UpdatePlayer,
	UpdatePickups,
	UpdateHazards,
	UpdateTriggers,
	UpdateCamera,
	UpdateFade,
}

// Tick runs every system once.
func Tick(ctx *Context) {
	for _, sys := range Pipeline {
		sys(ctx)
	}
}

// Emit publishes an event for the session to drain.
func Emit(ctx *Context, ev components.EventData) {
	e := archetypes.Event.Spawn(ctx.World)
	components.Event.SetValue(e, ev)
}

// DrainEvents removes and returns every pending event in creation order.
func DrainEvents(w donburi.World) []components.EventData {
	var entries []*donburi.Entry
	components.Event.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	events := make([]components.EventData, 0, len(entries))
	for _, e := range entries {
		events = append(events, *components.Event.Get(e))
		w.Remove(e.Entity())
	}
	return events
}

func level(w donburi.World) *components.LevelData {
	e, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(e)
}
