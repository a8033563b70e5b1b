// Package session runs the game simulation: it owns the current level's
// world, advances it in fixed sub-steps, and turns the events the systems
// publish into level loads and progress saves.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/godofsky/components"
	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/shared/ability"
	"github.com/automoto/godofsky/shared/kinematics"
	"github.com/automoto/godofsky/shared/leveldata"
	"github.com/automoto/godofsky/systems"
	"github.com/automoto/godofsky/systems/factory"
	"github.com/automoto/godofsky/tags"
	"github.com/yohamta/donburi"
)

// ErrSessionComplete is returned when the "end" level is requested.
var ErrSessionComplete = errors.New("session: complete")

// Options configures a session.
type Options struct {
	Dir    string // Level directory inside the file system
	Level  string // First level; empty means Tuning.Level.First
	Seed   int64  // Cannon jitter seed; zero means Tuning.Level.CannonSeed
	Tuning cfg.Tuning
	Store  ProgressStore // Optional
}

// Session is one play-through. It is not safe for concurrent use; the
// client calls it from the ebiten update goroutine only.
type Session struct {
	fsys    fs.FS
	opts    Options
	ctx     *systems.Context
	stepper kinematics.Stepper

	level    string
	events   []components.EventData
	complete bool
}

// New creates a session with no level loaded yet.
func New(fsys fs.FS, opts Options) *Session {
	if opts.Level == "" {
		opts.Level = opts.Tuning.Level.First
	}
	if opts.Seed == 0 {
		opts.Seed = opts.Tuning.Level.CannonSeed
	}
	return &Session{
		fsys:    fsys,
		opts:    opts,
		ctx:     systems.NewContext(nil, opts.Tuning, opts.Seed),
		stepper: kinematics.Stepper{Timestep: opts.Tuning.Timestep()},
	}
}

// Start loads the configured first level.
func (s *Session) Start() error {
	return s.Load(s.opts.Level)
}

// Load replaces the world with a freshly built one for name. On failure the
// previous world stays in place. Loading "end" completes the session.
func (s *Session) Load(name string) error {
	if leveldata.IsEnd(name) {
		if !s.complete {
			s.complete = true
			s.events = append(s.events, components.EventData{Kind: components.EventSessionComplete})
			log.Printf("[session] complete after %d ticks", s.stepper.Ticks)
		}
		return ErrSessionComplete
	}

	desc, err := leveldata.Load(s.fsys, s.opts.Dir, name)
	if err != nil {
		log.Printf("[session] Warning: keeping %q: %v", s.level, err)
		return err
	}

	// Every load of a level gets the same cannon jitter.
	s.ctx.Rand.Seed(s.opts.Seed)
	w := donburi.NewWorld()
	if _, err := factory.LoadLevel(w, desc, s.ctx.Rand, s.opts.Tuning); err != nil {
		log.Printf("[session] Warning: keeping %q: %v", s.level, err)
		return fmt.Errorf("session: build %s: %w", name, err)
	}

	s.ctx.World = w
	s.level = name
	s.complete = false
	systems.SnapCamera(s.ctx)
	systems.StartFade(s.ctx)

	log.Printf("[session] loaded %s: %d walls, %d spikes, %d coins, %d cannons",
		name, desc.Count(leveldata.KindWall), desc.Count(leveldata.KindSpike),
		desc.Count(leveldata.KindCoin), desc.Count(leveldata.KindCannon))
	return nil
}

// Reload rebuilds the current level from disk, for hot reload. The player
// goes back to the level start.
func (s *Session) Reload() error {
	if s.level == "" {
		return nil
	}
	return s.Load(s.level)
}

// Frame advances one rendered frame. The edge inputs in in only apply to
// the first sub-step.
func (s *Session) Frame(in ability.Input) {
	if s.ctx.World == nil || s.complete {
		return
	}
	s.stepper.Frame(func(i int, dt float64) {
		if s.complete {
			return
		}
		step := in
		if i > 0 {
			step.JumpPressed = false
			step.DashPressed = false
			step.HookPressed = false
		}
		s.ctx.Input = step
		s.ctx.Dt = dt
		systems.Tick(s.ctx)
		s.handle(systems.DrainEvents(s.ctx.World))
	})
}

func (s *Session) handle(events []components.EventData) {
	var target string
	transition := false
	for _, ev := range events {
		s.events = append(s.events, ev)
		switch ev.Kind {
		case components.EventSpawnReached:
			s.save(Progress{
				Level: s.level, SpawnX: ev.X, SpawnY: ev.Y, SpawnPriority: ev.Priority, HasSpawn: true,
			})
		case components.EventLevelTransition:
			if !transition {
				transition = true
				target = ev.Target
			}
		}
	}
	if transition {
		s.transition(target)
	}
}

// transition loads target and carries the player's motion and abilities
// into it.
func (s *Session) transition(target string) {
	carried, body, ok := s.playerState()

	err := s.Load(target)
	switch {
	case errors.Is(err, ErrSessionComplete):
		s.save(Progress{Level: leveldata.EndLevel})
		return
	case err != nil:
		return
	}

	if ok {
		if pe, found := tags.Player.First(s.ctx.World); found {
			p := components.Player.Get(pe)
			b := components.Body.Get(pe)
			p.Ability = carried.Ability
			p.Facing = carried.Facing
			p.Deaths = carried.Deaths
			b.VX, b.VY = body.VX, body.VY
		}
	}
	s.save(Progress{Level: target})
}

func (s *Session) playerState() (components.PlayerData, kinematics.Body, bool) {
	if s.ctx.World == nil {
		return components.PlayerData{}, kinematics.Body{}, false
	}
	pe, ok := tags.Player.First(s.ctx.World)
	if !ok {
		return components.PlayerData{}, kinematics.Body{}, false
	}
	return *components.Player.Get(pe), *components.Body.Get(pe), true
}

// Restore loads a saved level and puts the player at its saved spawn.
func (s *Session) Restore(p Progress) error {
	if err := s.Load(p.Level); err != nil {
		return err
	}
	if !p.HasSpawn {
		return nil
	}
	lvl, ok := components.Level.First(s.ctx.World)
	if !ok {
		return nil
	}
	components.Level.Get(lvl).Best = &components.SpawnPointData{X: p.SpawnX, Y: p.SpawnY, Priority: p.SpawnPriority}

	if pe, ok := tags.Player.First(s.ctx.World); ok {
		player := components.Player.Get(pe)
		body := components.Body.Get(pe)
		player.Ability.Respawn(body, p.SpawnX, p.SpawnY)
		components.Box.SetValue(pe, body.Box(player.Width, player.Height))
	}
	systems.SnapCamera(s.ctx)
	return nil
}

// Continue restores saved progress, or starts from the first level when
// nothing was saved.
func (s *Session) Continue() error {
	if s.opts.Store == nil {
		return s.Start()
	}
	p, err := s.opts.Store.Load()
	if err != nil {
		log.Printf("[progress] Warning: could not load progress: %v", err)
	}
	if p == nil || leveldata.IsEnd(p.Level) {
		return s.Start()
	}
	return s.Restore(*p)
}

func (s *Session) save(p Progress) {
	if s.opts.Store == nil {
		return
	}
	if err := s.opts.Store.Save(p); err != nil {
		log.Printf("[progress] Warning: could not save progress: %v", err)
	}
}

// Events returns and clears everything published since the last call.
func (s *Session) Events() []components.EventData {
	ev := s.events
	s.events = nil
	return ev
}

// World is the current level's world, nil before the first load.
func (s *Session) World() donburi.World { return s.ctx.World }

// Level is the name of the loaded level.
func (s *Session) Level() string { return s.level }

// Complete reports whether the session reached the "end" level.
func (s *Session) Complete() bool { return s.complete }

func (s *Session) Camera() components.CameraData { return *s.ctx.Camera }

// FadeAlpha is the opacity of the black overlay.
func (s *Session) FadeAlpha() float32 { return s.ctx.Fade.Alpha }

// Ticks is the number of sub-steps simulated so far.
func (s *Session) Ticks() uint64 { return s.stepper.Ticks }

func (s *Session) Tuning() cfg.Tuning { return s.opts.Tuning }
