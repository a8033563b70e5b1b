package scenes

import (
	"errors"
	"log"
	"sync"

	"github.com/automoto/godofsky/components"
	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// WorldScene plays a session.
type WorldScene struct {
	env          *Env
	sceneChanger SceneChanger
	resume       bool
	session      *session.Session
	keyboard     *Keyboard
	once         sync.Once
	failed       error

	coins  int
	deaths int
}

// NewWorldScene starts a new run, or resumes the saved one when resume is
// set.
func NewWorldScene(sc SceneChanger, env *Env, resume bool) *WorldScene {
	return &WorldScene{sceneChanger: sc, env: env, resume: resume}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.failed != nil {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.env, "Could not load level: "+ws.failed.Error()))
		return
	}

	if ws.keyboard.Pressed(cfg.ActionPause) {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.env, ""))
		return
	}

	ws.hotReload()
	ws.session.Frame(ws.keyboard.Snapshot())

	for _, ev := range ws.session.Events() {
		switch ev.Kind {
		case components.EventCoinCollected:
			ws.coins++
		case components.EventPlayerDied:
			ws.deaths++
		case components.EventSessionComplete:
			log.Printf("[session] finished with %d coins and %d deaths", ws.coins, ws.deaths)
			ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.env, "You reached the sky!"))
			return
		}
	}
}

// hotReload rebuilds the current level when its file changed.
func (ws *WorldScene) hotReload() {
	if ws.env.Watch == nil {
		return
	}
	for {
		select {
		case name, ok := <-ws.env.Watch:
			if !ok {
				ws.env.Watch = nil
				return
			}
			if name != ws.session.Level() {
				continue
			}
			if err := ws.session.Reload(); err == nil {
				log.Printf("[level] reloaded %s", name)
			}
		default:
			return
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Sky)
	if ws.session == nil || ws.session.World() == nil {
		return
	}
	drawWorld(screen, ws.session)
	drawHUD(screen, ws.session, ws.coins, ws.deaths)
	drawFade(screen, ws.session.FadeAlpha())
}

func (ws *WorldScene) configure() {
	ws.keyboard = NewKeyboard(cfg.Input)
	ws.session = ws.env.newSession()

	var err error
	if ws.resume {
		err = ws.session.Continue()
	} else {
		err = ws.session.Start()
	}
	if err != nil && !errors.Is(err, session.ErrSessionComplete) {
		ws.failed = err
	}
}
