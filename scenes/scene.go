package scenes

import (
	"io/fs"
	"log"

	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/session"
	"github.com/automoto/godofsky/shared/leveldata"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Env is what every scene needs to start or resume a run.
type Env struct {
	Levels fs.FS
	Dir    string
	First  string
	Seed   int64
	Tuning cfg.Tuning
	Store  session.ProgressStore // Nil when persistence is unavailable
	Watch  <-chan string         // Changed level names, nil without -watch
}

func (e *Env) newSession() *session.Session {
	return session.New(e.Levels, session.Options{
		Dir:    e.Dir,
		Level:  e.First,
		Seed:   e.Seed,
		Tuning: e.Tuning,
		Store:  e.Store,
	})
}

// canContinue reports whether a run is saved and unfinished.
func (e *Env) canContinue() bool {
	if e.Store == nil {
		return false
	}
	p, err := e.Store.Load()
	if err != nil {
		log.Printf("[progress] Warning: could not load progress: %v", err)
		return false
	}
	return p != nil && !leveldata.IsEnd(p.Level)
}
