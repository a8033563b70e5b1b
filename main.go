package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/godofsky/assets"
	"github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/fonts"
	"github.com/automoto/godofsky/scenes"
	"github.com/automoto/godofsky/session"
	"github.com/automoto/godofsky/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(env *scenes.Env, skipMenu bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if skipMenu {
		g.scene = scenes.NewWorldScene(g, env, false)
	} else {
		g.scene = scenes.NewMenuScene(g, env, "")
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", config.Level.First, "First level to play")
	levelDir := flag.String("levels", "", "Load levels from this directory instead of the embedded ones")
	watch := flag.Bool("watch", false, "Reload the current level when its file changes (needs -levels)")
	seed := flag.Int64("seed", config.Level.CannonSeed, "Cannon timing seed")
	skipMenu := flag.Bool("play", false, "Skip the menu")
	pushOut := flag.Bool("pushout", false, "Push the player out of walls instead of only stopping it")
	flag.Parse()

	if err := fonts.Load(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	tuning := config.DefaultTuning()
	tuning.Physics.PushOut = *pushOut

	env := &scenes.Env{
		Levels: assets.Levels(),
		Dir:    assets.LevelDir,
		First:  *level,
		Seed:   *seed,
		Tuning: tuning,
	}
	if *levelDir != "" {
		env.Levels, env.Dir = os.DirFS(*levelDir), "."
	}
	if names, err := leveldata.Names(env.Levels, env.Dir); err == nil {
		log.Printf("[level] available: %v", names)
	}

	if *watch {
		if *levelDir == "" {
			log.Printf("Warning: -watch needs -levels, ignoring")
		} else if w, err := leveldata.NewWatcher(*levelDir); err != nil {
			log.Printf("Warning: Could not watch %s: %v", *levelDir, err)
		} else {
			defer w.Close()
			env.Watch = w.Events
			go logWatchErrors(w)
		}
	}

	// Initialize persistence
	if store, err := session.OpenGDataStore("godofsky"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		env.Store = store
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.DefaultTuning().Timestep().FPS())

	if err := ebiten.RunGame(NewGame(env, *skipMenu)); err != nil {
		log.Fatal(err)
	}
}

func logWatchErrors(w *leveldata.Watcher) {
	for err := range w.Errors {
		log.Printf("[level] Warning: watcher: %v", err)
	}
}
