package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/godofsky/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the start menu
type MenuScene struct {
	env          *Env
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	status       string
	once         sync.Once
	next         interface{}
}

// NewMenuScene creates a menu scene. status is shown under the buttons.
func NewMenuScene(sc SceneChanger, env *Env, status string) *MenuScene {
	return &MenuScene{sceneChanger: sc, env: env, status: status}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()

	if ms.next != nil {
		ms.sceneChanger.ChangeScene(ms.next)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		ms.env.canContinue(),
		func() { ms.next = NewWorldScene(ms.sceneChanger, ms.env, false) },
		func() { ms.next = NewWorldScene(ms.sceneChanger, ms.env, true) },
		func() { os.Exit(0) },
	)
	ms.menuUI.SetStatus(ms.status)
}
