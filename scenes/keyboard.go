package scenes

import (
	"log"

	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/shared/ability"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard reads actions through the configured key bindings.
type Keyboard struct {
	keys [cfg.ActionCount][]ebiten.Key
}

func NewKeyboard(c cfg.InputConfig) *Keyboard {
	byName := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		byName[k.String()] = k
	}

	kb := &Keyboard{}
	for action, names := range c.Bindings {
		if action <= cfg.ActionNone || action >= cfg.ActionCount {
			continue
		}
		for _, name := range names {
			key, ok := byName[name]
			if !ok {
				log.Printf("[input] Warning: unknown key %q for %s", name, action)
				continue
			}
			kb.keys[action] = append(kb.keys[action], key)
		}
	}
	return kb
}

func (kb *Keyboard) Held(a cfg.ActionID) bool {
	for _, k := range kb.keys[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (kb *Keyboard) Pressed(a cfg.ActionID) bool {
	for _, k := range kb.keys[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Snapshot is this frame's ability input.
func (kb *Keyboard) Snapshot() ability.Input {
	return cfg.Snapshot(kb.Held, kb.Pressed)
}
