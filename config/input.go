package config

import "github.com/automoto/godofsky/shared/ability"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionJump
	ActionDash
	ActionHook
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:  "none",
	ActionUp:    "up",
	ActionDown:  "down",
	ActionLeft:  "left",
	ActionRight: "right",
	ActionJump:  "jump",
	ActionDash:  "dash",
	ActionHook:  "hook",
	ActionPause: "pause",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig maps each action to key names. Names follow ebiten's key
// names ("ArrowLeft", "Space", "Z") so the mapping stays free of the
// client library.
type InputConfig struct {
	Bindings map[ActionID][]string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]string{
			ActionUp:    {"ArrowUp", "W"},
			ActionDown:  {"ArrowDown", "S"},
			ActionLeft:  {"ArrowLeft", "A"},
			ActionRight: {"ArrowRight", "D"},
			ActionJump:  {"Space"},
			ActionDash:  {"X", "ShiftLeft"},
			ActionHook:  {"Z"},
			ActionPause: {"Escape"},
		},
	}
}

// Snapshot builds one tick of ability input from per-action key state.
// held reports whether an action is down, pressed whether it went down this
// frame.
func Snapshot(held, pressed func(ActionID) bool) ability.Input {
	return ability.Input{
		Up:    held(ActionUp),
		Down:  held(ActionDown),
		Left:  held(ActionLeft),
		Right: held(ActionRight),
		Jump:  held(ActionJump),
		Hook:  held(ActionHook),

		JumpPressed: pressed(ActionJump),
		DashPressed: pressed(ActionDash),
		HookPressed: pressed(ActionHook),
	}
}
