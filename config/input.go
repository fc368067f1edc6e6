package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionJump
	ActionAttack
	ActionCrouch
	ActionSwitchReality
	ActionMinimap
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// actionNames are the keys used under "controls" in the config file.
var actionNames = map[ActionID]string{
	ActionMoveLeft:      "move_left",
	ActionMoveRight:     "move_right",
	ActionMoveUp:        "move_up",
	ActionJump:          "jump",
	ActionAttack:        "attack",
	ActionCrouch:        "crouch",
	ActionSwitchReality: "switch_reality",
	ActionMinimap:       "minimap",
	ActionPause:         "pause",
	ActionMenuUp:        "menu_up",
	ActionMenuDown:      "menu_down",
	ActionMenuLeft:      "menu_left",
	ActionMenuRight:     "menu_right",
	ActionMenuSelect:    "menu_select",
	ActionMenuBack:      "menu_back",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func bind(k []ebiten.Key, buttons ...ebiten.StandardGamepadButton) InputBinding {
	return InputBinding{Keys: k, StandardGamepadButtons: buttons}
}

// ParseKey resolves a key name as printed by ebiten.Key.String, ignoring
// case, e.g. "C", "ShiftLeft", "ArrowUp".
func ParseKey(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// RebindKeys replaces the keyboard keys of action. Gamepad buttons stay.
func RebindKeys(action ActionID, names []string) error {
	binding, ok := Input.Bindings[action]
	if !ok {
		return fmt.Errorf("unknown action %s", action)
	}
	parsed := make([]ebiten.Key, 0, len(names))
	for _, n := range names {
		k, err := ParseKey(n)
		if err != nil {
			return fmt.Errorf("controls.%s: %w", action, err)
		}
		parsed = append(parsed, k)
	}
	if len(parsed) == 0 {
		return fmt.Errorf("controls.%s: no keys", action)
	}
	binding.Keys = parsed
	Input.Bindings[action] = binding
	return nil
}

func init() {
	var (
		left  = bind(keys(ebiten.KeyLeft, ebiten.KeyA), ebiten.StandardGamepadButtonLeftLeft)
		right = bind(keys(ebiten.KeyRight, ebiten.KeyD), ebiten.StandardGamepadButtonLeftRight)
		up    = bind(keys(ebiten.KeyUp, ebiten.KeyW), ebiten.StandardGamepadButtonLeftTop)
		down  = bind(keys(ebiten.KeyDown, ebiten.KeyS), ebiten.StandardGamepadButtonLeftBottom)
	)

	// Gamepad buttons use the standard layout: RightBottom is A / Cross,
	// RightLeft X / Square, RightRight B / Circle.
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  left,
			ActionMoveRight: right,
			ActionMoveUp:    up,
			ActionCrouch:    down,
			ActionMenuLeft:  left,
			ActionMenuRight: right,
			ActionMenuUp:    up,
			ActionMenuDown:  down,

			ActionJump:   bind(keys(ebiten.KeyX, ebiten.KeySpace), ebiten.StandardGamepadButtonRightBottom),
			ActionAttack: bind(keys(ebiten.KeyZ, ebiten.KeyJ), ebiten.StandardGamepadButtonRightLeft),
			// Either shoulder also crosses over
			ActionSwitchReality: bind(keys(ebiten.KeyC, ebiten.KeyShiftLeft, ebiten.KeyK),
				ebiten.StandardGamepadButtonRightRight,
				ebiten.StandardGamepadButtonFrontTopLeft,
				ebiten.StandardGamepadButtonFrontTopRight),
			ActionMinimap: bind(keys(ebiten.KeyM), ebiten.StandardGamepadButtonCenterLeft),
			ActionPause:   bind(keys(ebiten.KeyEscape, ebiten.KeyP), ebiten.StandardGamepadButtonCenterRight),

			ActionMenuSelect: bind(keys(ebiten.KeyEnter, ebiten.KeyZ), ebiten.StandardGamepadButtonRightBottom),
			ActionMenuBack:   bind(keys(ebiten.KeyEscape, ebiten.KeyBackspace), ebiten.StandardGamepadButtonRightRight),
		},
	}
}
