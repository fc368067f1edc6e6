package systems

import (
	"strings"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reused every frame
var gamepadIDs []ebiten.GamepadID

var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// stickActions maps the left stick directions (left, right, up, down) to
// the gameplay and menu actions they press.
var stickActions = [4][2]cfg.ActionID{
	{cfg.ActionMoveLeft, cfg.ActionMenuLeft},
	{cfg.ActionMoveRight, cfg.ActionMenuRight},
	{cfg.ActionMoveUp, cfg.ActionMenuUp},
	{cfg.ActionCrouch, cfg.ActionMenuDown},
}

// UpdateInput polls the keyboard and gamepads into the Input singleton.
// It runs before every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	keyboardUsed := false
	for action, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
				keyboardUsed = true
			}
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pad, padUsed := ebiten.GamepadID(0), false
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if pollGamepad(id, &input.Current) {
			pad, padUsed = id, true
		}
	}

	// A gamepad wins when both were used on the same frame
	switch {
	case padUsed:
		input.LastInputMethod = getControllerType(pad)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollGamepad presses the actions bound to held buttons and the left
// stick, reporting whether the pad was touched at all.
func pollGamepad(id ebiten.GamepadID, current *[cfg.ActionCount]bool) bool {
	used := false
	for action, binding := range cfg.Input.Bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				current[action] = true
				used = true
			}
		}
	}

	h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	for dir, held := range stickDirections(h, v, cfg.Input.AnalogDeadzone) {
		if !held {
			continue
		}
		for _, action := range stickActions[dir] {
			current[action] = true
		}
		used = true
	}
	return used
}

// stickDirections reports left, right, up and down for a stick position
// outside the deadzone.
func stickDirections(h, v, deadzone float64) [4]bool {
	return [4]bool{h < -deadzone, h > deadzone, v < -deadzone, v > deadzone}
}

func getControllerType(id ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[id]; ok {
		return method
	}
	method := classifyGamepad(ebiten.GamepadName(id))
	controllerTypeCache[id] = method
	return method
}

// classifyGamepad picks the button naming for a pad. Anything that is not
// recognisably a PlayStation pad uses Xbox names.
func classifyGamepad(name string) components.InputMethod {
	name = strings.ToLower(name)
	for _, marker := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, marker) {
			return components.InputPlayStation
		}
	}
	return components.InputXbox
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the state of an action, with the edges derived from
// the current and previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
