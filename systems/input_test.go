package systems

import (
	"testing"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/stretchr/testify/assert"
)

func TestGetActionEdges(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"pressed this frame", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"released", true, false, components.ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			input.Previous[cfg.ActionJump] = tt.prev
			input.Current[cfg.ActionJump] = tt.curr
			assert.Equal(t, tt.want, GetAction(&input, cfg.ActionJump))
		})
	}
}

func TestStickDirections(t *testing.T) {
	assert.Equal(t, [4]bool{}, stickDirections(0.2, -0.2, 0.25), "inside the deadzone")
	assert.Equal(t, [4]bool{true, false, false, true}, stickDirections(-0.9, 0.5, 0.25))
	assert.Equal(t, [4]bool{false, true, true, false}, stickDirections(0.3, -0.3, 0.25))
}

func TestClassifyGamepad(t *testing.T) {
	tests := map[string]components.InputMethod{
		"Sony DualSense Wireless Controller": components.InputPlayStation,
		"PS4 Controller":                     components.InputPlayStation,
		"Xbox Wireless Controller":           components.InputXbox,
		"8BitDo Pro 2":                       components.InputXbox,
		"":                                   components.InputXbox,
	}
	for name, want := range tests {
		assert.Equal(t, want, classifyGamepad(name), name)
	}
}
