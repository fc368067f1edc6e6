package systems

import (
	"testing"

	"github.com/automoto/exorcist/components"
	"github.com/stretchr/testify/assert"
)

func TestMoveSettingsSelection(t *testing.T) {
	tests := []struct {
		name       string
		start      components.SettingsMenuOption
		delta      int
		fullscreen bool
		want       components.SettingsMenuOption
	}{
		{"down", components.SettingsOptMusicVolume, 1, false, components.SettingsOptSFXVolume},
		{"up wraps to back", components.SettingsOptMusicVolume, -1, false, components.SettingsOptBack},
		{"down wraps to top", components.SettingsOptBack, 1, false, components.SettingsOptMusicVolume},
		{"resolution shown when windowed", components.SettingsOptFullscreen, 1, false, components.SettingsOptResolution},
		{"resolution skipped in fullscreen", components.SettingsOptFullscreen, 1, true, components.SettingsOptInputMode},
		{"skipped going up too", components.SettingsOptInputMode, -1, true, components.SettingsOptFullscreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &components.SettingsMenuData{SelectedOption: tt.start, Fullscreen: tt.fullscreen}
			moveSettingsSelection(s, tt.delta)
			assert.Equal(t, tt.want, s.SelectedOption)
		})
	}
}

func TestStepVolume(t *testing.T) {
	steps := []float64{0, 0.25, 0.5, 0.75, 1}

	tests := []struct {
		current float64
		dir     int
		want    float64
	}{
		{0.5, 1, 0.75},
		{0.5, -1, 0.25},
		{1, 1, 1},
		{0, -1, 0},
		{0.6, 1, 0.75},
		{0.3, -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stepVolume(tt.current, tt.dir, steps), "%v %+d", tt.current, tt.dir)
	}
	assert.Equal(t, 0.4, stepVolume(0.4, 1, nil))
}

func TestWrapIndex(t *testing.T) {
	assert.Equal(t, 0, wrapIndex(3, 3))
	assert.Equal(t, 2, wrapIndex(-1, 3))
	assert.Equal(t, 1, wrapIndex(1, 3))
	assert.Equal(t, 0, wrapIndex(5, 0))
}

func TestFormatSettingsValues(t *testing.T) {
	assert.Equal(t, "[|||||.....] 50%", formatVolumeBar(0.5))
	assert.Equal(t, "[..........] 0%", formatVolumeBar(0))
	assert.Equal(t, "[||||||||||] 100%", formatVolumeBar(1))
	assert.Equal(t, "[X] On", formatToggle(true))
	assert.Equal(t, "[ ] Off", formatToggle(false))
}

func TestControlMappings(t *testing.T) {
	find := func(ms []controlMapping, action string) string {
		for _, m := range ms {
			if m.Action == action {
				return m.Button
			}
		}
		return ""
	}

	keyboard := controlMappings(components.InputKeyboard)
	assert.Equal(t, "C / Shift", find(keyboard, "Cross Over"))
	assert.Equal(t, "X / Space", find(keyboard, "Jump"))
	assert.Equal(t, "M", find(keyboard, "Minimap"))

	xbox := controlMappings(components.InputXbox)
	assert.Equal(t, "B", find(xbox, "Cross Over"))
	assert.Equal(t, "Start", find(xbox, "Pause"))

	ps := controlMappings(components.InputPlayStation)
	assert.Equal(t, "Circle", find(ps, "Cross Over"))
	assert.Equal(t, "Square", find(ps, "Attack"))
	assert.Len(t, ps, len(keyboard))
}
