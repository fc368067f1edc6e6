package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot restores the globals Load touches once the test ends.
func snapshot(t *testing.T) {
	t.Helper()
	c, debug, audio, reality, wave, ranged := *C, Debug, Audio, Reality, Wave, Ranged
	bindings := make(map[ActionID]InputBinding, len(Input.Bindings))
	for k, b := range Input.Bindings {
		bindings[k] = b
	}
	t.Cleanup(func() {
		*C = c
		Input.Bindings = bindings
		Debug = debug
		Audio = audio
		Reality = reality
		Wave = wave
		Ranged = ranged
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exorcist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	snapshot(t)

	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, RealityLiving, Reality.Start)
	assert.InDelta(t, 0.2, Reality.InactiveOpacity, 1e-9)
	assert.InDelta(t, 2.0, Reality.TransitionSpeed, 1e-9)
	assert.Equal(t, 5, Wave.TotalWaves)
}

func TestLoadFileOverrides(t *testing.T) {
	snapshot(t)

	path := writeConfig(t, `
window:
  scale: 3
reality:
  start: 0
  inactive_opacity: 0.35
waves:
  total: 2
  enemies_per_wave: 8
debug:
  skip_menu: true
combat:
  talisman_stun_frames: 4
`)
	require.NoError(t, Load(path))

	assert.InDelta(t, 3.0, C.Scale, 1e-9)
	assert.Equal(t, RealitySpirit, Reality.Start)
	assert.InDelta(t, 0.35, Reality.InactiveOpacity, 1e-9)
	assert.Equal(t, 2, Wave.TotalWaves)
	assert.Equal(t, 8, Wave.EnemiesPerWave)
	assert.True(t, Debug.SkipMenu)
	assert.Equal(t, 4, Ranged.StunFrames)
	// untouched keys keep their defaults
	assert.Equal(t, 1800, Wave.WaveInterval)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	snapshot(t)

	path := writeConfig(t, "waves:\n  total: 2\n")
	t.Setenv("EXORCIST_WAVES_TOTAL", "7")

	require.NoError(t, Load(path))
	assert.Equal(t, 7, Wave.TotalWaves)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"start out of range", "reality:\n  start: 4\n"},
		{"opacity above one", "reality:\n  inactive_opacity: 1.5\n"},
		{"negative speed", "reality:\n  transition_speed: -1\n"},
		{"zero waves", "waves:\n  total: 0\n"},
		{"negative talisman stun", "combat:\n  talisman_stun_frames: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot(t)
			assert.Error(t, Load(writeConfig(t, tt.body)))
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	snapshot(t)
	assert.Error(t, Load(writeConfig(t, "reality: [unclosed\n")))
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "wall_slide", WallSlide.String())
	assert.Equal(t, "unknown", StateID(999).String())
	assert.True(t, AttackMelee.IsAttack())
	assert.False(t, Jump.IsAttack())
}

func TestLoadRebindsKeys(t *testing.T) {
	snapshot(t)

	path := writeConfig(t, `
controls:
  switch_reality: [v, ShiftRight]
`)
	require.NoError(t, Load(path))

	binding := Input.Bindings[ActionSwitchReality]
	assert.Equal(t, []ebiten.Key{ebiten.KeyV, ebiten.KeyShiftRight}, binding.Keys)
	assert.NotEmpty(t, binding.StandardGamepadButtons, "gamepad buttons are kept")
	assert.Equal(t, []ebiten.Key{ebiten.KeyX, ebiten.KeySpace}, Input.Bindings[ActionJump].Keys)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	snapshot(t)
	err := Load(writeConfig(t, "controls:\n  jump: [NotAKey]\n"))
	assert.ErrorContains(t, err, "controls.jump")
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("shiftleft")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyShiftLeft, k)

	k, err = ParseKey("C")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyC, k)

	_, err = ParseKey("")
	assert.Error(t, err)
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "switch_reality", ActionSwitchReality.String())
	assert.Equal(t, "action(99)", ActionID(99).String())
	for a := ActionNone + 1; a < ActionCount; a++ {
		_, bound := Input.Bindings[a]
		assert.True(t, bound, "%s has a binding", a)
	}
}
