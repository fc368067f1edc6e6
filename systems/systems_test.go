package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/exorcist/components"
	"github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 2048, 1024, 16, 16)
	factory.CreateGame(e, nil)
	return e
}

func pendingSFX(e *ecs.ECS) []config.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

func TestClampCamera(t *testing.T) {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2

	tests := []struct {
		name         string
		x, y         float64
		levelW       float64
		levelH       float64
		wantX, wantY float64
	}{
		{"top left corner", 0, 0, 2000, 1000, halfW, halfH},
		{"bottom right corner", 5000, 5000, 2000, 1000, 2000 - halfW, 1000 - halfH},
		{"inside stays put", 800, 500, 2000, 1000, 800, 500},
		{"small level is centered", 900, -40, 300, 200, 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ClampCamera(tt.x, tt.y, tt.levelW, tt.levelH)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}

	assert.Equal(t, color.RGBA{100, 50, 25, 127}, scaleAlpha(c, 0.5))
	assert.Equal(t, c, scaleAlpha(c, 1.5), "clamped to opaque")
	assert.Equal(t, color.RGBA{}, scaleAlpha(c, -1))
}

func TestKnockbackDirection(t *testing.T) {
	assert.Equal(t, -1.0, knockbackDirection(10, 5))
	assert.Equal(t, 1.0, knockbackDirection(10, 20))
	assert.Equal(t, 1.0, knockbackDirection(10, 10))
}

func TestEnemySurfaces(t *testing.T) {
	assert.Equal(t, playerSurfaces, enemySurfaces(-1))

	for _, idx := range []int{config.RealitySpirit, config.RealityLiving} {
		s := enemySurfaces(idx)
		assert.ElementsMatch(t, []string{tags.ResolvSolid, tags.RealitySolid(idx)}, s.solids)
		assert.Contains(t, s.floors, tags.RealityPlatform(idx))
		assert.Contains(t, s.floors, tags.ResolvPlatform)
		assert.NotContains(t, s.solids, tags.RealitySolid(1-idx), "the other reality stays intangible")
	}
}

func TestResolvePlaceholders(t *testing.T) {
	tests := []struct {
		method components.InputMethod
		want   string
	}{
		{components.InputKeyboard, "Press C to cross over"},
		{components.InputXbox, "Press B to cross over"},
		{components.InputPlayStation, "Press Circle to cross over"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, resolvePlaceholders("Press {switch} to cross over", tt.method))
		})
	}

	assert.Equal(t, "no tokens", resolvePlaceholders("no tokens", components.InputXbox))
	assert.Equal(t, "{unknown}", resolvePlaceholders("{unknown}", components.InputKeyboard))
}

func TestStepMovingPlatform(t *testing.T) {
	p := &components.MovingPlatformData{
		Start:     components.Vector{X: 0, Y: 0},
		End:       components.Vector{X: 10, Y: 0},
		Forward:   true,
		WaitTimer: 2,
	}

	for i := 0; i < 2; i++ {
		dx, dy := stepMovingPlatform(p, 0, 0)
		assert.Zero(t, dx)
		assert.Zero(t, dy)
	}
	assert.Zero(t, p.WaitTimer)

	x := 0.0
	for i := 0; i < 100 && p.WaitTimer == 0; i++ {
		dx, dy := stepMovingPlatform(p, x, 0)
		assert.Zero(t, dy)
		x += dx
	}

	assert.InDelta(t, 10, x, 1e-3)
	assert.False(t, p.Forward, "leg reverses at the end")
	assert.Equal(t, config.Platform.WaitFrames, p.WaitTimer)
	assert.NotNil(t, p.Leg)
}

func TestGameOverLines(t *testing.T) {
	g := &components.GameOverData{
		Waves:  3,
		Levels: [2]int{2, 4},
		Stats: components.RunStatsData{
			Frames:      65 * 60,
			Kills:       12,
			DamageTaken: 40,
			Switches:    9,
			XP:          [2]int{150, 480},
		},
	}

	assert.Equal(t, []string{
		"Wave 3   Time 1:05",
		"Kills 12   Damage taken 40   Switches 9",
		"Living Lv 4 (480 xp)   Spirit Lv 2 (150 xp)",
	}, gameOverLines(g))
}

func TestHintLine(t *testing.T) {
	b := buttonsFor(components.InputPlayStation)
	assert.Equal(t, "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume",
		hintLine(b.Navigate, "Navigate", b.Select, "Select", b.Pause, "Resume"))

	b = buttonsFor(components.InputMethod(99))
	assert.Equal(t, "Arrows: Navigate   Enter: Select", hintLine(b.Navigate, "Navigate", b.Select, "Select"))
	assert.Empty(t, hintLine("dangling"))
}

func TestPauseExitEndsRunAsLoss(t *testing.T) {
	e := newTestECS(t)
	endRun(e)

	result, done := RunResult(e)
	assert.True(t, done)
	assert.False(t, result.Won)
}
