package systems

import (
	"testing"

	"github.com/automoto/exorcist/assets"
	"github.com/automoto/exorcist/components"
	"github.com/stretchr/testify/assert"
)

func TestLevelTitle(t *testing.T) {
	tests := map[string]string{
		"01_crossroads":    "Crossroads",
		"02_belfry":        "Belfry",
		"03_old-mill_yard": "Old Mill Yard",
		"arena":            "Arena",
		"42":               "42",
	}
	for in, want := range tests {
		assert.Equal(t, want, levelTitle(in), in)
	}
}

func TestNewMenuDataLevelRow(t *testing.T) {
	t.Cleanup(func() { lastLevelIndex = 0 })

	single := newMenuData([]assets.Level{{Name: "01_crossroads"}})
	assert.Equal(t, []components.MainMenuOption{
		components.MainMenuStart, components.MainMenuSettings, components.MainMenuExit,
	}, single.VisibleOptions, "nothing to pick with one level")

	lastLevelIndex = 1
	two := newMenuData([]assets.Level{{Name: "01_crossroads"}, {Name: "02_belfry"}})
	assert.Equal(t, []components.MainMenuOption{
		components.MainMenuStart, components.MainMenuLevel, components.MainMenuSettings, components.MainMenuExit,
	}, two.VisibleOptions)
	assert.Equal(t, []string{"Crossroads", "Belfry"}, two.Levels)
	assert.Equal(t, 1, two.LevelIndex, "keeps the last pick")
	assert.Equal(t, "Level: < Belfry >", mainMenuLabel(&two, components.MainMenuLevel))
	assert.Equal(t, "Start", mainMenuLabel(&two, components.MainMenuStart))
}

func TestCycleLevel(t *testing.T) {
	t.Cleanup(func() { lastLevelIndex = 0 })

	menu := &components.MenuData{Levels: []string{"A", "B", "C"}}
	cycleLevel(menu, -1)
	assert.Equal(t, 2, menu.LevelIndex, "wraps to the last level")
	cycleLevel(menu, 1)
	assert.Zero(t, menu.LevelIndex)
	cycleLevel(menu, 1)
	assert.Equal(t, 1, menu.LevelIndex)
	assert.Equal(t, 1, lastLevelIndex)
}
