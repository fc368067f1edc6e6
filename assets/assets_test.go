package assets

import (
	"testing"

	"github.com/automoto/exorcist/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReality(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"", config.RealityShared, false},
		{"shared", config.RealityShared, false},
		{"spirit", config.RealitySpirit, false},
		{" Spirit ", config.RealitySpirit, false},
		{"living", config.RealityLiving, false},
		{"limbo", config.RealityShared, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseReality(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadLevels(t *testing.T) {
	levels, err := NewLevelLoader().LoadLevels()
	require.NoError(t, err)
	require.Len(t, levels, 2)

	first := levels[0]
	assert.Equal(t, "01_crossroads", first.Name)
	assert.Equal(t, 1280, first.Width)
	assert.Equal(t, 480, first.Height)
	require.Len(t, first.PlayerSpawns, 1)
	assert.Equal(t, 64.0, first.PlayerSpawns[0].X)
	assert.NotEmpty(t, first.EnemySpawns)
	assert.NotEmpty(t, first.DeadZones)

	realities := map[int]int{}
	for _, s := range first.Solids {
		realities[s.Reality]++
	}
	assert.Positive(t, realities[config.RealityShared])
	assert.Equal(t, 1, realities[config.RealitySpirit])
	assert.Equal(t, 1, realities[config.RealityLiving])

	require.Len(t, first.MovingPlatforms, 2)
	assert.Equal(t, 160.0, first.MovingPlatforms[0].DX)
	assert.Equal(t, config.RealityLiving, first.MovingPlatforms[0].Reality)
	assert.Equal(t, 96.0, first.MovingPlatforms[1].DY)

	require.Len(t, first.Hazards, 2)
	assert.Equal(t, 8, first.Hazards[0].Damage)
	assert.Equal(t, config.DamageArea.Damage, first.Hazards[1].Damage, "missing damage uses the default")

	var typed []string
	for _, s := range first.EnemySpawns {
		if s.EnemyType != "" {
			typed = append(typed, s.EnemyType)
		}
	}
	assert.ElementsMatch(t, []string{"Booky", "Wisp"}, typed)
}

func TestLoadLevelMissing(t *testing.T) {
	_, err := NewLevelLoader().LoadLevel("levels/nope.tmx")
	assert.Error(t, err)
	assert.Panics(t, func() { NewLevelLoader().MustLoadLevel("levels/nope.tmx") })
}
