package systems

import (
	"testing"

	"github.com/automoto/exorcist/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRun(t *testing.T) {
	a, b, c := RunRecord{ID: "a"}, RunRecord{ID: "b"}, RunRecord{ID: "c"}

	assert.Equal(t, []RunRecord{c, a}, appendRun([]RunRecord{a, b}, c, 2))
	assert.Equal(t, []RunRecord{c, a, b}, appendRun([]RunRecord{a, b}, c, 0), "no limit")
	assert.Equal(t, []RunRecord{a}, appendRun(nil, a, 5))
}

func TestBestRun(t *testing.T) {
	tests := []struct {
		name string
		runs []RunRecord
		want string
	}{
		{
			name: "fastest clear wins",
			runs: []RunRecord{
				{ID: "slow", Won: true, Frames: 9000},
				{ID: "lost", Waves: 5, Kills: 99},
				{ID: "fast", Won: true, Frames: 6000},
			},
			want: "fast",
		},
		{
			name: "furthest wave among losses",
			runs: []RunRecord{
				{ID: "early", Waves: 2, Kills: 40},
				{ID: "late", Waves: 4, Kills: 10},
			},
			want: "late",
		},
		{
			name: "kills break ties",
			runs: []RunRecord{
				{ID: "few", Waves: 3, Kills: 5},
				{ID: "many", Waves: 3, Kills: 15},
			},
			want: "many",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, ok := BestRun(tt.runs)
			require.True(t, ok)
			assert.Equal(t, tt.want, best.ID)
		})
	}

	_, ok := BestRun(nil)
	assert.False(t, ok)
}

func TestBestRunKeepsInputOrder(t *testing.T) {
	runs := []RunRecord{{ID: "a", Waves: 1}, {ID: "b", Waves: 3}}
	BestRun(runs)
	assert.Equal(t, "a", runs[0].ID)
}

func TestFormatRun(t *testing.T) {
	assert.Equal(t, "Best: Cleared wave 5  42 kills  2:05",
		FormatRun(RunRecord{Won: true, Waves: 5, Kills: 42, Frames: 125 * 60}))
	assert.Equal(t, "Best: Lost wave 2  7 kills  0:40",
		FormatRun(RunRecord{Waves: 2, Kills: 7, Frames: 40 * 60}))
}

func TestNewRunRecord(t *testing.T) {
	g := &components.GameOverData{
		Won:    true,
		Waves:  5,
		Levels: [2]int{3, 4},
		Stats: components.RunStatsData{
			Frames:      7200,
			Kills:       30,
			DamageTaken: 55,
			Switches:    12,
			XP:          [2]int{300, 410},
		},
	}

	rec := NewRunRecord(g)

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.FinishedAt.IsZero())
	assert.True(t, rec.Won)
	assert.Equal(t, 5, rec.Waves)
	assert.Equal(t, 7200, rec.Frames)
	assert.Equal(t, 30, rec.Kills)
	assert.Equal(t, 55, rec.DamageTaken)
	assert.Equal(t, 12, rec.Switches)
	assert.Equal(t, [2]int{300, 410}, rec.XP)
	assert.Equal(t, [2]int{3, 4}, rec.Levels)
	assert.NotEqual(t, rec.ID, NewRunRecord(g).ID)
}

func TestPersistenceDisabledIsSafe(t *testing.T) {
	assert.Nil(t, LoadRuns())
	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	SaveRun(RunRecord{ID: "x"})
}
