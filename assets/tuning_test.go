package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/exorcist/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func useDataDir(t *testing.T, dir string) {
	t.Helper()
	old := DataDir
	DataDir = dir
	t.Cleanup(func() { DataDir = old })
}

func decodeNodes(t *testing.T, doc string) map[string]yaml.Node {
	t.Helper()
	var nodes map[string]yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(doc), &nodes))
	return nodes
}

func TestLoadEmbeddedTuning(t *testing.T) {
	useDataDir(t, t.TempDir())

	types, err := LoadEnemyTypes()
	require.NoError(t, err)
	assert.Len(t, types, 4)
	assert.Equal(t, "Wisp", types["Booky"].SpawnOnDeath)
	assert.True(t, types["Wisp"].Flying, "defaults survive partial overrides")

	catalog, err := LoadUpgrades()
	require.NoError(t, err)
	assert.Len(t, catalog, 10)
}

func TestLoadDataPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	useDataDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnemiesFile), []byte("Wisp:\n  health: 5\n"), 0o644))

	types, err := LoadEnemyTypes()
	require.NoError(t, err)
	assert.Equal(t, 5, types["Wisp"].Health)
	assert.Equal(t, 120.0, types["Wisp"].ChaseRange)

	_, ok := DataModTime("data/" + EnemiesFile)
	assert.True(t, ok)
	_, ok = DataModTime(UpgradesFile)
	assert.False(t, ok)
}

func TestMergeEnemyTypes(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
		check   func(t *testing.T, types map[string]config.EnemyTypeConfig)
	}{
		{
			name: "override keeps tint",
			doc:  "Sharpy:\n  hop_windup: 20\n",
			check: func(t *testing.T, types map[string]config.EnemyTypeConfig) {
				assert.Equal(t, 20, types["Sharpy"].HopWindup)
				assert.Equal(t, config.DefaultEnemyTypes()["Sharpy"].TintColor, types["Sharpy"].TintColor)
			},
		},
		{
			name: "new type",
			doc:  "Ghoul:\n  reality: 0\n  health: 30\n",
			check: func(t *testing.T, types map[string]config.EnemyTypeConfig) {
				g := types["Ghoul"]
				assert.Equal(t, "Ghoul", g.Name)
				assert.Equal(t, config.Reality.Colors[config.RealitySpirit], g.TintColor)
				assert.Equal(t, 12, g.CollisionWidth)
			},
		},
		{name: "bad reality", doc: "Wisp:\n  reality: 3\n", wantErr: true},
		{name: "new type without health", doc: "Ghoul:\n  reality: 1\n", wantErr: true},
		{name: "unknown death spawn", doc: "Wisp:\n  spawn_on_death: Nobody\n", wantErr: true},
		{name: "wrong field type", doc: "Wisp:\n  health: lots\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types, err := MergeEnemyTypes(config.DefaultEnemyTypes(), decodeNodes(t, tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, types)
		})
	}
}

func TestMergeDoesNotMutateDefaults(t *testing.T) {
	defaults := config.DefaultEnemyTypes()
	_, err := MergeEnemyTypes(defaults, decodeNodes(t, "Wisp:\n  health: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 40, defaults["Wisp"].Health)
}

func TestLoadSpecErrors(t *testing.T) {
	dir := t.TempDir()
	useDataDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("a: ["), 0o644))

	_, err := LoadSpec[map[string]int]("broken.yaml")
	assert.ErrorContains(t, err, "unmarshal broken.yaml")

	_, err = LoadSpec[map[string]int]("missing.yaml")
	assert.ErrorContains(t, err, "load missing.yaml")
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, UpgradesFile), []byte("upgrades: []\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, UpgradesFile, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no watch event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Empty(t, w.Drain())
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
