package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/leveling"
	"gopkg.in/yaml.v3"
)

const (
	EnemiesFile  = "enemies.yaml"
	UpgradesFile = "upgrades.yaml"
)

// DataDir is the on-disk directory checked before the embedded copy. It is
// relative to the working directory so edits in a checkout are picked up.
var DataDir = filepath.Join("assets", "data")

// LoadData reads a tuning file, preferring the copy on disk.
func LoadData(name string) ([]byte, error) {
	clean := cleanDataPath(name)
	if data, err := os.ReadFile(filepath.Join(DataDir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return assetFS.ReadFile("data/" + clean)
}

// DataModTime reports when the on-disk copy of name last changed.
func DataModTime(name string) (time.Time, bool) {
	info, err := os.Stat(filepath.Join(DataDir, filepath.FromSlash(cleanDataPath(name))))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanDataPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "assets/")
	return strings.TrimPrefix(s, "data/")
}

// LoadSpec decodes a YAML tuning file into T.
func LoadSpec[T any](name string) (T, error) {
	var zero T
	data, err := LoadData(name)
	if err != nil {
		return zero, fmt.Errorf("assets: load %s: %w", name, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("assets: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

// LoadEnemyTypes returns the enemy table with enemies.yaml applied on top of
// the compiled defaults.
func LoadEnemyTypes() (map[string]config.EnemyTypeConfig, error) {
	nodes, err := LoadSpec[map[string]yaml.Node](EnemiesFile)
	if err != nil {
		return nil, err
	}
	return MergeEnemyTypes(config.DefaultEnemyTypes(), nodes)
}

// MergeEnemyTypes decodes each node over the matching default so omitted
// keys keep their compiled value. Unknown names become new types.
func MergeEnemyTypes(defaults map[string]config.EnemyTypeConfig, nodes map[string]yaml.Node) (map[string]config.EnemyTypeConfig, error) {
	merged := make(map[string]config.EnemyTypeConfig, len(defaults)+len(nodes))
	for name, cfg := range defaults {
		merged[name] = cfg
	}

	for name, node := range nodes {
		cfg, known := merged[name]
		if err := node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("assets: enemy %s: %w", name, err)
		}
		if cfg.Reality != config.RealitySpirit && cfg.Reality != config.RealityLiving {
			return nil, fmt.Errorf("assets: enemy %s: reality %d out of range", name, cfg.Reality)
		}
		if cfg.Health <= 0 {
			return nil, fmt.Errorf("assets: enemy %s: health must be positive", name)
		}
		cfg.Name = name
		if !known {
			cfg.TintColor = config.Reality.Colors[cfg.Reality]
			if cfg.CollisionWidth == 0 {
				cfg.CollisionWidth = 12
			}
			if cfg.CollisionHeight == 0 {
				cfg.CollisionHeight = 12
			}
		}
		merged[name] = cfg
	}

	for name, cfg := range merged {
		if cfg.SpawnOnDeath != "" {
			if _, ok := merged[cfg.SpawnOnDeath]; !ok {
				return nil, fmt.Errorf("assets: enemy %s: spawn_on_death %q is not a known type", name, cfg.SpawnOnDeath)
			}
		}
	}
	return merged, nil
}

// LoadUpgrades reads the upgrade catalog.
func LoadUpgrades() ([]leveling.Upgrade, error) {
	data, err := LoadData(UpgradesFile)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", UpgradesFile, err)
	}
	return leveling.ParseCatalog(data)
}
