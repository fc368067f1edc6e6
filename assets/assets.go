package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/exorcist/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels all:data
	assetFS embed.FS
)

// Rect is an axis aligned box in level pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Solid is a wall or floor block. Reality is config.RealityShared for
// geometry that exists in both worlds.
type Solid struct {
	Rect
	Reality int
}

// Platform is a one-way platform.
type Platform struct {
	Rect
	Reality int
}

// MovingPlatform travels from its rect position by (DX, DY) and back.
type MovingPlatform struct {
	Rect
	Reality int
	DX, DY  float64
}

// Hazard is a permanent damage area such as spikes.
type Hazard struct {
	Rect
	Reality int
	Damage  int
}

type PlayerSpawn struct {
	X, Y float64
}

type EnemySpawn struct {
	X, Y      float64
	EnemyType string // Empty lets the wave spawner pick
}

type Level struct {
	Name            string
	Width           int
	Height          int
	Solids          []Solid
	Platforms       []Platform
	MovingPlatforms []MovingPlatform
	Hazards         []Hazard
	DeadZones       []Rect
	PlayerSpawns    []PlayerSpawn
	EnemySpawns     []EnemySpawn
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// ParseReality maps a Tiled "reality" property to a reality index.
func ParseReality(value string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "shared", "both":
		return config.RealityShared, nil
	case "spirit", "dead":
		return config.RealitySpirit, nil
	case "living", "alive":
		return config.RealityLiving, nil
	}
	return config.RealityShared, fmt.Errorf("unknown reality %q", value)
}

func (l *LevelLoader) MustLoadLevels() []Level {
	levels, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}

// LoadLevels loads every .tmx file in the levels directory, sorted by name.
func (l *LevelLoader) LoadLevels() ([]Level, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		level, err := l.LoadLevel(filepath.ToSlash(filepath.Join("levels", name)))
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("no level files found in assets/levels directory")
	}
	return levels, nil
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel reads a Tiled map and collects its object groups.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	level, err := buildLevel(levelMap)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", levelPath, err)
	}
	level.Name = strings.TrimSuffix(filepath.Base(levelPath), ".tmx")
	return level, nil
}

func buildLevel(levelMap *tiled.Map) (Level, error) {
	level := Level{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
			realityIdx, err := ParseReality(o.Properties.GetString("reality"))
			if err != nil {
				return Level{}, fmt.Errorf("object %d in %s: %w", o.ID, og.Name, err)
			}

			switch og.Name {
			case "Solids":
				level.Solids = append(level.Solids, Solid{Rect: r, Reality: realityIdx})
			case "Platforms":
				level.Platforms = append(level.Platforms, Platform{Rect: r, Reality: realityIdx})
			case "MovingPlatforms":
				level.MovingPlatforms = append(level.MovingPlatforms, MovingPlatform{
					Rect:    r,
					Reality: realityIdx,
					DX:      o.Properties.GetFloat("dx"),
					DY:      o.Properties.GetFloat("dy"),
				})
			case "Hazards":
				damage := o.Properties.GetInt("damage")
				if damage <= 0 {
					damage = config.DamageArea.Damage
				}
				level.Hazards = append(level.Hazards, Hazard{Rect: r, Reality: realityIdx, Damage: damage})
			case "DeadZones":
				level.DeadZones = append(level.DeadZones, r)
			case "PlayerSpawn":
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			case "EnemySpawn":
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					EnemyType: o.Properties.GetString("enemyType"),
				})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return Level{}, fmt.Errorf("no PlayerSpawn object")
	}
	if len(level.EnemySpawns) == 0 {
		return Level{}, fmt.Errorf("no EnemySpawn objects")
	}
	return level, nil
}
