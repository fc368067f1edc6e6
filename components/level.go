package components

import (
	"github.com/automoto/exorcist/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Levels       []assets.Level
	CurrentLevel *assets.Level
	LevelIndex   int
}

var Level = donburi.NewComponentType[LevelData]()
