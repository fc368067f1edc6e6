package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the game over menu state and the run it summarises
type GameOverData struct {
	SelectedOption GameOverOption
	Won            bool
	Stats          RunStatsData
	Levels         [2]int
	Waves          int
	LevelIndex     int // Level the run was played on, replayed by Retry
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
