package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuLevel
	MainMenuSettings
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
	BestRun        string // Summary line of the best saved run, empty if none

	Levels     []string // Display names of the playable levels
	LevelIndex int
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
