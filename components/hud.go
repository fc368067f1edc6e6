package components

import "github.com/yohamta/donburi"

// HUDData is the singleton for HUD toggles.
type HUDData struct {
	ShowMinimap bool
}

var HUD = donburi.NewComponentType[HUDData]()
