package components

import "github.com/yohamta/donburi"

// OrbData is a pooled experience orb belonging to one reality.
type OrbData struct {
	Active         bool
	Value          int
	Reality        int
	SpeedX, SpeedY float64
	Attracted      bool
}

var Orb = donburi.NewComponentType[OrbData]()

// OrbPoolData holds inactive orbs and the merge timer.
type OrbPoolData struct {
	Free       []*donburi.Entry
	Total      int
	MergeTimer int
}

var OrbPool = donburi.NewComponentType[OrbPoolData]()
