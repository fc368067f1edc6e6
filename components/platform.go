package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MovingPlatformData drives a one-way platform between two points. Leg
// tweens a progress value from 0 (start) to 1 (end) or back.
type MovingPlatformData struct {
	Start, End Vector
	Leg        *gween.Tween
	Forward    bool // Current leg heads toward End
	WaitTimer  int
	Progress   float64
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()
