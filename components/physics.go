package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX         float64
	SpeedY         float64
	Gravity        float64
	Friction       float64
	AttackFriction float64
	MaxSpeed       float64
	MaxFallSpeed   float64
	Flying         bool
	OnGround       *resolv.Object
	WallSliding    *resolv.Object
	IgnorePlatform *resolv.Object
	Carried        Vector // Movement inherited from a moving platform this frame
}

var Physics = donburi.NewComponentType[PhysicsData]()
