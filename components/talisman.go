package components

import (
	"github.com/yohamta/donburi"
)

// TalismanData is a pooled projectile thrown in the Spirit reality.
type TalismanData struct {
	Active         bool
	SpeedX, SpeedY float64
	Damage         int
	KnockbackForce float64
	StunFrames     int
	Lifetime       int // Frames left before it returns to the pool
	HitsRemaining  int
	HitEnemies     map[*donburi.Entry]struct{}

	Explosive           bool
	ExplosionRadius     float64
	ExplosionPercentage float64
}

var Talisman = donburi.NewComponentType[TalismanData]()

// TalismanPoolData holds the inactive talismans ready for reuse.
type TalismanPoolData struct {
	Free  []*donburi.Entry
	Total int
}

var TalismanPool = donburi.NewComponentType[TalismanPoolData]()
