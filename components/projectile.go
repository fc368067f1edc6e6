package components

import (
	"github.com/yohamta/donburi"
)

// ProjectileData is a thrown enemy attack (Booky's books).
type ProjectileData struct {
	Owner          *donburi.Entry
	Damage         int
	KnockbackForce float64
	SpeedX, SpeedY float64
	Lifetime       int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
