package components

import "github.com/yohamta/donburi"

// DamageAreaData hurts the player on overlap. Sulker trails expire after
// Lifetime frames; level hazards use a negative Lifetime and never expire.
type DamageAreaData struct {
	Damage         int
	KnockbackForce float64
	Interval       int // Inert frames after each hit
	Cooldown       int
	Lifetime       int
}

var DamageArea = donburi.NewComponentType[DamageAreaData]()

// Permanent reports whether the area never expires.
func (d *DamageAreaData) Permanent() bool {
	return d.Lifetime < 0
}
