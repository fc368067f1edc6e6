package leveling

import "math"

// Stats are the player values upgrades modify.
type Stats struct {
	MoveSpeed float64

	MaxHealth int
	Health    int

	MeleeCooldown  int
	MeleeDamage    int
	MeleeRange     float64
	MeleeKnockback float64
	StunFrames     int

	RangedCooldown      int
	RangedDamage        int
	ProjectileSpeed     float64
	Amount              int
	ExplosionRadius     float64
	ExplosionPercentage float64
	Explosive           bool
}

// Apply changes the stats by one level of u. Cooldowns never drop below
// minCooldown frames.
func (s *Stats) Apply(u Upgrade, minCooldown int) {
	v := u.Value
	switch u.Effect {
	case EffectSpeed:
		s.MoveSpeed += v
	case EffectAttackSpeed:
		s.MeleeCooldown = max(minCooldown, s.MeleeCooldown-int(math.Round(v)))
		s.RangedCooldown = max(minCooldown, s.RangedCooldown-int(math.Round(v)))
	case EffectDamage:
		s.MeleeDamage += int(math.Round(v))
		s.RangedDamage += int(math.Round(v))
	case EffectHealth:
		s.MaxHealth += int(math.Round(v))
		s.Health = min(s.MaxHealth, s.Health+int(math.Round(v)))
	case EffectStun:
		s.StunFrames += int(math.Round(v))
	case EffectRange:
		s.MeleeRange += v
	case EffectKnockback:
		s.MeleeKnockback += v
	case EffectMultiShot:
		s.Amount += int(math.Round(v))
	case EffectQuickTalisman:
		s.ProjectileSpeed += v
		s.RangedCooldown = max(minCooldown, s.RangedCooldown-int(math.Round(v*10)))
	case EffectExplodingTalisman:
		s.Explosive = true
		s.ExplosionRadius += v * 10
		s.ExplosionPercentage += v * 0.1
	}
}

// Owned tracks the level of every upgrade picked so far.
type Owned map[string]int

// Pick applies u to stats and raises its owned level.
func (o Owned) Pick(u Upgrade, stats *Stats, minCooldown int) int {
	stats.Apply(u, minCooldown)
	o[u.ID]++
	return o[u.ID]
}
