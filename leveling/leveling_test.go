package leveling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackAddXP(t *testing.T) {
	tests := []struct {
		name       string
		adds       []int
		wantLevel  int
		wantXP     int
		wantToNext int
		wantGained int
	}{
		{"below threshold", []int{40, 50}, 1, 90, 100, 0},
		{"exact threshold", []int{100}, 2, 0, 120, 1},
		{"remainder carries over", []int{130}, 2, 30, 120, 1},
		{"multiple levels at once", []int{250}, 3, 30, 144, 2},
		{"ignores non-positive", []int{0, -20}, 1, 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := NewTrack(100)
			gained := 0
			for _, a := range tt.adds {
				gained += track.AddXP(a, 1.2)
			}
			assert.Equal(t, tt.wantLevel, track.Level)
			assert.Equal(t, tt.wantXP, track.XP)
			assert.Equal(t, tt.wantToNext, track.ToNext)
			assert.Equal(t, tt.wantGained, gained)
		})
	}
}

func TestTrackProgress(t *testing.T) {
	track := NewTrack(100)
	track.AddXP(25, 1.2)
	assert.InDelta(t, 0.25, track.Progress(), 1e-9)
	assert.Zero(t, Track{}.Progress())
}

func TestOfferDrawsDistinctEligibleUpgrades(t *testing.T) {
	catalog := DefaultCatalog()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		offer := Offer(catalog, Living, 3, rng)
		require.Len(t, offer, 3)

		seen := map[string]bool{}
		for _, u := range offer {
			assert.NotEqual(t, Spirit, u.Category)
			assert.False(t, seen[u.ID], "duplicate %s", u.ID)
			seen[u.ID] = true
		}
	}
}

func TestOfferSmallPool(t *testing.T) {
	catalog := []Upgrade{
		{ID: "a", Category: Spirit},
		{ID: "b", Category: Living},
	}
	rng := rand.New(rand.NewSource(1))

	assert.Len(t, Offer(catalog, Spirit, 3, rng), 1)
	assert.Empty(t, Offer(nil, Spirit, 3, rng))
}

func baseStats() Stats {
	return Stats{
		MoveSpeed:           3,
		MaxHealth:           100,
		Health:              80,
		MeleeCooldown:       48,
		MeleeDamage:         50,
		MeleeRange:          24,
		MeleeKnockback:      5,
		StunFrames:          6,
		RangedCooldown:      72,
		RangedDamage:        30,
		ProjectileSpeed:     5,
		Amount:              1,
		ExplosionPercentage: 0.5,
	}
}

func TestStatsApply(t *testing.T) {
	tests := []struct {
		effect Effect
		value  float64
		check  func(t *testing.T, s Stats)
	}{
		{EffectSpeed, 0.5, func(t *testing.T, s Stats) { assert.InDelta(t, 3.5, s.MoveSpeed, 1e-9) }},
		{EffectAttackSpeed, 6, func(t *testing.T, s Stats) {
			assert.Equal(t, 42, s.MeleeCooldown)
			assert.Equal(t, 66, s.RangedCooldown)
		}},
		{EffectDamage, 10, func(t *testing.T, s Stats) {
			assert.Equal(t, 60, s.MeleeDamage)
			assert.Equal(t, 40, s.RangedDamage)
		}},
		{EffectHealth, 20, func(t *testing.T, s Stats) {
			assert.Equal(t, 120, s.MaxHealth)
			assert.Equal(t, 100, s.Health)
		}},
		{EffectStun, 6, func(t *testing.T, s Stats) { assert.Equal(t, 12, s.StunFrames) }},
		{EffectRange, 6, func(t *testing.T, s Stats) { assert.InDelta(t, 30, s.MeleeRange, 1e-9) }},
		{EffectKnockback, 1.5, func(t *testing.T, s Stats) { assert.InDelta(t, 6.5, s.MeleeKnockback, 1e-9) }},
		{EffectMultiShot, 1, func(t *testing.T, s Stats) { assert.Equal(t, 2, s.Amount) }},
		{EffectQuickTalisman, 1, func(t *testing.T, s Stats) {
			assert.InDelta(t, 6, s.ProjectileSpeed, 1e-9)
			assert.Equal(t, 62, s.RangedCooldown)
		}},
		{EffectExplodingTalisman, 2, func(t *testing.T, s Stats) {
			assert.True(t, s.Explosive)
			assert.InDelta(t, 20, s.ExplosionRadius, 1e-9)
			assert.InDelta(t, 0.7, s.ExplosionPercentage, 1e-9)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.effect), func(t *testing.T) {
			s := baseStats()
			s.Apply(Upgrade{Effect: tt.effect, Value: tt.value}, 6)
			tt.check(t, s)
		})
	}
}

func TestCooldownFloor(t *testing.T) {
	s := baseStats()
	for i := 0; i < 20; i++ {
		s.Apply(Upgrade{Effect: EffectAttackSpeed, Value: 6}, 6)
	}
	assert.Equal(t, 6, s.MeleeCooldown)
	assert.Equal(t, 6, s.RangedCooldown)
}

func TestOwnedPickLevelsUp(t *testing.T) {
	owned := Owned{}
	s := baseStats()
	u := Upgrade{ID: "multi_shot", Effect: EffectMultiShot, Value: 1}

	assert.Equal(t, 1, owned.Pick(u, &s, 6))
	assert.Equal(t, 2, owned.Pick(u, &s, 6))
	assert.Equal(t, 3, s.Amount)
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
upgrades:
  - id: speed
    name: Increased Speed
    category: universal
    effect: speed
    value: 0.3
  - id: multi_shot
    name: Multi-Shot
    category: spirit
    effect: multi_shot
    value: 1
`)
	catalog, err := ParseCatalog(data)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, Spirit, catalog[1].Category)
	assert.InDelta(t, 0.3, catalog[0].Value, 1e-9)
}

func TestParseCatalogErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":         "upgrades: [",
		"missing id":       "upgrades:\n  - category: living\n    effect: stun\n",
		"duplicate id":     "upgrades:\n  - {id: a, category: living, effect: stun}\n  - {id: a, category: living, effect: stun}\n",
		"unknown category": "upgrades:\n  - {id: a, category: dead, effect: stun}\n",
		"unknown effect":   "upgrades:\n  - {id: a, category: living, effect: fly}\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(body))
			assert.Error(t, err)
		})
	}
}
