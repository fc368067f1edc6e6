package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/leveling"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantXP(t *testing.T) {
	e := newTestECS(t)
	p := progress(e)

	GrantXP(e, cfg.RealityLiving, 250)

	assert.Equal(t, 3, p.Tracks[cfg.RealityLiving].Level)
	assert.Equal(t, 1, p.Tracks[cfg.RealitySpirit].Level, "tracks are independent")
	assert.Equal(t, []int{cfg.RealityLiving, cfg.RealityLiving}, p.Pending)
	assert.Equal(t, 250, runStats(e).XP[cfg.RealityLiving])
	assert.Contains(t, pendingSFX(e), cfg.SoundLevelUp)
}

func TestGrantXPIgnoresBadIndex(t *testing.T) {
	e := newTestECS(t)

	GrantXP(e, 2, 500)
	GrantXP(e, -1, 500)

	p := progress(e)
	assert.Empty(t, p.Pending)
	assert.Equal(t, [2]int{}, runStats(e).XP)
}

func TestOpenNextOffer(t *testing.T) {
	e := newTestECS(t)
	p := progress(e)
	rng := rand.New(rand.NewSource(3))

	assert.False(t, OpenNextOffer(p, rng), "nothing pending")

	p.Pending = []int{cfg.RealitySpirit, cfg.RealityLiving}
	require.True(t, OpenNextOffer(p, rng))

	assert.Len(t, p.Offer, cfg.Leveling.ChoiceCount)
	assert.Equal(t, cfg.RealitySpirit, p.OfferTrack)
	assert.Equal(t, []int{cfg.RealityLiving}, p.Pending)
	for _, u := range p.Offer {
		assert.NotEqual(t, leveling.Living, u.Category)
	}

	assert.False(t, OpenNextOffer(p, rng), "one choice at a time")
	assert.Equal(t, []int{cfg.RealityLiving}, p.Pending)
}

func TestOpenNextOfferSkipsEmptyPools(t *testing.T) {
	p := &components.ProgressData{
		Catalog: []leveling.Upgrade{{ID: "stun", Category: leveling.Living, Effect: leveling.EffectStun}},
		Pending: []int{cfg.RealitySpirit, cfg.RealityLiving},
	}

	require.True(t, OpenNextOffer(p, rand.New(rand.NewSource(1))))
	assert.Equal(t, cfg.RealityLiving, p.OfferTrack)
	assert.Len(t, p.Offer, 1)
	assert.Empty(t, p.Pending)
}

func TestPickUpgrade(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 100, 100)
	p := progress(e)

	health := components.Health.Get(player)
	health.Current = 50
	data := components.Player.Get(player)
	data.MeleeCooldown = 10_000

	p.Offer = []leveling.Upgrade{
		{ID: "health", Category: leveling.Universal, Effect: leveling.EffectHealth, Value: 20},
		{ID: "attack_speed", Category: leveling.Universal, Effect: leveling.EffectAttackSpeed, Value: 6},
	}
	p.Selected = 1

	assert.False(t, PickUpgrade(e, 2), "out of range")
	require.True(t, PickUpgrade(e, 1))

	assert.False(t, p.Choosing())
	assert.Zero(t, p.Selected)
	assert.Equal(t, 1, p.Owned["attack_speed"])
	assert.Equal(t, data.Stats.MeleeCooldown, data.MeleeCooldown, "running cooldown is capped")
	assert.Equal(t, 50, health.Current)

	p.Offer = []leveling.Upgrade{{ID: "health", Category: leveling.Universal, Effect: leveling.EffectHealth, Value: 20}}
	require.True(t, PickUpgrade(e, 0))

	assert.Equal(t, cfg.Player.Health+20, health.Max)
	assert.Equal(t, 70, health.Current, "health stays authoritative")
	assert.Equal(t, health.Max, data.Stats.MaxHealth)
}

func TestPickUpgradeWithoutPlayer(t *testing.T) {
	e := newTestECS(t)
	p := progress(e)
	p.Offer = leveling.DefaultCatalog()[:1]

	assert.False(t, PickUpgrade(e, 0))
	assert.False(t, p.Choosing(), "offer closes either way")
}
