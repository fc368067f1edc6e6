package systems

import (
	"testing"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/leveling"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestQueueDamageAccumulates(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, 0)

	QueueDamage(player, components.DamageEventData{Amount: 10, KnockbackX: 2, KnockbackY: -1, StunFrames: 5})
	QueueDamage(player, components.DamageEventData{Amount: 5, StunFrames: 12})
	QueueDamage(player, components.DamageEventData{Amount: 3, KnockbackX: -4, KnockbackY: -2})

	require.True(t, player.HasComponent(components.DamageEvent))
	assert.Equal(t, components.DamageEventData{
		Amount:     18,
		KnockbackX: -4,
		KnockbackY: -2,
		StunFrames: 12,
	}, *components.DamageEvent.Get(player))
}

func TestUpdateCombatDamagesPlayer(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, 0)

	QueueDamage(player, components.DamageEventData{Amount: 30, KnockbackX: 3, KnockbackY: -2})
	UpdateCombat(e)

	health := components.Health.Get(player)
	data := components.Player.Get(player)
	physics := components.Physics.Get(player)

	assert.Equal(t, cfg.Player.Health-30, health.Current)
	assert.Equal(t, cfg.Combat.PlayerInvulnFrames, data.InvulnFrames)
	assert.Equal(t, 3.0, physics.SpeedX)
	assert.Equal(t, 30, runStats(e).DamageTaken)
	assert.False(t, player.HasComponent(components.DamageEvent), "event is consumed")
	assert.Contains(t, pendingSFX(e), cfg.SoundPlayerHurt)

	QueueDamage(player, components.DamageEventData{Amount: 30})
	UpdateCombat(e)
	assert.Equal(t, cfg.Player.Health-30, health.Current, "invulnerable after a hit")
}

func TestUpdateCombatKillsPlayer(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, 0)

	QueueDamage(player, components.DamageEventData{Amount: cfg.Player.Health * 2})
	UpdateCombat(e)

	assert.Zero(t, components.Health.Get(player).Current, "health is clamped")
	require.True(t, player.HasComponent(components.Death))
	assert.Equal(t, cfg.Player.DeathFrames, components.Death.Get(player).Timer)
	assert.Equal(t, cfg.Die, components.State.Get(player).CurrentState)
}

func TestTalismanStunIgnoresMeleeUpgrade(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 100, 100)
	stats := &components.Player.Get(player).Stats
	stats.Apply(leveling.Upgrade{Effect: leveling.EffectStun, Value: 30}, cfg.Combat.MinCooldown)
	stats.Apply(leveling.Upgrade{Effect: leveling.EffectMultiShot, Value: 2}, cfg.Combat.MinCooldown)
	require.Equal(t, cfg.Melee.StunFrames+30, stats.StunFrames)

	throwTalismans(e, player, 0)

	thrown := 0
	tags.Talisman.Each(e.World, func(entry *donburi.Entry) {
		talisman := components.Talisman.Get(entry)
		if !talisman.Active {
			return
		}
		thrown++
		assert.Equal(t, cfg.Ranged.StunFrames, talisman.StunFrames)
	})
	assert.Equal(t, stats.Amount, thrown)
}
