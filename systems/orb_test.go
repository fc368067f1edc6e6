package systems

import (
	"testing"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestMergeOrbGroups(t *testing.T) {
	e := newTestECS(t)
	factory.CreateOrbPool(e, 4)

	a := factory.SpawnOrb(e, 100, 100, 10, cfg.RealityLiving, 0, 0)
	near := factory.SpawnOrb(e, 110, 100, 5, cfg.RealityLiving, 0, 0)
	otherReality := factory.SpawnOrb(e, 105, 100, 7, cfg.RealitySpirit, 0, 0)
	far := factory.SpawnOrb(e, 400, 100, 3, cfg.RealityLiving, 0, 0)

	merged := mergeOrbGroups([]*donburi.Entry{a, near, otherReality, far}, 24)

	assert.Equal(t, []*donburi.Entry{near}, merged)
	assert.Equal(t, 15, components.Orb.Get(a).Value)
	assert.Equal(t, 7, components.Orb.Get(otherReality).Value)
	assert.Equal(t, 3, components.Orb.Get(far).Value)
}

func TestOrbPoolReuse(t *testing.T) {
	e := newTestECS(t)
	pool := components.OrbPool.Get(factory.CreateOrbPool(e, 1))

	o := factory.SpawnOrb(e, 50, 50, 10, cfg.RealitySpirit, 0, 0)
	assert.Empty(t, pool.Free)
	assert.True(t, components.Orb.Get(o).Active)

	factory.ReleaseOrb(e.World, o)
	assert.Len(t, pool.Free, 1)
	assert.False(t, components.Orb.Get(o).Active)

	again := factory.SpawnOrb(e, 60, 60, 4, cfg.RealityLiving, 0, 0)
	assert.Equal(t, o, again, "released orbs are reused")
	assert.Equal(t, 4, components.Orb.Get(again).Value)
}
