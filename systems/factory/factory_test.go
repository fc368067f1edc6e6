package factory

import (
	"testing"

	"github.com/automoto/exorcist/assets"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 640, 480, 16, 16)
	CreateGame(e, nil)
	return e
}

func TestCreateGameInitializesManager(t *testing.T) {
	e := newTestECS(t)

	mgr := Manager(e.World)
	require.NotNil(t, mgr)
	assert.Equal(t, cfg.Reality.Start, mgr.Current)

	progress := components.Progress.Get(components.Progress.MustFirst(e.World))
	assert.Equal(t, 1, progress.Tracks[cfg.RealitySpirit].Level)
	assert.Equal(t, cfg.Leveling.StartToNext, progress.Tracks[cfg.RealityLiving].ToNext)
	assert.NotEmpty(t, progress.Catalog)
}

func TestRealityWallLosesSolidTag(t *testing.T) {
	e := newTestECS(t)

	spiritWall := CreateWall(e, 0, 0, 16, 16, cfg.RealitySpirit)
	livingWall := CreateWall(e, 32, 0, 16, 16, cfg.RealityLiving)
	shared := CreateWall(e, 64, 0, 16, 16, cfg.RealityShared)

	spiritObj := components.Object.Get(spiritWall).Object
	assert.False(t, spiritObj.HasTags(tags.ResolvSolid), "inactive reality wall is intangible")
	assert.True(t, spiritObj.HasTags(tags.RealitySolid(cfg.RealitySpirit)))
	assert.Equal(t, cfg.Reality.InactiveOpacity, components.RealityMember.Get(spiritWall).Alpha())

	assert.True(t, components.Object.Get(livingWall).HasTags(tags.ResolvSolid))
	assert.True(t, components.Object.Get(shared).HasTags(tags.ResolvSolid))
	assert.False(t, shared.HasComponent(components.RealityMember))

	Manager(e.World).SwitchTo(cfg.RealitySpirit)
	assert.True(t, spiritObj.HasTags(tags.ResolvSolid))
	assert.False(t, components.Object.Get(livingWall).HasTags(tags.ResolvSolid))
}

func TestEnemyRegistersAsRealityEnemy(t *testing.T) {
	e := newTestECS(t)

	wisp := CreateEnemy(e, 100, 100, "Wisp")
	require.NotNil(t, wisp)
	member := components.RealityMember.Get(wisp)
	assert.Equal(t, cfg.RealitySpirit, member.Index)
	assert.Contains(t, Manager(e.World).Realities[cfg.RealitySpirit].Enemies, member.Object)
	assert.False(t, member.Tangible())
	assert.False(t, components.Object.Get(wisp).HasTags(tags.ResolvEnemy))

	assert.Nil(t, CreateEnemy(e, 0, 0, "Nobody"))

	Destroy(e.World, wisp)
	assert.Empty(t, Manager(e.World).Realities[cfg.RealitySpirit].Enemies)
	assert.False(t, wisp.Valid())
}

func TestTalismanPoolReuseAndGrowth(t *testing.T) {
	e := newTestECS(t)
	CreateTalismanPool(e, 1)
	pool := components.TalismanPool.Get(components.TalismanPool.MustFirst(e.World))

	first := AcquireTalisman(e, 10, 10)
	assert.Empty(t, pool.Free)
	assert.True(t, components.Talisman.Get(first).Active)
	assert.NotNil(t, components.Object.Get(first).Space)

	second := AcquireTalisman(e, 10, 10)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, pool.Total, "pool grows when empty")

	ReleaseTalisman(e.World, first)
	ReleaseTalisman(e.World, first)
	assert.Len(t, pool.Free, 1, "double release is ignored")
	assert.Nil(t, components.Object.Get(first).Space)

	again := AcquireTalisman(e, 0, 0)
	assert.Equal(t, first, again)
}

func TestOrbPool(t *testing.T) {
	e := newTestECS(t)
	CreateOrbPool(e, 2)

	o := SpawnOrb(e, 50, 50, 10, cfg.RealityLiving, 0, 0)
	orb := components.Orb.Get(o)
	assert.True(t, orb.Active)
	assert.Equal(t, cfg.RealityLiving, orb.Reality)
	assert.InDelta(t, 50, components.Object.Get(o).CenterX(), 1e-9)

	ReleaseOrb(e.World, o)
	assert.False(t, orb.Active)
	pool := components.OrbPool.Get(components.OrbPool.MustFirst(e.World))
	assert.Len(t, pool.Free, 2)
	assert.Equal(t, 2, pool.Total)
}

func TestOrbPoolGrowsWhenEmpty(t *testing.T) {
	e := newTestECS(t)
	CreateOrbPool(e, 1)

	first := SpawnOrb(e, 0, 0, 5, cfg.RealitySpirit, 0, 0)
	second := SpawnOrb(e, 10, 0, 5, cfg.RealitySpirit, 0, 0)
	assert.NotEqual(t, first.Entity(), second.Entity())

	pool := components.OrbPool.Get(components.OrbPool.MustFirst(e.World))
	assert.Equal(t, 2, pool.Total)
	assert.Empty(t, pool.Free)

	ReleaseOrb(e.World, first)
	ReleaseOrb(e.World, second)
	assert.Len(t, pool.Free, 2)
}

func TestMovingPlatformLeg(t *testing.T) {
	e := newTestECS(t)
	p := CreateMovingPlatform(e, assets.MovingPlatform{
		Rect:    assets.Rect{X: 0, Y: 100, Width: 32, Height: 8},
		Reality: cfg.RealityShared,
		DX:      60,
	})

	data := components.MovingPlatform.Get(p)
	assert.Equal(t, 60.0, data.End.X)
	require.NotNil(t, data.Leg)

	var progress float32
	var done bool
	for i := 0; i < 1000 && !done; i++ {
		progress, done = data.Leg.Update(1)
	}
	assert.True(t, done)
	assert.InDelta(t, 1, progress, 1e-6)
}

func TestMeleeHitboxFacesPlayerDirection(t *testing.T) {
	e := newTestECS(t)
	player := CreatePlayer(e, 100, 100)

	right := components.Object.Get(CreateMeleeHitbox(e, player))
	assert.Equal(t, 112.0, right.X)
	assert.Equal(t, cfg.Melee.Range, right.W)

	components.Player.Get(player).Direction.X = cfg.DirectionLeft
	left := components.Object.Get(CreateMeleeHitbox(e, player))
	assert.Equal(t, 100-cfg.Melee.Range, left.X)
}

func TestProjectileInheritsOwnerReality(t *testing.T) {
	e := newTestECS(t)
	booky := CreateEnemy(e, 100, 100, "Booky")
	p := CreateProjectile(e, booky, 200, components.Object.Get(booky).CenterY())

	data := components.Projectile.Get(p)
	assert.InDelta(t, cfg.Projectile.Speed, data.SpeedX, 1e-9)
	assert.InDelta(t, 0, data.SpeedY, 1e-9)
	assert.Equal(t, cfg.RealityLiving, components.RealityMember.Get(p).Index)
}
