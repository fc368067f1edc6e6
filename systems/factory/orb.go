package factory

import (
	"log"

	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOrbPool pre-allocates size inactive experience orbs.
func CreateOrbPool(ecs *ecs.ECS, size int) *donburi.Entry {
	entry := ecs.World.Entry(ecs.World.Create(components.OrbPool))
	pool := components.OrbPool.Get(entry)
	pool.MergeTimer = cfg.Orb.MergeInterval
	pool.Total = size
	for i := 0; i < size; i++ {
		pool.Free = append(pool.Free, newOrb(ecs))
	}
	return entry
}

func newOrb(ecs *ecs.ECS) *donburi.Entry {
	o := archetypes.Orb.Spawn(ecs)
	size := cfg.Orb.Size
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvOrb)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = o
	components.Object.SetValue(o, components.ObjectData{Object: obj})
	components.Orb.SetValue(o, components.OrbData{})
	return o
}

// SpawnOrb drops an orb worth value for reality index centered on (x, y).
func SpawnOrb(ecs *ecs.ECS, x, y float64, value, realityIndex int, speedX, speedY float64) *donburi.Entry {
	poolEntry, ok := components.OrbPool.First(ecs.World)
	if !ok {
		poolEntry = CreateOrbPool(ecs, 0)
	}
	pool := components.OrbPool.Get(poolEntry)

	var o *donburi.Entry
	if n := len(pool.Free); n > 0 {
		o = pool.Free[n-1]
		pool.Free = pool.Free[:n-1]
	} else {
		pool.Total++
		log.Printf("Warning: orb pool empty, growing to %d", pool.Total)
		o = newOrb(ecs)
	}

	obj := components.Object.Get(o).Object
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	addToSpace(ecs, obj)
	obj.Update()

	components.Orb.SetValue(o, components.OrbData{
		Active:  true,
		Value:   value,
		Reality: realityIndex,
		SpeedX:  speedX,
		SpeedY:  speedY,
	})
	return o
}

// ReleaseOrb returns an orb to the pool.
func ReleaseOrb(world donburi.World, o *donburi.Entry) {
	if !o.Valid() {
		return
	}
	orb := components.Orb.Get(o)
	if !orb.Active {
		return
	}
	*orb = components.OrbData{}
	RemoveFromSpace(world, o)

	if poolEntry, ok := components.OrbPool.First(world); ok {
		pool := components.OrbPool.Get(poolEntry)
		pool.Free = append(pool.Free, o)
	}
}
