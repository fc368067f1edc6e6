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

// CreateTalismanPool pre-allocates size inactive talismans.
func CreateTalismanPool(ecs *ecs.ECS, size int) *donburi.Entry {
	entry := ecs.World.Entry(ecs.World.Create(components.TalismanPool))
	pool := components.TalismanPool.Get(entry)
	for i := 0; i < size; i++ {
		pool.Free = append(pool.Free, newTalisman(ecs))
	}
	pool.Total = size
	return entry
}

// newTalisman creates an inactive talisman. It is not in the collision
// space until acquired.
func newTalisman(ecs *ecs.ECS) *donburi.Entry {
	t := archetypes.Talisman.Spawn(ecs)
	size := cfg.Ranged.Size
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvTalisman)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = t
	components.Object.SetValue(t, components.ObjectData{Object: obj})
	components.Talisman.SetValue(t, components.TalismanData{})
	return t
}

// AcquireTalisman takes a talisman from the pool, growing it when empty,
// and places it centered on (x, y).
func AcquireTalisman(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	poolEntry, ok := components.TalismanPool.First(ecs.World)
	if !ok {
		poolEntry = CreateTalismanPool(ecs, 0)
	}
	pool := components.TalismanPool.Get(poolEntry)

	var t *donburi.Entry
	if n := len(pool.Free); n > 0 {
		t = pool.Free[n-1]
		pool.Free = pool.Free[:n-1]
	} else {
		pool.Total++
		log.Printf("Warning: talisman pool empty, growing to %d", pool.Total)
		t = newTalisman(ecs)
	}

	obj := components.Object.Get(t).Object
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	addToSpace(ecs, obj)
	obj.Update()

	data := components.Talisman.Get(t)
	*data = components.TalismanData{
		Active:     true,
		HitEnemies: make(map[*donburi.Entry]struct{}),
	}
	return t
}

// ReleaseTalisman deactivates a talisman and returns it to the pool.
func ReleaseTalisman(world donburi.World, t *donburi.Entry) {
	if !t.Valid() {
		return
	}
	data := components.Talisman.Get(t)
	if !data.Active {
		return
	}
	data.Active = false
	data.HitEnemies = nil
	RemoveFromSpace(world, t)

	if poolEntry, ok := components.TalismanPool.First(world); ok {
		pool := components.TalismanPool.Get(poolEntry)
		pool.Free = append(pool.Free, t)
	}
}
