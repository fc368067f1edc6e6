package factory

import (
	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMeleeHitbox spawns the strike box in front of the player using
// the player's current stats.
func CreateMeleeHitbox(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	ownerObj := components.Object.Get(owner)
	player := components.Player.Get(owner)
	stats := player.Stats

	w, h := stats.MeleeRange, cfg.Melee.HitboxHeight
	x := ownerObj.X + ownerObj.W
	if player.Direction.X < 0 {
		x = ownerObj.X - w
	}
	y := ownerObj.CenterY() - h/2

	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity:    owner,
		Damage:         stats.MeleeDamage,
		KnockbackForce: stats.MeleeKnockback,
		StunFrames:     stats.StunFrames,
		LifeTime:       cfg.Melee.Duration,
		HitEntities:    make(map[*donburi.Entry]bool),
	})

	addToSpace(ecs, obj)
	return hitbox
}
