package factory

import (
	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/gamemath"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile from owner aimed at the target
// position. It belongs to the owner's reality.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, targetX, targetY float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	ownerObj := components.Object.Get(owner)
	startX, startY := ownerObj.CenterX(), ownerObj.CenterY()

	size := cfg.Projectile.Size
	obj := resolv.NewObject(startX-size/2, startY-size/2, size, size, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	speedX, speedY := gamemath.Homing(startX, startY, targetX, targetY, cfg.Projectile.Speed)
	if speedX == 0 && speedY == 0 {
		speedX = cfg.Projectile.Speed
	}

	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:          owner,
		Damage:         cfg.Projectile.Damage,
		KnockbackForce: cfg.Projectile.KnockbackForce,
		SpeedX:         speedX,
		SpeedY:         speedY,
		Lifetime:       cfg.Projectile.Lifetime,
	})

	realityIndex := cfg.RealityShared
	if owner.HasComponent(components.RealityMember) {
		realityIndex = components.RealityMember.Get(owner).Index
	}

	addToSpace(ecs, obj)
	attachReality(ecs, p, obj, realityIndex, memberActive)

	return p
}
