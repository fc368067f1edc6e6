package systems

import (
	"math"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// surfaceTags lists the resolv tags an object stops against.
type surfaceTags struct {
	solids []string
	floors []string // solids plus one-way platforms
}

var playerSurfaces = surfaceTags{
	solids: []string{tags.ResolvSolid},
	floors: []string{tags.ResolvSolid, tags.ResolvPlatform},
}

// enemySurfaces returns the tags an enemy of the given reality collides
// with. Its own reality's geometry stays solid to it while intangible to
// the player.
func enemySurfaces(realityIndex int) surfaceTags {
	if realityIndex < 0 {
		return playerSurfaces
	}
	solid := tags.RealitySolid(realityIndex)
	return surfaceTags{
		solids: []string{tags.ResolvSolid, solid},
		floors: []string{tags.ResolvSolid, solid, tags.ResolvPlatform, tags.RealityPlatform(realityIndex)},
	}
}

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveObjectHorizontalCollision(physics, obj.Object, playerSurfaces, true)
		resolveObjectVerticalCollision(physics, obj.Object, playerSurfaces)
		updateWallSliding(player, physics, obj.Object)

		if checkDeadZone(obj.Object) {
			handleDeadZoneHit(ecs, e)
		}
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || frozen(e) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		surfaces := enemySurfaces(components.RealityMember.Get(e).Index)
		resolveObjectHorizontalCollision(physics, obj.Object, surfaces, false)
		if physics.Flying {
			resolveFlyingVerticalCollision(physics, obj.Object, surfaces)
		} else {
			resolveObjectVerticalCollision(physics, obj.Object, surfaces)
		}

		// Enemies that fall out of the level die without dropping anything
		if checkDeadZone(obj.Object) {
			killEnemy(ecs, e, false)
		}
	})
}

// resolveObjectHorizontalCollision moves the object by SpeedX and stops it
// against solid walls.
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, surfaces surfaceTags, allowWallSlide bool) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, surfaces.solids...)
	if check == nil {
		object.X += dx
		return
	}

	if wall := blockingSolid(object, check, surfaces.solids); wall != nil {
		dx = check.ContactWithObject(wall).X()
		physics.SpeedX = 0
		if allowWallSlide {
			setWallSlidingIfAirborne(physics, wall)
		}
	}

	object.X += dx
}

// resolveObjectVerticalCollision handles vertical movement and ground/platform collision for any object
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object, surfaces surfaceTags) {
	physics.OnGround = nil
	dy := clampVerticalSpeed(physics.SpeedY)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, surfaces.floors...)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		dy = handleUpwardCollision(physics, check, surfaces)
	} else {
		dy = handleDownwardCollision(physics, object, check, surfaces, dy)
	}

	object.Y += dy
}

// resolveFlyingVerticalCollision stops flyers against solids in both
// directions. Platforms never block them.
func resolveFlyingVerticalCollision(physics *components.PhysicsData, object *resolv.Object, surfaces surfaceTags) {
	dy := clampVerticalSpeed(physics.SpeedY)
	if dy == 0 {
		return
	}
	if check := object.Check(0, dy, surfaces.solids...); check != nil {
		if solids := check.ObjectsByTags(surfaces.solids...); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
			physics.SpeedY = 0
		}
	}
	object.Y += dy
}

// updateWallSliding checks if player should disengage from wall sliding
func updateWallSliding(player *components.PlayerData, physics *components.PhysicsData, playerObject *resolv.Object) {
	if physics.WallSliding == nil {
		return
	}

	if physics.OnGround != nil || !physics.WallSliding.HasTags(tags.ResolvSolid) {
		physics.WallSliding = nil
		return
	}

	if check := playerObject.Check(player.Direction.X, 0, tags.ResolvSolid); check == nil {
		physics.WallSliding = nil
	}
}

// blockingSolid returns the first solid the object overlaps vertically.
// A solid the object is already inside (a wall that became tangible
// around it) does not block, so the object can walk out.
func blockingSolid(object *resolv.Object, check *resolv.Collision, solidTags []string) *resolv.Object {
	objectBottom := object.Y + object.H
	for _, solid := range check.ObjectsByTags(solidTags...) {
		if objectBottom <= solid.Y || object.Y >= solid.Y+solid.H {
			continue
		}
		if object.X < solid.X+solid.W && object.X+object.W > solid.X {
			continue
		}
		return solid
	}
	return nil
}

func setWallSlidingIfAirborne(physics *components.PhysicsData, wall *resolv.Object) {
	if physics.OnGround != nil || physics.SpeedY <= 0 {
		return
	}
	physics.WallSliding = wall
}

func clampVerticalSpeed(speedY float64) float64 {
	limit := cfg.Physics.VerticalSpeedClamp
	return math.Max(math.Min(speedY, limit), -limit)
}

func handleUpwardCollision(physics *components.PhysicsData, check *resolv.Collision, surfaces surfaceTags) float64 {
	if solids := check.ObjectsByTags(surfaces.solids...); len(solids) > 0 {
		physics.SpeedY = 0
		return check.ContactWithObject(solids[0]).Y()
	}
	// One-way platforms let the object pass from below
	return physics.SpeedY
}

func handleDownwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, surfaces surfaceTags, dy float64) float64 {
	if newDy, handled := tryPlatformCollision(physics, object, check, surfaces); handled {
		return newDy
	}
	if newDy, handled := trySolidCollision(physics, check, surfaces); handled {
		return newDy
	}
	return dy
}

// tryPlatformCollision lands on a one-way platform only from above.
func tryPlatformCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, surfaces surfaceTags) (float64, bool) {
	for _, platform := range check.ObjectsByTags(surfaces.floors[len(surfaces.solids):]...) {
		if platform == physics.IgnorePlatform ||
			physics.SpeedY < 0 ||
			object.Bottom() >= platform.Y+cfg.Physics.PlatformDropThreshold {
			continue
		}

		physics.OnGround = platform
		physics.SpeedY = 0
		clearGroundedState(physics)
		return check.ContactWithObject(platform).Y(), true
	}
	return 0, false
}

func trySolidCollision(physics *components.PhysicsData, check *resolv.Collision, surfaces surfaceTags) (float64, bool) {
	solids := check.ObjectsByTags(surfaces.solids...)
	if len(solids) == 0 || physics.SpeedY < 0 {
		return 0, false
	}

	solid := solids[0]
	physics.OnGround = solid
	physics.SpeedY = 0
	clearGroundedState(physics)
	return check.ContactWithObject(solid).Y(), true
}

func clearGroundedState(physics *components.PhysicsData) {
	if physics.OnGround != nil {
		physics.WallSliding = nil
	}
}

// checkDeadZone returns true if the object is colliding with a dead zone
func checkDeadZone(obj *resolv.Object) bool {
	return obj.Check(0, 0, tags.ResolvDeadZone) != nil
}

// handleDeadZoneHit kills the player: falling out of the level ends the run.
func handleDeadZoneHit(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}

	obj := components.Object.Get(e)
	TriggerScreenShake(ecs, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
	factory.SpawnBurst(ecs, obj.CenterX(), obj.CenterY(), 24, cfg.Red, 20)
	PlaySFX(ecs, cfg.SoundDeath)

	components.Health.Get(e).Current = 0
	startDeath(e, cfg.Player.DeathFrames, true)
}
