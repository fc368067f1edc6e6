package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/gamemath"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// enemyContext is what every behaviour needs for one enemy this frame.
type enemyContext struct {
	ecs     *ecs.ECS
	entry   *donburi.Entry
	enemy   *components.EnemyData
	physics *components.PhysicsData
	state   *components.StateData
	object  *resolv.Object
	member  *components.RealityMemberData
	player  *resolv.Object // nil when there is no living player
}

func (c *enemyContext) typeConfig() *cfg.EnemyTypeConfig {
	return c.enemy.TypeConfig
}

// playerDelta is the vector from the enemy center to the player center.
func (c *enemyContext) playerDelta() (dx, dy float64) {
	dx = (c.player.X + c.player.W/2) - (c.object.X + c.object.W/2)
	dy = (c.player.Y + c.player.H/2) - (c.object.Y + c.object.H/2)
	return dx, dy
}

func (c *enemyContext) facePlayer() {
	dx, _ := c.playerDelta()
	if dx > 0 {
		c.enemy.Direction.X = cfg.DirectionRight
	} else {
		c.enemy.Direction.X = cfg.DirectionLeft
	}
}

func UpdateEnemies(ecs *ecs.ECS) {
	var playerObject *resolv.Object
	var playerEntry *donburi.Entry
	if entry, ok := tags.Player.First(ecs.World); ok && !entry.HasComponent(components.Death) {
		playerEntry = entry
		playerObject = components.Object.Get(entry).Object
	}

	var hits []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}

		ctx := &enemyContext{
			ecs:     ecs,
			entry:   e,
			enemy:   components.Enemy.Get(e),
			physics: components.Physics.Get(e),
			state:   components.State.Get(e),
			object:  components.Object.Get(e).Object,
			member:  components.RealityMember.Get(e),
			player:  playerObject,
		}
		tickEnemyTimers(ctx.enemy)

		if frozen(e) {
			return
		}
		updateEnemyAI(ctx)

		if playerObject != nil && canContactDamage(ctx) {
			ctx.enemy.AttackCooldown = ctx.typeConfig().AttackCooldown
			hits = append(hits, e)
		}
	})

	for _, e := range hits {
		applyContactDamage(playerEntry, e)
	}
}

func tickEnemyTimers(enemy *components.EnemyData) {
	if enemy.InvulnFrames > 0 {
		enemy.InvulnFrames--
	}
	if enemy.SpawnImmunity > 0 {
		enemy.SpawnImmunity--
	}
	if enemy.AttackCooldown > 0 {
		enemy.AttackCooldown--
	}
	if enemy.ThrowCooldown > 0 {
		enemy.ThrowCooldown--
	}
	if enemy.HopCooldown > 0 {
		enemy.HopCooldown--
	}
}

func updateEnemyAI(ctx *enemyContext) {
	ctx.state.StateTimer++

	// Stun freezes the AI until it wears off
	if ctx.state.CurrentState == cfg.Stunned {
		ctx.enemy.StunTimer--
		if ctx.enemy.StunTimer > 0 {
			return
		}
		ctx.enemy.StunTimer = 0
		ctx.state.Set(recoveredState(ctx.typeConfig()))
	}

	switch ctx.enemy.TypeName {
	case "Wisp":
		updateWisp(ctx)
	case "Booky":
		updateBooky(ctx)
	case "Sharpy":
		updateSharpy(ctx)
	case "Sulker":
		updateSulker(ctx)
	default:
		updatePatrol(ctx)
	}
}

// recoveredState is the state an enemy resumes after a stun.
func recoveredState(t *cfg.EnemyTypeConfig) cfg.StateID {
	switch {
	case t.Flying:
		return cfg.StateChase
	case t.WanderRadius > 0:
		return cfg.StateWander
	default:
		return cfg.StatePatrol
	}
}

// updateWisp flies straight at the player once in range, faster while its
// own reality is the active one.
func updateWisp(ctx *enemyContext) {
	t := ctx.typeConfig()
	if ctx.player == nil {
		hover(ctx.physics)
		return
	}
	dx, dy := ctx.playerDelta()
	dist := math.Hypot(dx, dy)
	if dist > t.ChaseRange || dist == 0 {
		ctx.state.Set(cfg.StatePatrol)
		hover(ctx.physics)
		return
	}

	ctx.state.Set(cfg.StateChase)
	ctx.facePlayer()

	speed := t.Speed
	if ctx.member.Object != nil && ctx.member.Object.Active() && t.ActiveSpeedMult > 0 {
		speed *= t.ActiveSpeedMult
	}
	ctx.physics.SpeedX, ctx.physics.SpeedY = gamemath.Homing(0, 0, dx, dy, speed)
}

func hover(physics *components.PhysicsData) {
	physics.SpeedY *= 0.9
}

// updateBooky patrols, hops onto platforms at ledges and throws books.
func updateBooky(ctx *enemyContext) {
	updatePatrol(ctx)

	t := ctx.typeConfig()
	if ctx.player == nil || ctx.enemy.ThrowCooldown > 0 || !ctx.member.Tangible() {
		return
	}
	dx, dy := ctx.playerDelta()
	if math.Hypot(dx, dy) > t.ThrowRange {
		return
	}
	factory.CreateProjectile(ctx.ecs, ctx.entry, ctx.player.X+ctx.player.W/2, ctx.player.Y+ctx.player.H/2)
	ctx.enemy.ThrowCooldown = t.ThrowCooldown
}

// updatePatrol walks back and forth, turning at walls and at ledges
// unless a platform ahead can be jumped to.
func updatePatrol(ctx *enemyContext) {
	t := ctx.typeConfig()
	physics := ctx.physics
	dir := ctx.enemy.Direction.X
	if dir == 0 {
		dir = cfg.DirectionLeft
	}
	surfaces := enemySurfaces(ctx.member.Index)

	if physics.OnGround == nil {
		return
	}

	if blockedAhead(ctx.object, dir, surfaces) {
		dir = -dir
	} else if isAtPlatformEdge(ctx.object, dir, surfaces) {
		if t.CanJumpToPlatforms && platformAhead(ctx.object, dir, t.PlatformCheckHeight, surfaces) {
			physics.SpeedY = -t.PlatformJumpSpeed
			physics.OnGround = nil
		} else {
			dir = -dir
		}
	}

	ctx.enemy.Direction.X = dir
	physics.SpeedX = t.Speed * dir
}

func blockedAhead(obj *resolv.Object, direction float64, surfaces surfaceTags) bool {
	check := obj.Check(2*direction, 0, surfaces.solids...)
	return check != nil && blockingSolid(obj, check, surfaces.solids) != nil
}

func isAtPlatformEdge(obj *resolv.Object, direction float64, surfaces surfaceTags) bool {
	return obj.Check(8.0*direction, obj.H+4.0, surfaces.floors...) == nil
}

// platformAhead reports whether a floor exists above and ahead within
// height pixels.
func platformAhead(obj *resolv.Object, direction, height float64, surfaces surfaceTags) bool {
	if height <= 0 {
		return false
	}
	for dy := -16.0; dy >= -height; dy -= 16 {
		if obj.Check(obj.W*direction*2, dy, surfaces.floors...) != nil {
			return true
		}
	}
	return false
}

// updateSharpy waits for the player, winds up and hops at them.
func updateSharpy(ctx *enemyContext) {
	t := ctx.typeConfig()
	physics := ctx.physics
	state := ctx.state

	switch state.CurrentState {
	case cfg.StateHopWindup:
		physics.SpeedX = 0
		if state.StateTimer < t.HopWindup {
			return
		}
		physics.SpeedX = ctx.enemy.Direction.X * t.HopSpeedX
		physics.SpeedY = -t.HopSpeedY
		physics.OnGround = nil
		state.Set(cfg.StateHop)

	case cfg.StateHop:
		if physics.OnGround == nil {
			physics.SpeedX = ctx.enemy.Direction.X * t.HopSpeedX
			return
		}
		if state.StateTimer > 1 {
			ctx.enemy.HopCooldown = t.HopCooldown
			state.Set(cfg.StatePatrol)
		}

	default:
		if ctx.player == nil || physics.OnGround == nil || ctx.enemy.HopCooldown > 0 {
			return
		}
		dx, dy := ctx.playerDelta()
		if math.Hypot(dx, dy) > t.ChaseRange {
			return
		}
		ctx.facePlayer()
		state.Set(cfg.StateHopWindup)
	}
}

// updateSulker flees a close player, otherwise wanders between random
// points, and leaves damage areas along its path.
func updateSulker(ctx *enemyContext) {
	t := ctx.typeConfig()
	enemy := ctx.enemy
	physics := ctx.physics

	fleeing := false
	if ctx.player != nil {
		dx, dy := ctx.playerDelta()
		fleeing = math.Hypot(dx, dy) <= t.FleeRange
	}

	if fleeing {
		ctx.state.Set(cfg.StateFlee)
		ctx.facePlayer()
		enemy.Direction.X = -enemy.Direction.X
		physics.SpeedX = enemy.Direction.X * t.Speed
	} else {
		ctx.state.Set(cfg.StateWander)
		wander(ctx)
	}

	leaveTrail(ctx)
}

func wander(ctx *enemyContext) {
	t := ctx.typeConfig()
	enemy := ctx.enemy
	centerX := ctx.object.X + ctx.object.W/2

	enemy.WanderTimer--
	if enemy.WanderTimer <= 0 || math.Abs(enemy.WanderTarget.X-centerX) < t.Speed {
		enemy.WanderTarget = components.Vector{
			X: centerX + (rand.Float64()*2-1)*t.WanderRadius,
			Y: ctx.object.Y,
		}
		enemy.WanderTimer = t.WanderInterval
	}

	if blockedAhead(ctx.object, enemy.Direction.X, enemySurfaces(ctx.member.Index)) {
		enemy.WanderTarget.X = centerX - enemy.Direction.X*t.WanderRadius/2
	}

	if enemy.WanderTarget.X > centerX {
		enemy.Direction.X = cfg.DirectionRight
	} else {
		enemy.Direction.X = cfg.DirectionLeft
	}
	ctx.physics.SpeedX = enemy.Direction.X * t.Speed
}

func leaveTrail(ctx *enemyContext) {
	t := ctx.typeConfig()
	enemy := ctx.enemy
	obj := ctx.object

	enemy.TrailDistance += math.Hypot(obj.X-enemy.LastX, obj.Y-enemy.LastY)
	enemy.LastX, enemy.LastY = obj.X, obj.Y

	if t.TrailSpacing <= 0 || enemy.TrailDistance < t.TrailSpacing {
		return
	}
	enemy.TrailDistance = 0
	factory.CreateDamageArea(ctx.ecs, obj.X+obj.W/2, obj.Y+obj.H-cfg.DamageArea.Size/2, ctx.member.Index)
}

// canContactDamage reports whether the enemy touches the player this
// frame. Intangible enemies are harmless.
func canContactDamage(ctx *enemyContext) bool {
	if ctx.enemy.AttackCooldown > 0 || !ctx.member.Tangible() {
		return false
	}
	dx, dy := ctx.playerDelta()
	return math.Hypot(dx, dy) <= ctx.typeConfig().AttackRange+ctx.object.W/2
}

func applyContactDamage(playerEntry, enemyEntry *donburi.Entry) {
	t := components.Enemy.Get(enemyEntry).TypeConfig
	enemyObject := components.Object.Get(enemyEntry)
	playerObject := components.Object.Get(playerEntry)

	QueueDamage(playerEntry, components.DamageEventData{
		Amount:     t.Damage,
		KnockbackX: knockbackDirection(enemyObject.CenterX(), playerObject.CenterX()) * t.KnockbackForce,
		KnockbackY: cfg.Combat.KnockbackUpwardForce,
	})
}
