package systems

import (
	cfg "github.com/automoto/exorcist/config"

	"github.com/automoto/exorcist/components"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerInput bundles the actions the controller reads each frame.
type playerInput struct {
	left, right, up, down components.ActionState
	jump, attack          components.ActionState
}

func readPlayerInput(input *components.InputData) playerInput {
	return playerInput{
		left:   GetAction(input, cfg.ActionMoveLeft),
		right:  GetAction(input, cfg.ActionMoveRight),
		up:     GetAction(input, cfg.ActionMoveUp),
		down:   GetAction(input, cfg.ActionCrouch),
		jump:   GetAction(input, cfg.ActionJump),
		attack: GetAction(input, cfg.ActionAttack),
	}
}

func UpdatePlayer(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	in := readPlayerInput(components.Input.Get(inputEntry))

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		if playerEntry.HasComponent(components.Death) {
			return
		}
		updateSinglePlayer(ecs, playerEntry, in)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, in playerInput) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	melee := components.MeleeAttack.Get(playerEntry)
	state := components.State.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry).Object

	tickPlayerTimers(player, physics)
	physics.MaxSpeed = player.Stats.MoveSpeed

	if state.CurrentState != cfg.Hit {
		if !state.CurrentState.IsAttack() {
			handleJumpInput(ecs, playerEntry, in, player, physics, state, playerObject)
		}
		handleAttackInput(ecs, playerEntry, in, player, state)
	}
	tickJumpAssists(in, player, physics)
	handleJumpCut(in, player, physics)
	handleMovementInput(in, player, physics, state, playerObject)

	updatePlayerState(ecs, playerEntry, player, physics, melee, state)
	player.WasOnGround = physics.OnGround != nil
}

// tickPlayerTimers counts down cooldowns and the drop-through window.
func tickPlayerTimers(player *components.PlayerData, physics *components.PhysicsData) {
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if player.MeleeCooldown > 0 {
		player.MeleeCooldown--
	}
	if player.RangedCooldown > 0 {
		player.RangedCooldown--
	}

	if player.DropThroughTimer > 0 {
		player.DropThroughTimer--
		if player.DropThroughTimer == 0 {
			physics.IgnorePlatform = nil
		}
	}
}

// tickJumpAssists runs after the jump gate. A jump is honoured on airborne
// frames 1..CoyoteFrames and up to JumpBufferFrames frames after a press.
func tickJumpAssists(in playerInput, player *components.PlayerData, physics *components.PhysicsData) {
	if physics.OnGround != nil {
		player.CoyoteTimer = cfg.Player.CoyoteFrames
	} else if player.CoyoteTimer > 0 {
		player.CoyoteTimer--
	}

	if player.JumpBufferTimer > 0 && !in.jump.JustPressed {
		player.JumpBufferTimer--
	}
}

// handleJumpInput buffers jump presses and performs drop-through, ground
// (or coyote) jumps and wall jumps.
func handleJumpInput(e *ecs.ECS, playerEntry *donburi.Entry, in playerInput, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, playerObject *resolv.Object) {
	if in.jump.JustPressed {
		player.JumpBufferTimer = cfg.Player.JumpBufferFrames
	}
	if player.JumpBufferTimer <= 0 {
		return
	}

	// Drop-through platform
	if in.down.Pressed && physics.OnGround != nil && isOneWayPlatform(physics.OnGround) {
		physics.IgnorePlatform = physics.OnGround
		physics.OnGround = nil
		player.DropThroughTimer = cfg.Player.DropThroughFrames
		player.JumpBufferTimer = 0
		player.CoyoteTimer = 0
		playerObject.Y += cfg.Player.DropThroughNudge
		state.Set(cfg.DropThrough)
		return
	}

	// Ground jump, or a late one within coyote time
	if physics.OnGround != nil || player.CoyoteTimer > 0 {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.SpeedX += physics.Carried.X
		physics.OnGround = nil
		player.JumpBufferTimer = 0
		player.CoyoteTimer = 0
		player.JumpHeld = true
		PlaySFX(e, cfg.SoundJump)
		TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		return
	}

	// Wall jump pushes away from the wall
	if physics.WallSliding == nil {
		return
	}
	performWallJump(physics, player, playerObject)
	PlaySFX(e, cfg.SoundJump)
}

func isOneWayPlatform(obj *resolv.Object) bool {
	return obj != nil && obj.HasTags(tags.ResolvPlatform)
}

func performWallJump(physics *components.PhysicsData, player *components.PlayerData, playerObject *resolv.Object) {
	wallCenterX := physics.WallSliding.X + physics.WallSliding.W/2
	playerCenterX := playerObject.X + playerObject.W/2

	physics.SpeedY = -cfg.Player.JumpSpeed
	if wallCenterX > playerCenterX {
		physics.SpeedX = -cfg.Physics.WallJumpPush
		player.Direction.X = cfg.DirectionLeft
	} else {
		physics.SpeedX = cfg.Physics.WallJumpPush
		player.Direction.X = cfg.DirectionRight
	}
	physics.WallSliding = nil
	player.JumpBufferTimer = 0
	player.JumpHeld = true
}

// handleJumpCut shortens the jump when the button is released while
// rising.
func handleJumpCut(in playerInput, player *components.PlayerData, physics *components.PhysicsData) {
	if !player.JumpHeld {
		return
	}
	if physics.SpeedY >= 0 {
		player.JumpHeld = false
		return
	}
	if !in.jump.Pressed {
		physics.SpeedY *= cfg.Player.JumpCutMultiplier
		player.JumpHeld = false
	}
}

func handleMovementInput(in playerInput, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, playerObject *resolv.Object) {
	if physics.WallSliding != nil {
		// Letting go of the wall ends the slide
		wallRight := physics.WallSliding.X+physics.WallSliding.W/2 > playerObject.X+playerObject.W/2
		holding := (wallRight && in.right.Pressed) || (!wallRight && in.left.Pressed)
		if holding {
			return
		}
		physics.WallSliding = nil
	}

	accel := cfg.Player.Acceleration
	if state.CurrentState.IsAttack() {
		accel = cfg.Player.AttackAccel
	}
	if state.CurrentState == cfg.Hit {
		return
	}

	if in.right.Pressed {
		physics.SpeedX += accel
		player.Direction.X = cfg.DirectionRight
	}
	if in.left.Pressed {
		physics.SpeedX -= accel
		player.Direction.X = cfg.DirectionLeft
	}
}

func updatePlayerState(ecs *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, melee *components.MeleeAttackData, state *components.StateData) {
	state.StateTimer++

	landed := physics.OnGround != nil && !player.WasOnGround
	if landed {
		PlaySFX(ecs, cfg.SoundLand)
		TriggerSquashStretch(playerEntry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	}

	switch state.CurrentState {
	case cfg.AttackMelee:
		if state.StateTimer < cfg.Melee.Duration {
			return
		}
		melee.IsAttacking = false
		melee.HasSpawnedHitbox = false

	case cfg.AttackRanged:
		if state.StateTimer < cfg.Ranged.AttackFrames {
			return
		}

	case cfg.Hit:
		if state.StateTimer < cfg.Player.HitstunFrames {
			return
		}

	case cfg.DropThrough:
		if player.DropThroughTimer > 0 && physics.OnGround == nil {
			return
		}
	}

	previous := state.CurrentState
	transitionToMovementState(physics, state)
	if state.CurrentState == cfg.WallSlide && previous != cfg.WallSlide {
		PlaySFX(ecs, cfg.SoundWallAttach)
	}
}

// transitionToMovementState derives the state from physics.
func transitionToMovementState(physics *components.PhysicsData, state *components.StateData) {
	state.Set(movementState(physics))
}

func movementState(physics *components.PhysicsData) cfg.StateID {
	switch {
	case physics.WallSliding != nil:
		return cfg.WallSlide
	case physics.OnGround == nil && physics.SpeedY < 0:
		return cfg.Jump
	case physics.OnGround == nil:
		return cfg.Fall
	case physics.SpeedX != 0:
		return cfg.Running
	default:
		return cfg.Idle
	}
}
