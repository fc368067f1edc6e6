package systems

import (
	"testing"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func pressed() components.ActionState { return components.ActionState{Pressed: true} }
func justPressed() components.ActionState { return components.ActionState{Pressed: true, JustPressed: true} }

func TestCoyoteJump(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreatePlayer(e, 100, 100)
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	obj := components.Object.Get(entry).Object

	physics.OnGround = resolv.NewObject(0, 132, 64, 8, tags.ResolvSolid)
	tickJumpAssists(playerInput{}, player, physics)
	assert.Equal(t, cfg.Player.CoyoteFrames, player.CoyoteTimer)

	// Walked off the ledge two frames ago
	physics.OnGround = nil
	tickJumpAssists(playerInput{}, player, physics)
	tickJumpAssists(playerInput{}, player, physics)
	assert.Equal(t, cfg.Player.CoyoteFrames-2, player.CoyoteTimer)

	handleJumpInput(e, entry, playerInput{jump: justPressed()}, player, physics, state, obj)
	assert.Equal(t, -cfg.Player.JumpSpeed, physics.SpeedY)
	assert.Zero(t, player.CoyoteTimer)
	assert.True(t, player.JumpHeld)
	assert.Contains(t, pendingSFX(e), cfg.SoundJump)
}

func TestJumpBufferFiresOnLanding(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreatePlayer(e, 100, 100)
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	obj := components.Object.Get(entry).Object

	// Pressed in mid-air with no coyote time left
	press := playerInput{jump: justPressed()}
	handleJumpInput(e, entry, press, player, physics, state, obj)
	tickJumpAssists(press, player, physics)
	assert.Equal(t, cfg.Player.JumpBufferFrames, player.JumpBufferTimer, "the press frame does not count down")
	assert.Zero(t, physics.SpeedY)

	physics.OnGround = resolv.NewObject(0, 132, 64, 8, tags.ResolvSolid)
	handleJumpInput(e, entry, playerInput{jump: pressed()}, player, physics, state, obj)
	assert.Equal(t, -cfg.Player.JumpSpeed, physics.SpeedY)
	assert.Zero(t, player.JumpBufferTimer)
}

// playerRig steps the player through the same systems, in the same order,
// as the world scene.
type playerRig struct {
	e     *ecs.ECS
	entry *donburi.Entry
	input *components.InputData
}

func newPlayerRig(t *testing.T, x, y float64) *playerRig {
	t.Helper()
	e := newTestECS(t)
	// Ledge from x=0 to x=64 with its top at y=200
	factory.CreateWall(e, 0, 200, 64, 16, -1)
	return &playerRig{e: e, entry: factory.CreatePlayer(e, x, y), input: getOrCreateInput(e)}
}

func (r *playerRig) physics() *components.PhysicsData { return components.Physics.Get(r.entry) }

// frame runs one frame with the given actions held and returns the
// vertical speed right after the controller ran.
func (r *playerRig) frame(held ...cfg.ActionID) float64 {
	r.input.Previous = r.input.Current
	r.input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		r.input.Current[a] = true
	}
	UpdatePlayer(r.e)
	speedY := r.physics().SpeedY
	UpdatePhysics(r.e)
	UpdateCollisions(r.e)
	return speedY
}

func (r *playerRig) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 120 && r.physics().OnGround == nil; i++ {
		r.frame()
	}
	require.NotNil(t, r.physics().OnGround, "player never landed")
}

func TestCoyoteWindowFullLoop(t *testing.T) {
	tests := []struct {
		name       string
		jumpFrame  int
		wantJumped bool
	}{
		{"first airborne frame", 1, true},
		{"last coyote frame", cfg.Player.CoyoteFrames, true},
		{"one frame too late", cfg.Player.CoyoteFrames + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := float64(cfg.Player.CollisionHeight)
			r := newPlayerRig(t, 30, 200-h-4)
			r.settle(t)

			// Walk right until the collision pass loses the ground
			for i := 0; i < 600 && r.physics().OnGround != nil; i++ {
				r.frame(cfg.ActionMoveRight)
			}
			require.Nil(t, r.physics().OnGround, "never walked off the ledge")

			for k := 1; k < tt.jumpFrame; k++ {
				require.GreaterOrEqual(t, r.frame(cfg.ActionMoveRight), 0.0, "airborne frame %d", k)
			}
			speedY := r.frame(cfg.ActionMoveRight, cfg.ActionJump)
			if tt.wantJumped {
				assert.Equal(t, -cfg.Player.JumpSpeed, speedY)
			} else {
				assert.GreaterOrEqual(t, speedY, 0.0)
			}
		})
	}
}

func TestJumpBufferWindowFullLoop(t *testing.T) {
	h := float64(cfg.Player.CollisionHeight)
	start := 200 - h - 120

	// Find the frame whose controller pass first sees the ground
	dry := newPlayerRig(t, 20, start)
	landing := -1
	for f := 0; f < 600; f++ {
		if dry.physics().OnGround != nil {
			landing = f
			break
		}
		dry.frame()
	}
	require.Greater(t, landing, cfg.Player.JumpBufferFrames+1)

	tests := []struct {
		name       string
		early      int
		wantJumped bool
	}{
		{"pressed on the landing frame", 0, true},
		{"pressed at the buffer limit", cfg.Player.JumpBufferFrames, true},
		{"pressed too early", cfg.Player.JumpBufferFrames + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPlayerRig(t, 20, start)
			var speedY float64
			for f := 0; f <= landing; f++ {
				if f == landing-tt.early {
					speedY = r.frame(cfg.ActionJump)
				} else {
					speedY = r.frame()
				}
			}
			if tt.wantJumped {
				assert.Less(t, speedY, 0.0)
			} else {
				assert.GreaterOrEqual(t, speedY, 0.0)
			}
		})
	}
}

func TestDropThroughOneWayPlatform(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreatePlayer(e, 100, 100)
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	obj := components.Object.Get(entry).Object

	platform := resolv.NewObject(0, 132, 64, 8, tags.ResolvPlatform)
	physics.OnGround = platform
	y := obj.Y

	handleJumpInput(e, entry, playerInput{jump: justPressed(), down: pressed()}, player, physics, state, obj)
	assert.Same(t, platform, physics.IgnorePlatform)
	assert.Nil(t, physics.OnGround)
	assert.Equal(t, cfg.DropThrough, state.CurrentState)
	assert.Greater(t, obj.Y, y)
	assert.Zero(t, physics.SpeedY, "no jump impulse")

	for player.DropThroughTimer > 0 {
		tickPlayerTimers(player, physics)
	}
	assert.Nil(t, physics.IgnorePlatform)
}

func TestWallJumpPushesAway(t *testing.T) {
	tests := []struct {
		name    string
		wallX   float64
		wantDir float64
	}{
		{"wall on the right", 120, cfg.DirectionLeft},
		{"wall on the left", 60, cfg.DirectionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			physics := &components.PhysicsData{WallSliding: resolv.NewObject(tt.wallX, 0, 8, 64, tags.ResolvSolid)}
			player := &components.PlayerData{JumpBufferTimer: 3}
			obj := resolv.NewObject(100, 20, 16, 32)

			performWallJump(physics, player, obj)
			assert.Equal(t, -cfg.Player.JumpSpeed, physics.SpeedY)
			assert.Equal(t, tt.wantDir, player.Direction.X)
			assert.Equal(t, tt.wantDir*cfg.Physics.WallJumpPush, physics.SpeedX)
			assert.Nil(t, physics.WallSliding)
			assert.Zero(t, player.JumpBufferTimer)
		})
	}
}

func TestJumpCut(t *testing.T) {
	physics := &components.PhysicsData{SpeedY: -8}
	player := &components.PlayerData{JumpHeld: true}

	handleJumpCut(playerInput{jump: pressed()}, player, physics)
	assert.Equal(t, -8.0, physics.SpeedY, "held jump keeps its speed")

	handleJumpCut(playerInput{}, player, physics)
	assert.Equal(t, -8*cfg.Player.JumpCutMultiplier, physics.SpeedY)
	assert.False(t, player.JumpHeld)

	handleJumpCut(playerInput{}, player, physics)
	assert.Equal(t, -8*cfg.Player.JumpCutMultiplier, physics.SpeedY, "cut only once")
}

func TestMovementState(t *testing.T) {
	ground := resolv.NewObject(0, 0, 10, 10)
	tests := []struct {
		name    string
		physics components.PhysicsData
		want    cfg.StateID
	}{
		{"idle", components.PhysicsData{OnGround: ground}, cfg.Idle},
		{"running", components.PhysicsData{OnGround: ground, SpeedX: 2}, cfg.Running},
		{"rising", components.PhysicsData{SpeedY: -3}, cfg.Jump},
		{"falling", components.PhysicsData{SpeedY: 2}, cfg.Fall},
		{"wall slide wins", components.PhysicsData{WallSliding: ground, SpeedY: 1}, cfg.WallSlide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, movementState(&tt.physics))
		})
	}
}
