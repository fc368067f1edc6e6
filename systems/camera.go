package systems

import (
	"math"

	"github.com/automoto/exorcist/components"
	"github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(physics.SpeedX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.Direction.X * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX, targetY := ClampCamera(
		playerObject.CenterX()+camera.LookAheadX,
		playerObject.CenterY(),
		float64(levelData.CurrentLevel.Width),
		float64(levelData.CurrentLevel.Height),
	)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// ClampCamera keeps a camera center inside the level so the level always
// fills the screen. Levels smaller than the screen are centered.
func ClampCamera(x, y, levelWidth, levelHeight float64) (float64, float64) {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2

	if levelWidth <= 2*halfW {
		x = levelWidth / 2
	} else {
		x = math.Max(halfW, math.Min(levelWidth-halfW, x))
	}
	if levelHeight <= 2*halfH {
		y = levelHeight / 2
	} else {
		y = math.Max(halfH, math.Min(levelHeight-halfH, y))
	}
	return x, y
}

// SnapCamera centers the camera on the player immediately, used when a
// scene starts.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok || components.Level.Get(levelEntry).CurrentLevel == nil {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	obj := components.Object.Get(playerEntry)

	camera := components.Camera.Get(cameraEntry)
	camera.Position.X, camera.Position.Y = ClampCamera(obj.CenterX(), obj.CenterY(), float64(level.Width), float64(level.Height))
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Elapsed >= shake.Duration {
		return
	}
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	currentIntensity := shake.Intensity * math.Max(0, progress)

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		*shake = components.ScreenShakeData{}
	}
}

// TriggerScreenShake starts a screen shake effect. A weaker shake never
// replaces a stronger one still running.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	if !cameraEntry.HasComponent(components.ScreenShake) {
		cameraEntry.AddComponent(components.ScreenShake)
	}

	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Elapsed < shake.Duration && intensity <= shake.Intensity {
		return
	}
	*shake = components.ScreenShakeData{Intensity: intensity, Duration: duration}
}
