package factory

import (
	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	camera.AddComponent(components.ScreenShake)
}
