package systems

import (
	"image/color"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object when debug boxes are on.
// Objects that lost their tags to an inactive reality draw dim.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes {
		return
	}
	view, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if !view.visible(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}
		x, y := view.toScreen(obj.X, obj.Y)

		c := color.RGBA{60, 60, 60, 255}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlatform):
			c = color.RGBA{160, 130, 90, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvTalisman):
			c = color.RGBA{0, 255, 0, 255}
		case obj.HasTags(tags.ResolvHazard, tags.ResolvDeadZone):
			c = color.RGBA{255, 0, 255, 255}
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false)
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false)
	}
}
