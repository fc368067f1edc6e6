package systems

import (
	"image/color"
	"math"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Viewport culling skips entities that are off-screen. A small padding
// keeps shapes from popping in at the edges.
const cullPadding = 64.0

var (
	sharedSolidColor    = color.RGBA{R: 70, G: 70, B: 84, A: 255}
	sharedPlatformColor = color.RGBA{R: 120, G: 104, B: 84, A: 255}
	hazardColor         = color.RGBA{R: 200, G: 40, B: 120, A: 255}
	playerColor         = color.RGBA{R: 235, G: 235, B: 245, A: 255}
)

// cameraView converts world coordinates to screen coordinates.
type cameraView struct {
	offsetX, offsetY float64
	minX, maxX       float64
	minY, maxY       float64
}

func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (cameraView, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return cameraView{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return newCameraView(camera.Position.X, camera.Position.Y, width, height), true
}

func newCameraView(camX, camY, width, height float64) cameraView {
	return cameraView{
		offsetX: width/2 - camX,
		offsetY: height/2 - camY,
		minX:    camX - width/2 - cullPadding,
		maxX:    camX + width/2 + cullPadding,
		minY:    camY - height/2 - cullPadding,
		maxY:    camY + height/2 + cullPadding,
	}
}

func (c cameraView) toScreen(x, y float64) (float64, float64) {
	return x + c.offsetX, y + c.offsetY
}

func (c cameraView) visible(x, y, w, h float64) bool {
	return x+w >= c.minX && x <= c.maxX && y+h >= c.minY && y <= c.maxY
}

func (c cameraView) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if !c.visible(x, y, w, h) {
		return
	}
	sx, sy := c.toScreen(x, y)
	vector.FillRect(screen, float32(sx), float32(sy), float32(w), float32(h), clr, false)
}

// scaleAlpha fades a colour by a. Ebitengine colours are premultiplied,
// so every channel is scaled.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// applyFlash multiplies a colour by the flash multipliers.
func applyFlash(c color.RGBA, r, g, b float32) color.RGBA {
	mul := func(v uint8, m float32) uint8 {
		return uint8(math.Min(255, float64(v)*float64(m)))
	}
	return color.RGBA{R: mul(c.R, r), G: mul(c.G, g), B: mul(c.B, b), A: c.A}
}

// mixColor blends a toward b by t.
func mixColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// memberColor tints base with the entity's reality colour and fades it by
// the member's alpha. Shared entities keep the base colour.
func memberColor(e *donburi.Entry, base color.RGBA) color.RGBA {
	if !e.HasComponent(components.RealityMember) {
		return base
	}
	member := components.RealityMember.Get(e)
	if member.Index >= 0 && member.Index < len(cfg.Reality.Colors) {
		base = mixColor(base, cfg.Reality.Colors[member.Index], 0.5)
	}
	return scaleAlpha(base, member.Alpha())
}

// DrawBackground fills the screen with a tint of the active reality.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	bg := color.RGBA{R: 14, G: 12, B: 22, A: 255}
	if mgr := realityManager(ecs); mgr != nil {
		if r := mgr.CurrentReality(); r != nil {
			bg = mixColor(bg, r.Color, 0.08)
		}
	}
	screen.Fill(bg)
}

// DrawLevel draws walls, platforms and hazards.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		view.fillRect(screen, o.X, o.Y, o.W, o.H, memberColor(e, sharedSolidColor))
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		view.fillRect(screen, o.X, o.Y, o.W, o.H, memberColor(e, sharedPlatformColor))
	})
	tags.DamageArea.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := hazardColor
		if area := components.DamageArea.Get(e); area.Cooldown > 0 {
			c = scaleAlpha(c, 0.5)
		}
		view.fillRect(screen, o.X, o.Y, o.W, o.H, memberColor(e, c))
	})
}

// DrawEntities draws enemies, projectiles, orbs and the player as
// coloured boxes.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	orbColors := cfg.HUD.OrbColors
	components.Orb.Each(ecs.World, func(e *donburi.Entry) {
		orb := components.Orb.Get(e)
		if !orb.Active {
			return
		}
		o := components.Object.Get(e)
		c := cfg.White
		if orb.Reality >= 0 && orb.Reality < len(orbColors) {
			c = orbColors[orb.Reality]
		}
		if mgr := realityManager(ecs); mgr != nil && !mgr.IsActive(orb.Reality) {
			c = scaleAlpha(c, cfg.Reality.InactiveOpacity)
		}
		view.fillRect(screen, o.X, o.Y, o.W, o.H, c)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		enemy := components.Enemy.Get(e)
		c := enemy.TintColor
		if enemy.InvulnFrames > 0 && enemy.InvulnFrames%4 < 2 {
			c = applyFlash(c, 1, 0.5, 0.5)
		}
		c = withFlash(e, c)
		if e.HasComponent(components.Death) {
			c = scaleAlpha(c, float64(components.Death.Get(e).Timer)/float64(max(1, cfg.Enemy.DeathFrames)))
		}
		view.fillRect(screen, o.X, o.Y, o.W, o.H, memberColor(e, c))
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		view.fillRect(screen, o.X, o.Y, o.W, o.H, memberColor(e, cfg.HUD.ProjectileColor))
	})

	tags.Talisman.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Talisman.Get(e).Active {
			return
		}
		o := components.Object.Get(e)
		view.fillRect(screen, o.X, o.Y, o.W, o.H, cfg.Yellow)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(e, view, screen)
	})

	components.Burst.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Burst.Get(e)
		if !view.visible(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius) {
			return
		}
		c := scaleAlpha(color.RGBA{R: b.Color[0], G: b.Color[1], B: b.Color[2], A: b.Color[3]}, burstAlpha(e))
		sx, sy := view.toScreen(b.X, b.Y)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(b.Radius), 2, c, true)
	})
}

func drawPlayer(e *donburi.Entry, view cameraView, screen *ebiten.Image) {
	o := components.Object.Get(e)
	player := components.Player.Get(e)

	c := playerColor
	if player.InvulnFrames > 0 && player.InvulnFrames%4 < 2 {
		c = scaleAlpha(applyFlash(c, 1, 0.5, 0.5), 0.8)
	}
	c = withFlash(e, c)
	if e.HasComponent(components.Death) {
		c = scaleAlpha(c, 0.5)
	}

	// Squash/stretch scales around the bottom-center so feet stay planted
	w, h := o.W, o.H
	if e.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(e)
		w *= ss.ScaleX
		h *= ss.ScaleY
	}
	x := o.CenterX() - w/2
	y := o.Y + o.H - h
	view.fillRect(screen, x, y, w, h, c)

	// Facing marker
	markerX := o.X + o.W - 3
	if player.Direction.X < 0 {
		markerX = o.X
	}
	view.fillRect(screen, markerX, o.Y+4, 3, 3, currentRealityColor(e))
}

func withFlash(e *donburi.Entry, c color.RGBA) color.RGBA {
	if !e.HasComponent(components.Flash) || e.HasComponent(components.Death) {
		return c
	}
	flash := components.Flash.Get(e)
	if flash.Duration <= 0 {
		return c
	}
	return applyFlash(c, flash.R, flash.G, flash.B)
}

func currentRealityColor(e *donburi.Entry) color.RGBA {
	entry, ok := components.RealityState.First(e.World)
	if !ok {
		return cfg.White
	}
	mgr := components.RealityState.Get(entry).Manager
	if mgr == nil || mgr.CurrentReality() == nil {
		return cfg.White
	}
	return mgr.CurrentReality().Color
}

func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Health) || e.HasComponent(components.Death) {
			return
		}
		o := components.Object.Get(e)
		hp := components.Health.Get(e)

		const barWidth, barHeight = 24.0, 3.0
		barX := o.CenterX() - barWidth/2
		barY := o.Y - barHeight - 4

		alpha := 1.0
		if e.HasComponent(components.RealityMember) {
			alpha = components.RealityMember.Get(e).Alpha()
		}
		view.fillRect(screen, barX, barY, barWidth, barHeight, scaleAlpha(cfg.HUD.BarBgColor, alpha))
		view.fillRect(screen, barX, barY, barWidth*hp.Fraction(), barHeight, scaleAlpha(cfg.HUD.HealthColor, alpha))
	})
}

// UpdateHealthBars counts down how long enemy health bars stay visible.
func UpdateHealthBars(ecs *ecs.ECS) {
	var expired []*donburi.Entry
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		bar.TimeToLive--
		if bar.TimeToLive <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		e.RemoveComponent(components.HealthBar)
	}
}

// TriggerHitFlash starts a white flash effect on the entity (for hits dealt)
func TriggerHitFlash(entry *donburi.Entry) {
	if entry.HasComponent(components.Death) || !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = cfg.Combat.HitFlashFrames
	flash.R, flash.G, flash.B = 3, 3, 3
}

// TriggerDamageFlash starts a red flash effect on the entity (for damage taken)
func TriggerDamageFlash(entry *donburi.Entry) {
	if entry.HasComponent(components.Death) || !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = cfg.Combat.DamageFlashFrames
	flash.R, flash.G, flash.B = 3, 1, 1
}
