package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/fonts"
	"github.com/automoto/exorcist/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD toggles the minimap.
func UpdateHUD(ecs *ecs.ECS) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionMinimap).JustPressed {
		hud := components.HUD.Get(entry)
		hud.ShowMinimap = !hud.ShowMinimap
	}
}

// DrawHUD renders health, both experience tracks, the current reality,
// cooldown pips and the wave counters.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	m := cfg.HUD.Margin
	y := m

	// Health
	hp := components.Health.Get(playerEntry)
	drawBar(screen, m, y, cfg.HUD.BarWidth, cfg.HUD.BarHeight, hp.Fraction(), cfg.HUD.HealthColor)
	body := fonts.Small.Get()
	text.Draw(screen, fmt.Sprintf("%d/%d", hp.Current, hp.Max), body, int(m+cfg.HUD.BarWidth+4), int(y+cfg.HUD.BarHeight), cfg.White) //nolint:staticcheck
	y += cfg.HUD.BarHeight + 4

	// Experience, Living first
	if p := progress(ecs); p != nil {
		for _, index := range []int{cfg.RealityLiving, cfg.RealitySpirit} {
			track := p.Tracks[index]
			c := realityColor(index)
			drawBar(screen, m, y, cfg.HUD.BarWidth, cfg.HUD.XPBarHeight, track.Progress(), c)
			label := fmt.Sprintf("%s %d", cfg.Reality.Names[index], track.Level)
			text.Draw(screen, label, body, int(m+cfg.HUD.BarWidth+4), int(y+cfg.HUD.XPBarHeight+2), c) //nolint:staticcheck
			y += cfg.HUD.XPBarHeight + 4
		}
	}

	// Current reality name in its colour
	index := CurrentRealityIndex(ecs)
	if index >= 0 && index < len(cfg.Reality.Names) {
		text.Draw(screen, cfg.Reality.Names[index], fonts.Bold.Get(), int(m), int(y+14), realityColor(index)) //nolint:staticcheck
		y += 18
	}

	drawCooldownPips(screen, components.Player.Get(playerEntry), index, m, y)
	drawWaveInfo(ecs, screen)

	if hud, ok := components.HUD.First(ecs.World); ok && components.HUD.Get(hud).ShowMinimap {
		DrawMinimap(ecs, screen)
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h, fraction float64, fill color.RGBA) {
	fraction = max(0, min(1, fraction))
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.HUD.BarBgColor, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*fraction), float32(h), fill, false)
}

// drawCooldownPips shows one pip per attack; a pip fills up as its
// cooldown runs out. The pip of the current reality's attack is outlined.
func drawCooldownPips(screen *ebiten.Image, player *components.PlayerData, current int, x, y float64) {
	size := cfg.HUD.PipSize
	pips := []struct {
		index     int
		remaining int
		total     int
	}{
		{cfg.RealityLiving, player.MeleeCooldown, player.Stats.MeleeCooldown},
		{cfg.RealitySpirit, player.RangedCooldown, player.Stats.RangedCooldown},
	}
	for i, pip := range pips {
		px := x + float64(i)*(size+4)
		ready := 1.0
		if pip.total > 0 {
			ready = 1 - float64(pip.remaining)/float64(pip.total)
		}
		c := realityColor(pip.index)
		vector.FillRect(screen, float32(px), float32(y), float32(size), float32(size), cfg.HUD.BarBgColor, false)
		vector.FillRect(screen, float32(px), float32(y+size*(1-ready)), float32(size), float32(size*ready), c, false)
		if pip.index == current {
			vector.StrokeRect(screen, float32(px-1), float32(y-1), float32(size+2), float32(size+2), 1, cfg.White, false)
		}
	}
}

func drawWaveInfo(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(entry)
	body := fonts.Small.Get()
	right := float64(screen.Bounds().Dx()) - cfg.HUD.Margin

	lines := []string{
		fmt.Sprintf("Wave %d/%d", wave.Wave, cfg.Wave.TotalWaves),
		fmt.Sprintf("Enemies %d", wave.Alive),
	}
	if wave.Wave < cfg.Wave.TotalWaves {
		lines = append(lines, fmt.Sprintf("Next %ds", (wave.NextWaveTimer+59)/60))
	}
	for i, line := range lines {
		x := int(right) - text.BoundString(body, line).Dx()
		text.Draw(screen, line, body, x, int(cfg.HUD.Margin)+10+i*10, cfg.White) //nolint:staticcheck
	}
}

// DrawMinimap renders a scaled overview of solids, enemies and the player
// in the bottom-right corner.
func DrawMinimap(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || level.Width <= 0 || level.Height <= 0 {
		return
	}

	w, h := cfg.HUD.MinimapWidth, cfg.HUD.MinimapHeight
	x := float64(screen.Bounds().Dx()) - w - cfg.HUD.Margin
	y := float64(screen.Bounds().Dy()) - h - cfg.HUD.Margin
	sx, sy := w/float64(level.Width), h/float64(level.Height)

	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.HUD.MinimapBgColor, false)

	dot := func(ox, oy, ow, oh float64, c color.Color) {
		vector.FillRect(screen,
			float32(x+ox*sx), float32(y+oy*sy),
			float32(max(1, ow*sx)), float32(max(1, oh*sy)),
			c, false)
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		dot(obj.X, obj.Y, obj.W, obj.H, memberColor(e, cfg.HUD.SolidColor))
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		dot(obj.X, obj.Y, obj.W, obj.H, memberColor(e, cfg.HUD.PlatformColor))
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(e)
		dot(obj.X, obj.Y, obj.W, obj.H, memberColor(e, components.Enemy.Get(e).TintColor))
	})
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(playerEntry)
		dot(obj.X, obj.Y, obj.W, obj.H, cfg.HUD.PlayerColor)
	}
}
