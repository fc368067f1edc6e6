package systems

import (
	"fmt"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause overlay and runs its menu. It runs after
// UpdateInput and before every gameplay system.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed && !IsSettingsOpen(ecs) {
		setPaused(ecs, pause, !pause.IsPaused)
	}
	if !pause.IsPaused || IsSettingsOpen(ecs) {
		return
	}

	if step := menuStep(input); step != 0 {
		n := int(components.MenuExit) + 1
		pause.SelectedOption = components.PauseMenuOption(wrapIndex(int(pause.SelectedOption)+step, n))
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}
	PlaySFX(ecs, cfg.SoundMenuSelect)
	switch pause.SelectedOption {
	case components.MenuResume:
		setPaused(ecs, pause, false)
	case components.MenuSettings:
		OpenSettings(ecs, true)
	case components.MenuExit:
		// Leaving a run counts as a loss
		pause.IsPaused = false
		endRun(ecs)
	}
}

func setPaused(ecs *ecs.ECS, pause *components.PauseData, paused bool) {
	pause.IsPaused = paused
	if paused {
		pause.SelectedOption = components.MenuResume
		PauseMusic(ecs)
		return
	}
	ResumeMusic(ecs)
}

// DrawPause renders the pause overlay with a short run summary above the
// menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuHeight := float64(len(cfg.Pause.MenuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - menuHeight) / 2

	titleFace := fonts.Title.Get()
	text.Draw(screen, "PAUSED", titleFace, centerTextX("PAUSED", titleFace, width), int(startY)-28, cfg.Menu.TitleColor)
	if line := pauseSummary(ecs); line != "" {
		small := fonts.Small.Get()
		text.Draw(screen, line, small, centerTextX(line, small, width), int(startY)-10, cfg.Pause.TextColorNormal)
	}

	optionList{
		Options:    cfg.Pause.MenuOptions,
		Selected:   int(pause.SelectedOption),
		StartY:     startY,
		ItemHeight: cfg.Pause.MenuItemHeight,
		Gap:        cfg.Pause.MenuItemGap,
		Normal:     cfg.Pause.TextColorNormal,
		Highlight:  cfg.Pause.TextColorSelected,
	}.draw(screen, fonts.Bold.Get())

	b := buttonsFor(getOrCreateInput(ecs).LastInputMethod)
	hint := hintLine(b.Navigate, "Navigate", b.Select, "Select", b.Pause, "Resume")
	hintFace := fonts.Small.Get()
	text.Draw(screen, hint, hintFace, centerTextX(hint, hintFace, width), int(height)-12, cfg.Pause.TextColorNormal)
}

// pauseSummary is the wave and reality line under the pause title.
func pauseSummary(ecs *ecs.ECS) string {
	entry, ok := components.Wave.First(ecs.World)
	if !ok {
		return ""
	}
	wave := components.Wave.Get(entry)
	line := fmt.Sprintf("Wave %d/%d", wave.Wave, cfg.Wave.TotalWaves)
	if mgr := realityManager(ecs); mgr != nil {
		if r := mgr.CurrentReality(); r != nil {
			line += "   " + r.Name
		}
	}
	return line
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution while paused, while
// a level-up choice is open or once the run has finished.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		if p := progress(e); p != nil && p.Choosing() {
			return
		}
		if entry, ok := components.Wave.First(e.World); ok && components.Wave.Get(entry).Finished {
			return
		}
		system(e)
	}
}

// endRun finishes the run as lost.
func endRun(ecs *ecs.ECS) {
	entry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(entry)
	wave.Finished = true
	wave.Won = false
}

// GetOrCreatePause returns the pause singleton.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if ent, ok := components.Pause.First(ecs.World); ok {
		return components.Pause.Get(ent)
	}
	ent := ecs.World.Entry(ecs.World.Create(components.Pause))
	components.Pause.SetValue(ent, components.PauseData{SelectedOption: components.MenuResume})
	return components.Pause.Get(ent)
}
