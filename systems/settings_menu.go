package systems

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// settingsRow describes one line of the settings overlay. adjust runs on
// left/right, activate on select; either may be nil.
type settingsRow struct {
	label    string
	value    func(s *components.SettingsMenuData) string
	adjust   func(e *ecs.ECS, s *components.SettingsMenuData, dir int)
	activate func(e *ecs.ECS, s *components.SettingsMenuData)
	hidden   func(s *components.SettingsMenuData) bool
}

// settingsRows is indexed by components.SettingsMenuOption.
var settingsRows = [...]settingsRow{
	components.SettingsOptMusicVolume: {
		label: "Music Volume",
		value: func(s *components.SettingsMenuData) string { return formatVolumeBar(s.MusicVolume) },
		adjust: func(e *ecs.ECS, s *components.SettingsMenuData, dir int) {
			s.MusicVolume = stepVolume(s.MusicVolume, dir, cfg.SettingsMenu.VolumeSteps)
			if !s.Muted {
				SetMusicVolume(s.MusicVolume)
			}
			PlaySFX(e, cfg.SoundMenuNavigate)
		},
	},
	components.SettingsOptSFXVolume: {
		label: "SFX Volume",
		value: func(s *components.SettingsMenuData) string { return formatVolumeBar(s.SFXVolume) },
		adjust: func(e *ecs.ECS, s *components.SettingsMenuData, dir int) {
			s.SFXVolume = stepVolume(s.SFXVolume, dir, cfg.SettingsMenu.VolumeSteps)
			if !s.Muted {
				SetSFXVolume(s.SFXVolume)
			}
			// preview at the new level
			PlaySFX(e, cfg.SoundMenuSelect)
		},
	},
	components.SettingsOptMute: {
		label:    "Mute",
		value:    func(s *components.SettingsMenuData) string { return formatToggle(s.Muted) },
		adjust:   func(e *ecs.ECS, s *components.SettingsMenuData, _ int) { toggleMute(e, s) },
		activate: toggleMute,
	},
	components.SettingsOptFullscreen: {
		label:    "Fullscreen",
		value:    func(s *components.SettingsMenuData) string { return formatToggle(s.Fullscreen) },
		adjust:   func(e *ecs.ECS, s *components.SettingsMenuData, _ int) { toggleFullscreen(e, s) },
		activate: toggleFullscreen,
	},
	components.SettingsOptResolution: {
		label: "Resolution",
		value: func(s *components.SettingsMenuData) string {
			if s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
				return cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
			}
			return "Unknown"
		},
		adjust: func(e *ecs.ECS, s *components.SettingsMenuData, dir int) {
			s.ResolutionIndex = wrapIndex(s.ResolutionIndex+dir, len(cfg.SettingsMenu.Resolutions))
			res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
			PlaySFX(e, cfg.SoundMenuNavigate)
		},
		// The window size is meaningless in fullscreen
		hidden: func(s *components.SettingsMenuData) bool { return s.Fullscreen },
	},
	components.SettingsOptInputMode: {
		label: "Input",
		value: func(s *components.SettingsMenuData) string {
			if s.InputMode < len(cfg.SettingsMenu.InputModes) {
				return cfg.SettingsMenu.InputModes[s.InputMode]
			}
			return "Unknown"
		},
		adjust: func(e *ecs.ECS, s *components.SettingsMenuData, dir int) {
			s.InputMode = wrapIndex(s.InputMode+dir, len(cfg.SettingsMenu.InputModes))
			PlaySFX(e, cfg.SoundMenuNavigate)
		},
	},
	components.SettingsOptControls: {
		label: "Controls",
		value: func(*components.SettingsMenuData) string { return ">" },
		activate: func(e *ecs.ECS, s *components.SettingsMenuData) {
			s.ShowingControls = true
			PlaySFX(e, cfg.SoundMenuSelect)
		},
	},
	components.SettingsOptBack: {
		label:    "< Back",
		activate: closeSettings,
	},
}

func (r settingsRow) isHidden(s *components.SettingsMenuData) bool {
	return r.hidden != nil && r.hidden(s)
}

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}
	input := getOrCreateInput(e)
	pressed := func(a cfg.ActionID) bool { return GetAction(input, a).JustPressed }
	back := pressed(cfg.ActionMenuBack) || pressed(cfg.ActionSwitchReality) || pressed(cfg.ActionPause)

	if settings.ShowingControls {
		if back || pressed(cfg.ActionMenuSelect) {
			settings.ShowingControls = false
			PlaySFX(e, cfg.SoundMenuSelect)
		}
		return
	}

	switch {
	case pressed(cfg.ActionMenuUp):
		moveSettingsSelection(settings, -1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	case pressed(cfg.ActionMenuDown):
		moveSettingsSelection(settings, 1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	row := settingsRows[settings.SelectedOption]
	if row.adjust != nil {
		if pressed(cfg.ActionMenuLeft) {
			row.adjust(e, settings, -1)
		}
		if pressed(cfg.ActionMenuRight) {
			row.adjust(e, settings, 1)
		}
	}
	if row.activate != nil && pressed(cfg.ActionMenuSelect) {
		row.activate(e, settings)
	}

	if back && settings.IsOpen {
		closeSettings(e, settings)
	}
}

// moveSettingsSelection steps the selection by delta, wrapping around and
// skipping hidden rows.
func moveSettingsSelection(s *components.SettingsMenuData, delta int) {
	for range settingsRows {
		next := wrapIndex(int(s.SelectedOption)+delta, len(settingsRows))
		s.SelectedOption = components.SettingsMenuOption(next)
		if !settingsRows[next].isHidden(s) {
			return
		}
	}
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// stepVolume moves from the step closest to current by dir steps,
// stopping at either end.
func stepVolume(current float64, dir int, steps []float64) float64 {
	if len(steps) == 0 {
		return current
	}
	closest := 0
	for i, v := range steps {
		if math.Abs(current-v) < math.Abs(current-steps[closest]) {
			closest = i
		}
	}
	return steps[max(0, min(len(steps)-1, closest+dir))]
}

func toggleMute(e *ecs.ECS, s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	if s.Muted {
		s.PreMuteMusicVol = s.MusicVolume
		s.PreMuteSFXVol = s.SFXVolume
		SetMusicVolume(0)
		SetSFXVolume(0)
	} else {
		SetMusicVolume(s.MusicVolume)
		SetSFXVolume(s.SFXVolume)
	}
	PlaySFX(e, cfg.SoundMenuSelect)
}

func toggleFullscreen(e *ecs.ECS, s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
	PlaySFX(e, cfg.SoundMenuSelect)
}

// closeSettings hides the overlay and queues the values for saving.
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	method := getOrCreateInput(e).LastInputMethod
	if settings.ShowingControls {
		drawControlsScreen(screen, method, width, height)
		return
	}

	face := fonts.Bold.Get()
	titleFace := fonts.Title.Get()
	text.Draw(screen, "SETTINGS", titleFace, centerTextX("SETTINGS", titleFace, width), 35, cfg.Menu.TitleColor)

	var visible []components.SettingsMenuOption
	for i, row := range settingsRows {
		if !row.isHidden(settings) {
			visible = append(visible, components.SettingsMenuOption(i))
		}
	}

	const rowHeight, rowGap = 24.0, 10.0
	startY := (height-float64(len(visible))*(rowHeight+rowGap))/2 + 10

	for i, opt := range visible {
		row := settingsRows[opt]
		baseline := int(startY + float64(i)*(rowHeight+rowGap) + rowHeight)

		textColor := cfg.Pause.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		text.Draw(screen, row.label, face, int(width/2)-120, baseline, textColor)

		if row.value == nil {
			continue
		}
		valueX := int(width/2) + 40
		if row.adjust == nil {
			valueX = int(width/2) + 100
		}
		text.Draw(screen, row.value(settings), face, valueX, baseline, textColor)
	}

	b := buttonsFor(method)
	hint := hintLine(b.Navigate, "Navigate", "Left/Right", "Change", b.Select, "Select", b.Back, "Back")
	hintFace := fonts.Small.Get()
	text.Draw(screen, hint, hintFace, centerTextX(hint, hintFace, width), int(height)-12, cfg.Pause.TextColorNormal)
}

func drawControlsScreen(screen *ebiten.Image, method components.InputMethod, width, height float64) {
	face := fonts.Bold.Get()
	titleFace := fonts.Title.Get()
	smallFace := fonts.Small.Get()

	text.Draw(screen, "CONTROLS", titleFace, centerTextX("CONTROLS", titleFace, width), 35, cfg.Menu.TitleColor)

	for i, m := range controlMappings(method) {
		y := 70 + i*22
		text.Draw(screen, m.Action, face, int(width/2)-100, y, cfg.Pause.TextColorNormal)
		text.Draw(screen, m.Button, face, int(width/2)+20, y, cfg.Pause.TextColorSelected)
	}

	hint := "Press any key to go back"
	if method != components.InputKeyboard {
		hint = "Press any button to go back"
	}
	text.Draw(screen, hint, smallFace, centerTextX(hint, smallFace, width), int(height)-12, cfg.Pause.TextColorNormal)
}

type controlMapping struct {
	Action string
	Button string
}

// controlMappings lists the bindings shown on the controls screen. The
// per-device button names come from the announcement labels so both
// screens always agree.
func controlMappings(method components.InputMethod) []controlMapping {
	labels := cfg.Message.KeyboardLabels
	move, aim, minimap, pause := "Arrow Keys / WASD", "Hold up / down", "M", "Esc / P"
	switch method {
	case components.InputPlayStation:
		labels = cfg.Message.PlayStationLabels
		move, minimap, pause = "Left Stick / D-Pad", "Share", "Options"
	case components.InputXbox:
		labels = cfg.Message.XboxLabels
		move, minimap, pause = "Left Stick / D-Pad", "Back", "Start"
	}

	jump, crossOver := labels["jump"], labels["switch"]
	if method == components.InputKeyboard {
		jump += " / Space"
		crossOver += " / Shift"
	}
	return []controlMapping{
		{"Move", move},
		{"Jump", jump},
		{"Attack", labels["attack"]},
		{"Cross Over", crossOver},
		{"Aim Talisman", aim},
		{"Drop Through", "Down + Jump"},
		{"Minimap", minimap},
		{"Pause", pause},
	}
}

// formatVolumeBar renders a volume as a ten segment bar.
func formatVolumeBar(volume float64) string {
	filled := max(0, min(10, int(volume*10)))
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100))
}

func formatToggle(on bool) string {
	if on {
		return "[X] On"
	}
	return "[ ] Off"
}

func controllerConnected() bool {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return true
		}
	}
	return false
}

// GetOrCreateSettingsMenu returns the settings singleton. A new one starts
// from the live audio values and whatever was saved last.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if ent, ok := components.SettingsMenu.First(e.World); ok {
		return components.SettingsMenu.Get(ent)
	}

	musicVol, sfxVol := GetMusicVolume(), GetSFXVolume()
	data := components.SettingsMenuData{
		SelectedOption:  components.SettingsOptMusicVolume,
		MusicVolume:     musicVol,
		SFXVolume:       sfxVol,
		Fullscreen:      ebiten.IsFullscreen(),
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		InputMode:       int(cfg.InputModeKeyboard),
		PreMuteMusicVol: musicVol,
		PreMuteSFXVol:   sfxVol,
	}
	if controllerConnected() {
		data.InputMode = int(cfg.InputModeController)
	}
	// The audio globals hold zero while muted, so the saved values win
	if saved := lastSavedSettings; saved != nil {
		data.Muted = saved.Muted
		data.ResolutionIndex = saved.ResolutionIndex
		data.InputMode = saved.InputMode
		if saved.Muted {
			data.MusicVolume, data.SFXVolume = saved.MusicVolume, saved.SFXVolume
			data.PreMuteMusicVol, data.PreMuteSFXVol = saved.MusicVolume, saved.SFXVolume
		}
	}

	ent := e.World.Entry(e.World.Create(components.SettingsMenu))
	components.SettingsMenu.SetValue(ent, data)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings shows the overlay on its first row.
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.SelectedOption = components.SettingsOptMusicVolume

	if !settings.Muted {
		settings.MusicVolume = GetMusicVolume()
		settings.SFXVolume = GetSFXVolume()
	}
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen reports whether the overlay is showing.
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}
