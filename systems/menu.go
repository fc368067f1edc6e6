package systems

import (
	"fmt"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/automoto/exorcist/assets"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Level picked on the main menu, kept across menu scenes
var lastLevelIndex int

// NewUpdateMenu builds the main menu system. Start hands a world scene for
// the selected level to sceneChanger.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func(levelIndex int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			return
		}
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)
		if len(menu.VisibleOptions) == 0 {
			return
		}

		if step := menuStep(input); step != 0 {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = wrapIndex(menu.SelectedIndex+step, len(menu.VisibleOptions))
		}

		option := menu.VisibleOptions[menu.SelectedIndex]
		if option == components.MainMenuLevel {
			dir := 0
			if GetAction(input, cfg.ActionMenuLeft).JustPressed {
				dir--
			}
			if GetAction(input, cfg.ActionMenuRight).JustPressed {
				dir++
			}
			if dir != 0 {
				PlaySFX(e, cfg.SoundMenuNavigate)
				cycleLevel(menu, dir)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			quitGame()
		}
		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		PlaySFX(e, cfg.SoundMenuSelect)
		switch option {
		case components.MainMenuStart:
			FadeOutMusic(e)
			sceneChanger.ChangeScene(createWorldScene(menu.LevelIndex))
		case components.MainMenuLevel:
			cycleLevel(menu, 1)
		case components.MainMenuSettings:
			OpenSettings(e, false)
		case components.MainMenuExit:
			quitGame()
		}
	}
}

// cycleLevel moves the level selection by dir, wrapping at both ends.
func cycleLevel(menu *components.MenuData, dir int) {
	menu.LevelIndex = wrapIndex(menu.LevelIndex+dir, len(menu.Levels))
	lastLevelIndex = menu.LevelIndex
}

// levelTitle turns a level file name such as "02_belfry" into "Belfry".
func levelTitle(name string) string {
	trimmed := strings.TrimLeftFunc(name, unicode.IsDigit)
	words := strings.FieldsFunc(trimmed, func(r rune) bool { return r == '_' || r == '-' })
	if len(words) == 0 {
		return name
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func mainMenuLabel(menu *components.MenuData, opt components.MainMenuOption) string {
	if opt == components.MainMenuLevel && len(menu.Levels) > 0 {
		return fmt.Sprintf("Level: < %s >", menu.Levels[menu.LevelIndex])
	}
	return mainMenuLabels[opt]
}

// quitGame flushes pending saves before exiting.
func quitGame() {
	ShutdownPersistence()
	os.Exit(0)
}

// DrawMenu renders the title, options and best run.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFace := fonts.Title.Get()
	text.Draw(screen, "EXORCIST", titleFace, centerTextX("EXORCIST", titleFace, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	labels := make([]string, len(menu.VisibleOptions))
	for i, opt := range menu.VisibleOptions {
		labels[i] = mainMenuLabel(menu, opt)
	}
	optionList{
		Options:    labels,
		Selected:   menu.SelectedIndex,
		StartY:     cfg.Menu.MenuStartY,
		ItemHeight: cfg.Menu.MenuItemHeight,
		Gap:        cfg.Menu.MenuItemGap,
		Normal:     cfg.Menu.TextColorNormal,
		Highlight:  cfg.Menu.TextColorSelected,
	}.draw(screen, fonts.Bold.Get())

	small := fonts.Small.Get()
	if menu.BestRun != "" {
		text.Draw(screen, menu.BestRun, small, centerTextX(menu.BestRun, small, width), int(height)-32, cfg.Menu.TitleColor)
	}

	b := buttonsFor(getOrCreateInput(e).LastInputMethod)
	hint := hintLine(b.Navigate, "Navigate", b.Select, "Select")
	text.Draw(screen, hint, small, centerTextX(hint, small, width), int(height)-12, cfg.Menu.TextColorNormal)
}

var mainMenuLabels = map[components.MainMenuOption]string{
	components.MainMenuStart:    "Start",
	components.MainMenuLevel:    "Level",
	components.MainMenuSettings: "Settings",
	components.MainMenuExit:     "Exit",
}

// GetOrCreateMenu returns the menu singleton, reading the best run from
// the saved history and the level list when it is created.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if ent, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(ent)
	}
	levels, err := assets.NewLevelLoader().LoadLevels()
	if err != nil {
		log.Printf("Warning: Could not list levels: %v", err)
	}
	data := newMenuData(levels)
	if best, ok := BestRun(LoadRuns()); ok {
		data.BestRun = FormatRun(best)
	}
	ent := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(ent, data)
	return components.Menu.Get(ent)
}

// newMenuData lists the main menu options. The level row only shows when
// there is more than one level to pick from.
func newMenuData(levels []assets.Level) components.MenuData {
	data := components.MenuData{
		VisibleOptions: []components.MainMenuOption{components.MainMenuStart},
	}
	for _, l := range levels {
		data.Levels = append(data.Levels, levelTitle(l.Name))
	}
	if len(data.Levels) > 1 {
		data.VisibleOptions = append(data.VisibleOptions, components.MainMenuLevel)
		data.LevelIndex = wrapIndex(lastLevelIndex, len(data.Levels))
	}
	data.VisibleOptions = append(data.VisibleOptions, components.MainMenuSettings, components.MainMenuExit)
	return data
}
