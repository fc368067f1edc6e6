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

// NewUpdateGameOver builds the game over menu system: Retry starts a new
// run, Main Menu returns to the title.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		if step := menuStep(input); step != 0 {
			PlaySFX(e, cfg.SoundMenuNavigate)
			n := int(components.GameOverMenu) + 1
			gameOver.SelectedOption = components.GameOverOption(wrapIndex(int(gameOver.SelectedOption)+step, n))
		}

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		PlaySFX(e, cfg.SoundMenuSelect)
		switch gameOver.SelectedOption {
		case components.GameOverRetry:
			sceneChanger.ChangeScene(createWorldScene())
		case components.GameOverMenu:
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawGameOver renders the result, the run summary and the menu.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	titleFace := fonts.Title.Get()
	title, titleColor := "YOU DIED", cfg.GameOver.LoseColor
	if gameOver.Won {
		title, titleColor = "EXORCISED", cfg.GameOver.WinColor
	}
	text.Draw(screen, title, titleFace, centerTextX(title, titleFace, width), int(cfg.GameOver.TitleY), titleColor)

	body := fonts.Body.Get()
	for i, line := range gameOverLines(gameOver) {
		text.Draw(screen, line, body, centerTextX(line, body, width), int(cfg.GameOver.StatsY)+i*14, cfg.GameOver.TextColorNormal)
	}

	optionList{
		Options:    cfg.GameOver.MenuOptions,
		Selected:   int(gameOver.SelectedOption),
		StartY:     cfg.GameOver.MenuStartY,
		ItemHeight: cfg.GameOver.MenuItemHeight,
		Gap:        cfg.GameOver.MenuItemGap,
		Normal:     cfg.GameOver.TextColorNormal,
		Highlight:  cfg.GameOver.TextColorSelected,
	}.draw(screen, fonts.Bold.Get())

	b := buttonsFor(getOrCreateInput(e).LastInputMethod)
	hint := hintLine(b.Navigate, "Navigate", b.Select, "Select")
	small := fonts.Small.Get()
	text.Draw(screen, hint, small, centerTextX(hint, small, width), int(height)-12, cfg.GameOver.TextColorNormal)
}

// gameOverLines is the run summary under the title.
func gameOverLines(g *components.GameOverData) []string {
	seconds := g.Stats.Frames / 60
	return []string{
		fmt.Sprintf("Wave %d   Time %d:%02d", g.Waves, seconds/60, seconds%60),
		fmt.Sprintf("Kills %d   Damage taken %d   Switches %d", g.Stats.Kills, g.Stats.DamageTaken, g.Stats.Switches),
		fmt.Sprintf("Living Lv %d (%d xp)   Spirit Lv %d (%d xp)",
			g.Levels[1], g.Stats.XP[1], g.Levels[0], g.Stats.XP[0]),
	}
}

// GetOrCreateGameOver returns the game over singleton with Retry
// selected.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if ent, ok := components.GameOver.First(e.World); ok {
		return components.GameOver.Get(ent)
	}
	ent := e.World.Entry(e.World.Create(components.GameOver))
	components.GameOver.SetValue(ent, components.GameOverData{SelectedOption: components.GameOverRetry})
	return components.GameOver.Get(ent)
}
