package systems

import (
	"strings"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for announcement rendering (lazy initialized)
var announcementFontFace font.Face

// Announce shows message at the top of the screen. {switch}, {attack} and
// {jump} are replaced with the button of the last used input method.
func Announce(ecs *ecs.ECS, message string) {
	entry, ok := components.Announcement.First(ecs.World)
	if !ok {
		return
	}
	a := components.Announcement.Get(entry)
	a.Text = message
	a.DisplayTimer = cfg.Message.DisplayDuration
}

func UpdateAnnouncement(ecs *ecs.ECS) {
	entry, ok := components.Announcement.First(ecs.World)
	if !ok {
		return
	}
	a := components.Announcement.Get(entry)
	if a.DisplayTimer > 0 {
		a.DisplayTimer--
		if a.DisplayTimer == 0 {
			a.Text = ""
		}
	}
}

// DrawAnnouncement renders the active announcement at the top center of
// the screen.
func DrawAnnouncement(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Announcement.First(ecs.World)
	if !ok {
		return
	}
	a := components.Announcement.Get(entry)
	if a.DisplayTimer <= 0 || a.Text == "" {
		return
	}

	resolvedText := resolvePlaceholders(a.Text, getOrCreateInput(ecs).LastInputMethod)

	if announcementFontFace == nil {
		announcementFontFace = fonts.Bold.Get()
	}

	bounds := text.BoundString(announcementFontFace, resolvedText) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, resolvedText, announcementFontFace, textX, textY, cfg.Message.TextColor) //nolint:staticcheck
}

// resolvePlaceholders replaces {placeholder} tokens with input-specific labels
func resolvePlaceholders(message string, inputMethod components.InputMethod) string {
	var labels map[string]string

	switch inputMethod {
	case components.InputPlayStation:
		labels = cfg.Message.PlayStationLabels
	case components.InputXbox:
		labels = cfg.Message.XboxLabels
	default:
		labels = cfg.Message.KeyboardLabels
	}

	result := message
	for placeholder, label := range labels {
		result = strings.ReplaceAll(result, "{"+placeholder+"}", label)
	}
	return result
}
