package systems

import (
	"image/color"
	"strings"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// deviceButtons names the menu buttons of one input device for hints.
type deviceButtons struct {
	Navigate string
	Select   string
	Back     string
	Pause    string
}

var buttonNames = map[components.InputMethod]deviceButtons{
	components.InputKeyboard:    {Navigate: "Arrows", Select: "Enter", Back: "Esc", Pause: "Esc"},
	components.InputXbox:        {Navigate: "Left Stick/D-Pad", Select: "A", Back: "B", Pause: "Start"},
	components.InputPlayStation: {Navigate: "Left Stick/D-Pad", Select: "Cross", Back: "Circle", Pause: "Options"},
}

func buttonsFor(method components.InputMethod) deviceButtons {
	if b, ok := buttonNames[method]; ok {
		return b
	}
	return buttonNames[components.InputKeyboard]
}

// hintLine joins "button: action" pairs the way every menu footer shows
// them.
func hintLine(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, pairs[i]+": "+pairs[i+1])
	}
	return strings.Join(parts, "   ")
}

// menuStep reads up/down as -1/+1.
func menuStep(input *components.InputData) int {
	switch {
	case GetAction(input, cfg.ActionMenuUp).JustPressed:
		return -1
	case GetAction(input, cfg.ActionMenuDown).JustPressed:
		return 1
	}
	return 0
}

// optionList is a vertical list of centered menu entries.
type optionList struct {
	Options    []string
	Selected   int
	StartY     float64
	ItemHeight float64
	Gap        float64
	Normal     color.RGBA
	Highlight  color.RGBA
}

func (l optionList) draw(screen *ebiten.Image, face font.Face) {
	width := float64(screen.Bounds().Dx())
	for i, option := range l.Options {
		y := l.StartY + float64(i)*(l.ItemHeight+l.Gap)
		c := l.Normal
		if i == l.Selected {
			c = l.Highlight
		}
		text.Draw(screen, option, face, centerTextX(option, face, width), int(y+l.ItemHeight), c)
	}
}

// centerTextX returns the x that centers s on a screen of the given width.
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
