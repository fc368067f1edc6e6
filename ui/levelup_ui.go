package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/fonts"
	"github.com/automoto/exorcist/leveling"
	"github.com/automoto/exorcist/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// LevelUpUI shows the upgrade cards while a level-up offer is open.
// Keyboard and gamepad selection is handled by systems.UpdateLeveling; the
// cards follow the selection and can also be clicked.
type LevelUpUI struct {
	UI *ebitenui.UI

	// key of the offer the widgets were built for
	built string

	titleFace text.Face
	nameFace  text.Face
	smallFace text.Face
}

// NewLevelUpUI creates an empty level-up screen.
func NewLevelUpUI() *LevelUpUI {
	return &LevelUpUI{
		titleFace: fonts.GoTextFace(18, true),
		nameFace:  fonts.GoTextFace(12, true),
		smallFace: fonts.GoTextFace(10, false),
	}
}

// Update rebuilds the cards when the offer or selection changes and
// forwards mouse input to them.
func (l *LevelUpUI) Update(e *ecs.ECS) {
	p := currentProgress(e)
	if p == nil || !p.Choosing() {
		l.built = ""
		l.UI = nil
		return
	}

	if key := offerKey(p); key != l.built {
		l.build(e, p)
		l.built = key
	}
	l.UI.Update()
}

// Draw renders the cards over the paused world.
func (l *LevelUpUI) Draw(e *ecs.ECS, screen *ebiten.Image) {
	if l.UI == nil {
		return
	}
	l.UI.Draw(screen)
}

func currentProgress(e *ecs.ECS) *components.ProgressData {
	entry, ok := components.Progress.First(e.World)
	if !ok {
		return nil
	}
	return components.Progress.Get(entry)
}

// offerKey identifies an offer and its highlighted card.
func offerKey(p *components.ProgressData) string {
	ids := make([]string, len(p.Offer))
	for i, u := range p.Offer {
		ids[i] = u.ID
	}
	return fmt.Sprintf("%d|%d|%s", p.OfferTrack, p.Selected, strings.Join(ids, ","))
}

func (l *LevelUpUI) build(e *ecs.ECS, p *components.ProgressData) {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 170})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	trackColor := cfg.Reality.Colors[p.OfferTrack]
	title := fmt.Sprintf("LEVEL UP - %s %d", cfg.Reality.Names[p.OfferTrack], p.Tracks[p.OfferTrack].Level)
	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &l.titleFace, &widget.LabelColor{Idle: trackColor}),
	))

	cards := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	for i, u := range p.Offer {
		cards.AddChild(l.card(e, i, u, p.Owned[u.ID], i == p.Selected, trackColor))
	}
	content.AddChild(cards)

	pending := len(p.Pending)
	if pending > 0 {
		content.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(fmt.Sprintf("%d more to choose", pending), &l.smallFace, &widget.LabelColor{
				Idle: color.RGBA{200, 200, 200, 255},
			}),
		))
	}

	root.AddChild(content)
	l.UI = &ebitenui.UI{Container: root}
}

func (l *LevelUpUI) card(e *ecs.ECS, index int, u leveling.Upgrade, owned int, selected bool, accent color.RGBA) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(150, 90),
		),
		widget.ButtonOpts.Image(cardImage(selected, accent)),
		widget.ButtonOpts.Text(cardText(u, owned), &l.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.PickUpgrade(e, index)
		}),
	)
}

// cardText is the name, the level the pick leads to and the description.
func cardText(u leveling.Upgrade, owned int) string {
	level := "New"
	if owned > 0 {
		level = fmt.Sprintf("Lv %d -> %d", owned, owned+1)
	}
	return fmt.Sprintf("%s\n%s\n\n%s", u.Name, level, u.Description)
}

func cardImage(selected bool, accent color.RGBA) *widget.ButtonImage {
	idle := color.RGBA{40, 40, 60, 255}
	if selected {
		idle = color.RGBA{accent.R / 3, accent.G / 3, accent.B / 3, 255}
	}
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(color.RGBA{70, 70, 95, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 30, 45, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
