package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/fonts"
	"github.com/automoto/exorcist/scenes"
	"github.com/automoto/exorcist/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "exorcist.yaml", "optional YAML config overlay")
	skipMenu := flag.Bool("skipmenu", false, "start a run immediately")
	watch := flag.Bool("watch", false, "reload tuning files when they change on disk")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}
	if *watch {
		config.Debug.WatchTuning = true
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	defer systems.ShutdownPersistence()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if config.Debug.WatchTuning {
		if err := systems.StartTuningWatch(); err != nil {
			log.Printf("Warning: Could not watch tuning files: %v", err)
		}
		defer systems.StopTuningWatch()
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
