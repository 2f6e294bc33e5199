package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fonts"
	"github.com/lumenfx/lumen/scenes"
	"github.com/lumenfx/lumen/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(settings *config.SavedSettings) *Game {
	fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 40)
	fonts.LoadFontWithSize(fonts.Counter, gobold.TTF, 26)
	fonts.LoadFontWithSize(fonts.Label, gobold.TTF, 14)
	fonts.LoadFontWithSize(fonts.Body, goregular.TTF, 13)

	return &Game{
		scene: scenes.NewShowcaseScene(settings),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Lumen")

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings, err := systems.LoadSettings()
	if err != nil || settings == nil {
		settings = config.DefaultSettings()
	}

	if err := ebiten.RunGame(NewGame(settings)); err != nil {
		log.Fatal(err)
	}
}
