package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
)

func spawnTestCard(e *ecs.ECS, x, y, w, h float64) *donburiCard {
	entry := archetypes.Card.Spawn(e)
	components.Element.Set(entry, &components.ElementData{X: x, Y: y, W: w, H: h})
	components.Reveal.Set(entry, &components.RevealData{})
	components.Parallax.Set(entry, &components.ParallaxData{Speed: config.Parallax.CardSpeed})
	components.Magnetic.Set(entry, &components.MagneticData{})
	components.Tilt.Set(entry, &components.TiltData{})
	return &donburiCard{
		Element:  components.Element.Get(entry),
		Magnetic: components.Magnetic.Get(entry),
		Tilt:     components.Tilt.Get(entry),
		Parallax: components.Parallax.Get(entry),
	}
}

type donburiCard struct {
	Element  *components.ElementData
	Magnetic *components.MagneticData
	Tilt     *components.TiltData
	Parallax *components.ParallaxData
}

func TestMagneticPullsTowardPointer(t *testing.T) {
	e := newPageECS()
	card := spawnTestCard(e, 100, 100, 120, 80) // center (160, 140)
	spawnTestPointer(e, 180, 150, true)

	for i := 0; i < 90; i++ {
		UpdateMagnetic(e)
	}

	if !card.Magnetic.Active {
		t.Fatal("pointer within pull radius but magnet inactive")
	}
	wantX := (180.0 - 160.0) * config.Magnetic.Strength
	wantY := (150.0 - 140.0) * config.Magnetic.Strength
	if math.Abs(card.Magnetic.Offset.X-wantX) > 0.1 {
		t.Fatalf("offset X = %f, want near %f", card.Magnetic.Offset.X, wantX)
	}
	if math.Abs(card.Magnetic.Offset.Y-wantY) > 0.1 {
		t.Fatalf("offset Y = %f, want near %f", card.Magnetic.Offset.Y, wantY)
	}
}

func TestMagneticReleasesOutsideRadius(t *testing.T) {
	e := newPageECS()
	card := spawnTestCard(e, 100, 100, 120, 80)
	ptr := spawnTestPointer(e, 180, 150, true)

	for i := 0; i < 60; i++ {
		UpdateMagnetic(e)
	}
	if card.Magnetic.Offset.X == 0 {
		t.Fatal("expected a pulled offset before release")
	}

	ptr.X, ptr.Y = 600, 450
	for i := 0; i < 120; i++ {
		UpdateMagnetic(e)
	}

	if card.Magnetic.Active {
		t.Fatal("magnet still active with pointer far away")
	}
	if math.Abs(card.Magnetic.Offset.X) > 0.01 || math.Abs(card.Magnetic.Offset.Y) > 0.01 {
		t.Fatalf("offset did not settle back to rest: (%f, %f)",
			card.Magnetic.Offset.X, card.Magnetic.Offset.Y)
	}
}

func TestMagneticComparesInScreenSpace(t *testing.T) {
	e := newPageECS()
	// Page-space center (160, 1040); at scroll 900 it sits at screen y 140.
	card := spawnTestCard(e, 100, 1000, 120, 80)
	spawnTestPointer(e, 160, 140, true)
	pageScroll(e).Offset = 900

	UpdateMagnetic(e)

	if !card.Magnetic.Active {
		t.Fatal("scrolled card under the pointer did not engage")
	}
}

func TestMagneticIgnoresPointerOutsideWindow(t *testing.T) {
	e := newPageECS()
	card := spawnTestCard(e, 100, 100, 120, 80)
	spawnTestPointer(e, 160, 140, false)

	UpdateMagnetic(e)

	if card.Magnetic.Active {
		t.Fatal("magnet engaged with the pointer outside the window")
	}
}
