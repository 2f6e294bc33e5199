package systems

import (
	"testing"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
)

func TestParallaxLagsScroll(t *testing.T) {
	e := newPageECS()
	card := spawnTestCard(e, 100, 800, 200, 100)

	pageScroll(e).Offset = 500
	UpdateParallax(e)

	// Positive offset cancels part of the scroll shift, so the element
	// moves slower than the page.
	want := 500 * config.Parallax.CardSpeed
	if card.Parallax.Offset != want {
		t.Fatalf("parallax offset = %f, want %f", card.Parallax.Offset, want)
	}
}

func TestParallaxRestsAtTop(t *testing.T) {
	e := newPageECS()
	card := spawnTestCard(e, 100, 800, 200, 100)

	pageScroll(e).Offset = 500
	UpdateParallax(e)
	pageScroll(e).Offset = 0
	UpdateParallax(e)

	if card.Parallax.Offset != 0 {
		t.Fatalf("parallax offset = %f at scroll top, want 0", card.Parallax.Offset)
	}
}

// The hero subtitle and the per-glyph heading must drift at the same rate;
// if their conventions ever disagree again the subtitle climbs above its
// own heading within a few frames of scrolling.
func TestHeroSubtitleStaysBelowHeading(t *testing.T) {
	e := newPageECS()
	hero := archetypes.Hero.Spawn(e)
	components.Element.Set(hero, &components.ElementData{X: 80, Y: 250, W: 800, H: 80})
	components.Parallax.SetValue(hero, components.ParallaxData{Speed: config.Parallax.HeroSpeed})
	components.Reveal.Set(hero, &components.RevealData{})
	element := components.Element.Get(hero)
	parallax := components.Parallax.Get(hero)

	const headingY = 220.0
	for _, offset := range []float64{0, 44, 100, 400, 1000} {
		pageScroll(e).Offset = offset
		UpdateParallax(e)

		// Same compositions the two renderers apply.
		subtitleY := element.Y - offset + parallax.Offset
		letterY := headingY - offset*(1-config.Parallax.HeroSpeed)
		if subtitleY <= letterY {
			t.Fatalf("scroll %f: subtitle at y %f crossed above heading at y %f",
				offset, subtitleY, letterY)
		}
	}
}
