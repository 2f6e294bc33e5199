package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	cfg "github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fonts"
	"github.com/lumenfx/lumen/tags"
)

// CreateSpace builds the resolv space covering the whole scrollable page
// and the pointer probe object used for hover hit testing.
func CreateSpace(e *ecs.ECS) *resolv.Space {
	space := resolv.NewSpace(cfg.C.Width, int(cfg.C.PageHeight), 16, 16)
	spaceEntry := archetypes.Space.Spawn(e)
	components.Space.Set(spaceEntry, &components.SpaceData{Space: space})

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	space.Add(probe)
	pointerEntry := archetypes.Pointer.Spawn(e)
	components.Pointer.Set(pointerEntry, &components.PointerData{})
	components.Object.SetValue(pointerEntry, components.ObjectData{Object: probe})

	return space
}

// CreatePage lays out the whole showcase page: scroll model, chrome
// (header, menu, transition) and the content elements every effect system
// operates on.
func CreatePage(e *ecs.ECS, space *resolv.Space) {
	pageEntry := archetypes.Page.Spawn(e)
	components.Scroll.Set(pageEntry, &components.ScrollData{})
	components.Viewport.Set(pageEntry, &components.ViewportData{
		Width:  cfg.C.Width,
		Height: cfg.C.Height,
	})

	headerEntry := archetypes.Header.Spawn(e)
	components.Header.Set(headerEntry, &components.HeaderData{})

	menuEntry := archetypes.Menu.Spawn(e)
	components.Menu.Set(menuEntry, &components.MenuData{})

	transitionEntry := archetypes.Transition.Spawn(e)
	components.Transition.Set(transitionEntry, &components.TransitionData{Alpha: 1})

	createHero(e)
	createSections(e)
	createCards(e, space)
	createStats(e)
}

func createHero(e *ecs.ECS) {
	hero := archetypes.Hero.Spawn(e)
	components.Element.Set(hero, &components.ElementData{
		Title: "CRAFTED LIGHT",
		Body:  "Design studio for luminous interfaces",
		X:     80, Y: 250, W: 800, H: 80,
	})
	components.Parallax.SetValue(hero, components.ParallaxData{Speed: cfg.Parallax.HeroSpeed})
	components.Reveal.Set(hero, &components.RevealData{})

	createLetters(e, "CRAFTED LIGHT", 80, 220)
}

// createLetters splits the heading into per-glyph entities with staggered
// delays, positioned by the title face's advances. No face, no letters.
func createLetters(e *ecs.ECS, heading string, x, y float64) {
	face := fonts.Title.Get()
	if face == nil {
		return
	}

	penX := x
	for i, r := range heading {
		char := string(r)
		letter := archetypes.Letter.Spawn(e)
		components.Letter.Set(letter, &components.LetterData{
			Char:       char,
			X:          penX,
			Y:          y,
			DelayTicks: i * cfg.Letter.StaggerTicks,
		})
		penX += float64(font.MeasureString(face, char).Round())
	}
}

func createSections(e *ecs.ECS) {
	work := archetypes.Section.Spawn(e)
	components.Element.Set(work, &components.ElementData{
		Title: "Selected Work",
		Body:  "A few projects we keep coming back to.",
		X:     80, Y: 620, W: 800, H: 60,
	})
	components.Reveal.Set(work, &components.RevealData{})

	about := archetypes.Section.Spawn(e)
	components.Element.Set(about, &components.ElementData{
		Title: "Studio",
		Body:  "Small team, strong opinions about motion.",
		X:     80, Y: 1380, W: 800, H: 60,
	})
	components.Reveal.Set(about, &components.RevealData{})
}

func createCards(e *ecs.ECS, space *resolv.Space) {
	cards := []struct {
		title, body string
		x, y, w, h  float64
	}{
		{"Aurora", "Realtime brand site", 80, 740, 250, 160},
		{"Tidepool", "Interactive annual report", 355, 740, 250, 160},
		{"Mesa", "Product launch film", 630, 740, 250, 160},
		{"Drift", "Generative identity system", 80, 1040, 385, 180},
		{"Ember", "Spatial audio installation", 495, 1040, 385, 180},
	}

	for i, c := range cards {
		entry := archetypes.Card.Spawn(e)
		components.Element.Set(entry, &components.ElementData{
			Title: c.title,
			Body:  c.body,
			X:     c.x, Y: c.y, W: c.w, H: c.h,
			Fill: cfg.CardFill,
		})
		components.Reveal.Set(entry, &components.RevealData{
			DelayTicks: (i % 3) * cfg.Reveal.StaggerTicks,
		})
		components.Parallax.SetValue(entry, components.ParallaxData{Speed: cfg.Parallax.CardSpeed})
		components.Magnetic.Set(entry, &components.MagneticData{})
		components.Tilt.Set(entry, &components.TiltData{})

		obj := resolv.NewObject(c.x, c.y, c.w, c.h, tags.ResolvInteractive)
		obj.Data = entry
		space.Add(obj)
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
	}
}

func createStats(e *ecs.ECS) {
	stats := []struct {
		label, suffix string
		target        float64
		x             float64
	}{
		{"projects shipped", "", 42, 80},
		{"design awards", "", 12, 355},
		{"client retention", "%", 98, 630},
	}

	for i, s := range stats {
		entry := archetypes.Stat.Spawn(e)
		components.Element.Set(entry, &components.ElementData{
			Title: s.label,
			X:     s.x, Y: 1500, W: 250, H: 60,
		})
		components.Reveal.Set(entry, &components.RevealData{
			DelayTicks: i * cfg.Reveal.StaggerTicks,
		})
		components.Counter.Set(entry, &components.CounterData{
			Target: s.target,
			Suffix: s.suffix,
		})
	}
}
