package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fonts"
	"github.com/lumenfx/lumen/tags"
)

// DrawElements renders sections, cards and the hero subtitle with every
// effect offset applied on top of the static page layout. Elements fully
// above or below the viewport are skipped.
func DrawElements(e *ecs.ECS, screen *ebiten.Image) {
	pageEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(pageEntry)
	height := float64(screen.Bounds().Dy())

	components.Element.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Counter) {
			return // stats render in DrawCounters
		}
		element := components.Element.Get(entry)

		x := element.X
		y := element.Y - scroll.Offset
		alpha := 1.0

		if entry.HasComponent(components.Parallax) {
			y += components.Parallax.Get(entry).Offset
		}
		if entry.HasComponent(components.Reveal) {
			reveal := components.Reveal.Get(entry)
			y += reveal.Offset
			alpha = reveal.Alpha
		}
		if entry.HasComponent(components.Magnetic) {
			magnetic := components.Magnetic.Get(entry)
			x += magnetic.Offset.X
			y += magnetic.Offset.Y
		}

		// Viewport culling
		if y+element.H < 0 || y > height || alpha <= 0 {
			return
		}

		if entry.HasComponent(tags.Card) {
			drawCard(entry, screen, x, y, alpha)
			return
		}
		drawTextBlock(entry, screen, x, y, alpha)
	})
}

func drawCard(entry *donburi.Entry, screen *ebiten.Image, x, y, alpha float64) {
	element := components.Element.Get(entry)

	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(element.W), float32(element.H),
		scaleAlpha(element.Fill, alpha), false)
	vector.StrokeRect(screen,
		float32(x), float32(y), float32(element.W), float32(element.H),
		1, scaleAlpha(config.CardEdge, alpha), false)

	// Tilt highlight follows the pointer inside the card
	if entry.HasComponent(components.Tilt) {
		tilt := components.Tilt.Get(entry)
		if tilt.Hovering || tilt.Shift.X != 0 || tilt.Shift.Y != 0 {
			hx := x + element.W/2 + tilt.Shift.X*2
			hy := y + element.H/2 + tilt.Shift.Y*2
			vector.DrawFilledCircle(screen,
				float32(hx), float32(hy), float32(element.W/3),
				scaleAlpha(config.AccentSoft, alpha*0.5), true)
		}
	}

	if face := fonts.Label.Get(); face != nil {
		text.Draw(screen, element.Title, face,
			int(x)+16, int(y)+30, scaleAlpha(config.Ink, alpha))
	}
	if face := fonts.Body.Get(); face != nil {
		text.Draw(screen, element.Body, face,
			int(x)+16, int(y)+52, scaleAlpha(config.InkDim, alpha))
	}
}

func drawTextBlock(entry *donburi.Entry, screen *ebiten.Image, x, y, alpha float64) {
	element := components.Element.Get(entry)

	if element.Title != "" && !entry.HasComponent(tags.Hero) {
		if face := fonts.Counter.Get(); face != nil {
			text.Draw(screen, element.Title, face,
				int(x), int(y)+24, scaleAlpha(config.Ink, alpha))
		}
	}
	if element.Body != "" {
		if face := fonts.Body.Get(); face != nil {
			text.Draw(screen, element.Body, face,
				int(x), int(y)+48, scaleAlpha(config.InkDim, alpha))
		}
	}
}
