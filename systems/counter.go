package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fonts"
)

// UpdateCounters starts each stat counter once its element has revealed and
// advances the count-up tween. Values never decrease and land exactly on
// the target.
func UpdateCounters(e *ecs.ECS) {
	components.Counter.Each(e.World, func(entry *donburi.Entry) {
		counter := components.Counter.Get(entry)
		if counter.Done {
			return
		}

		if !counter.Started {
			reveal := components.Reveal.Get(entry)
			if !reveal.Triggered {
				return
			}
			counter.Tween = gween.New(0, float32(counter.Target), config.Counter.Duration, ease.OutQuad)
			counter.Started = true
		}

		value, finished := counter.Tween.Update(tickSeconds)
		counter.Value = float64(value)
		if finished {
			counter.Value = counter.Target
			counter.Done = true
		}
	})
}

// DrawCounters renders each stat value over its element. Skips silently
// when the counter face failed to load.
func DrawCounters(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Counter.Get()
	if face == nil {
		return
	}
	labelFace := fonts.Label.Get()

	scrollOffset := 0.0
	if pageEntry, ok := components.Scroll.First(e.World); ok {
		scrollOffset = components.Scroll.Get(pageEntry).Offset
	}

	components.Counter.Each(e.World, func(entry *donburi.Entry) {
		counter := components.Counter.Get(entry)
		element := components.Element.Get(entry)
		reveal := components.Reveal.Get(entry)
		if reveal.Alpha <= 0 {
			return
		}

		y := element.Y - scrollOffset + reveal.Offset
		value := fmt.Sprintf("%.0f%s", counter.Value, counter.Suffix)
		text.Draw(screen, value, face,
			int(element.X), int(y)+28,
			scaleAlpha(config.Accent, reveal.Alpha))
		if labelFace != nil {
			text.Draw(screen, element.Title, labelFace,
				int(element.X), int(y)+48,
				scaleAlpha(config.InkDim, reveal.Alpha))
		}
	})
}
