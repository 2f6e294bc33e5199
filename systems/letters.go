package systems

import (
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

// UpdateLetters advances the staggered rise/fade of the split hero heading.
// Each letter waits out its delay, then tweens once.
func UpdateLetters(e *ecs.ECS) {
	components.Letter.Each(e.World, func(entry *donburi.Entry) {
		letter := components.Letter.Get(entry)
		if letter.Done {
			return
		}

		if letter.DelayTicks > 0 {
			letter.DelayTicks--
			return
		}

		if letter.Tween == nil {
			letter.Tween = gween.New(0, 1, config.Letter.Duration, ease.OutCubic)
		}
		progress, finished := letter.Tween.Update(tickSeconds)
		letter.Alpha = float64(progress)
		letter.Rise = (1 - float64(progress)) * config.Letter.Rise
		if finished {
			letter.Alpha = 1
			letter.Rise = 0
			letter.Done = true
		}
	})
}

// DrawLetters renders the hero heading glyph by glyph with each letter's
// own rise and alpha. Parallax on the hero is applied by the caller's
// scroll offset, letters keep page-space positions.
func DrawLetters(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Title.Get()
	if face == nil {
		return
	}

	scrollOffset := 0.0
	parallaxSpeed := 0.0
	if pageEntry, ok := components.Scroll.First(e.World); ok {
		scrollOffset = components.Scroll.Get(pageEntry).Offset
		parallaxSpeed = config.Parallax.HeroSpeed
	}

	components.Letter.Each(e.World, func(entry *donburi.Entry) {
		letter := components.Letter.Get(entry)
		if letter.Alpha <= 0 {
			return
		}
		y := letter.Y - scrollOffset*(1-parallaxSpeed) + letter.Rise
		text.Draw(screen, letter.Char, face,
			int(letter.X), int(y),
			scaleAlpha(config.Ink, letter.Alpha))
	})
}
