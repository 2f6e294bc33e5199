package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fonts"
	"github.com/lumenfx/lumen/fxmath"
)

// UpdateHeader hides the top bar while scrolling down past the threshold
// and brings it back on any upward scroll, easing between the two states.
func UpdateHeader(e *ecs.ECS) {
	headerEntry, ok := components.Header.First(e.World)
	if !ok {
		return
	}
	header := components.Header.Get(headerEntry)

	pageEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(pageEntry)

	if scroll.Delta > scrollActivityThreshold && scroll.Offset > config.Header.HideThreshold {
		header.Hidden = true
	} else if scroll.Delta < -scrollActivityThreshold || scroll.Offset <= config.Header.HideThreshold {
		header.Hidden = false
	}

	target := 0.0
	if header.Hidden {
		target = -config.Header.Height
	}
	header.Offset = fxmath.Lerp(header.Offset, target, config.Header.Smoothing)
}

// DrawHeader renders the bar, wordmark and burger at the current slide
// offset.
func DrawHeader(e *ecs.ECS, screen *ebiten.Image) {
	headerEntry, ok := components.Header.First(e.World)
	if !ok {
		return
	}
	header := components.Header.Get(headerEntry)

	width := float32(screen.Bounds().Dx())
	y := float32(header.Offset)
	height := float32(config.Header.Height)

	vector.DrawFilledRect(screen, 0, y, width, height, config.HeaderFill, false)
	vector.StrokeLine(screen, 0, y+height, width, y+height, 1, config.CardEdge, false)

	if face := fonts.Title.Get(); face != nil {
		text.Draw(screen, "LUMEN", face, 24, int(y)+36, config.Ink)
	}

	// Burger icon doubles as the menu hit area
	burgerX := width - 44
	for i := 0; i < 3; i++ {
		lineY := y + 22 + float32(i)*6
		vector.DrawFilledRect(screen, burgerX, lineY, 22, 2, config.Ink, false)
	}
}
