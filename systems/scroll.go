package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fxmath"
)

// UpdateScroll reads wheel and key input into the scroll target, then eases
// the offset toward it. The smoothed delta is what the header and cursor
// suppression consume.
func UpdateScroll(e *ecs.ECS) {
	pageEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(pageEntry)
	vp := components.Viewport.Get(pageEntry)

	_, wheelY := ebiten.Wheel()
	scroll.Target -= wheelY * config.Scroll.WheelSpeed

	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		scroll.Target += 8
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		scroll.Target -= 8
	}
	if ebiten.IsKeyPressed(ebiten.KeyHome) {
		scroll.Target = 0
	}

	AdvanceScroll(scroll, config.C.PageHeight-float64(vp.Height))
}

// AdvanceScroll clamps the target and eases the offset one frame.
func AdvanceScroll(scroll *components.ScrollData, maxOffset float64) {
	if maxOffset < 0 {
		maxOffset = 0
	}
	scroll.Target = fxmath.Clamp(scroll.Target, 0, maxOffset)

	previous := scroll.Offset
	scroll.Offset = fxmath.Lerp(scroll.Offset, scroll.Target, config.Scroll.Smoothing)
	scroll.Delta = scroll.Offset - previous
}
