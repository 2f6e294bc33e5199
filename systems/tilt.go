package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fxmath"
)

// UpdateTilt maps the pointer position inside a card to a smoothed
// highlight shift, decaying back to center when the pointer leaves. Render
// state only; the card rect itself never moves.
func UpdateTilt(e *ecs.ECS) {
	ptrEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(ptrEntry)

	scrollOffset := 0.0
	if pageEntry, ok := components.Scroll.First(e.World); ok {
		scrollOffset = components.Scroll.Get(pageEntry).Offset
	}

	components.Tilt.Each(e.World, func(entry *donburi.Entry) {
		tilt := components.Tilt.Get(entry)
		element := components.Element.Get(entry)

		screenY := element.Y - scrollOffset
		inside := ptr.HasSample && ptr.Inside &&
			ptr.X >= element.X && ptr.X <= element.X+element.W &&
			ptr.Y >= screenY && ptr.Y <= screenY+element.H
		tilt.Hovering = inside

		targetX, targetY := 0.0, 0.0
		if inside {
			// -1..1 across the card, scaled to the shift limit
			relX := (ptr.X-element.X)/element.W*2 - 1
			relY := (ptr.Y-screenY)/element.H*2 - 1
			targetX = relX * config.Tilt.MaxShift
			targetY = relY * config.Tilt.MaxShift
		}
		tilt.Shift.X = fxmath.Lerp(tilt.Shift.X, targetX, config.Tilt.Smoothing)
		tilt.Shift.Y = fxmath.Lerp(tilt.Shift.Y, targetY, config.Tilt.Smoothing)
	})
}
