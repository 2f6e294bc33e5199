package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fxmath"
)

// UpdateMagnetic eases interactive cards toward a nearby pointer and back
// to rest once it leaves the pull radius. Positions are compared in screen
// space, so the current scroll offset is applied to each card center.
func UpdateMagnetic(e *ecs.ECS) {
	ptrEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(ptrEntry)

	scrollOffset := 0.0
	if pageEntry, ok := components.Scroll.First(e.World); ok {
		scrollOffset = components.Scroll.Get(pageEntry).Offset
	}

	components.Magnetic.Each(e.World, func(entry *donburi.Entry) {
		magnetic := components.Magnetic.Get(entry)
		element := components.Element.Get(entry)

		centerX := element.X + element.W/2
		centerY := element.Y + element.H/2 - scrollOffset

		pull := false
		if ptr.HasSample && ptr.Inside {
			radius := config.Magnetic.Radius
			pull = fxmath.DistSq(ptr.X, ptr.Y, centerX, centerY) < radius*radius
		}
		magnetic.Active = pull

		if pull {
			targetX := (ptr.X - centerX) * config.Magnetic.Strength
			targetY := (ptr.Y - centerY) * config.Magnetic.Strength
			magnetic.Offset.X = fxmath.Lerp(magnetic.Offset.X, targetX, config.Magnetic.PullFactor)
			magnetic.Offset.Y = fxmath.Lerp(magnetic.Offset.Y, targetY, config.Magnetic.PullFactor)
			return
		}
		magnetic.Offset.X = fxmath.Lerp(magnetic.Offset.X, 0, config.Magnetic.ReleaseRate)
		magnetic.Offset.Y = fxmath.Lerp(magnetic.Offset.Y, 0, config.Magnetic.ReleaseRate)
	})
}
