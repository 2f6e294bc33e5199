package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
)

// UpdateParallax shifts each tagged element by its fraction of the current
// scroll offset, so tagged elements lag the page rather than lead it. Pure
// function of scroll state; no internal state of its own.
func UpdateParallax(e *ecs.ECS) {
	pageEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(pageEntry)

	components.Parallax.Each(e.World, func(entry *donburi.Entry) {
		parallax := components.Parallax.Get(entry)
		parallax.Offset = scroll.Offset * parallax.Speed
	})
}
