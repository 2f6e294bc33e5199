package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
)

// tickSeconds is the fixed simulation step fed to tweens (60 TPS).
const tickSeconds = 1.0 / 60.0

// UpdateReveals triggers the one-shot rise/fade tween for every element
// whose page position has entered the lower trigger band of the viewport,
// and advances tweens already in flight. Triggering latches, so scroll
// jitter never replays a reveal.
func UpdateReveals(e *ecs.ECS) {
	pageEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(pageEntry)
	vp := components.Viewport.Get(pageEntry)
	triggerLine := scroll.Offset + float64(vp.Height)*config.Reveal.TriggerRatio

	components.Reveal.Each(e.World, func(entry *donburi.Entry) {
		reveal := components.Reveal.Get(entry)
		element := components.Element.Get(entry)

		if !reveal.Triggered {
			if element.Y > triggerLine {
				return
			}
			reveal.Triggered = true
		}

		if reveal.DelayTicks > 0 {
			reveal.DelayTicks--
			return
		}

		if reveal.Tween == nil {
			reveal.Tween = gween.New(0, 1, config.Reveal.Duration, ease.OutCubic)
		}
		progress, finished := reveal.Tween.Update(tickSeconds)
		reveal.Alpha = float64(progress)
		reveal.Offset = (1 - float64(progress)) * config.Reveal.Distance
		if finished {
			reveal.Alpha = 1
			reveal.Offset = 0
		}
	})
}
