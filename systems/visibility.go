package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/frame"
)

// NewUpdateVisibility pauses the particle loop while the window is
// unfocused and resumes it on focus. Start/Stop are idempotent, so rapid
// focus toggling can never leak a duplicate chain.
func NewUpdateVisibility(field *frame.Scheduler) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		if ebiten.IsFocused() {
			field.Start()
		} else {
			field.Stop()
		}
	}
}
