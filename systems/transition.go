package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
)

// UpdateTransition fades the page-load overlay from opaque to clear once.
func UpdateTransition(e *ecs.ECS) {
	transitionEntry, ok := components.Transition.First(e.World)
	if !ok {
		return
	}
	transition := components.Transition.Get(transitionEntry)
	if transition.Done {
		return
	}

	if transition.Tween == nil {
		transition.Tween = gween.New(1, 0, config.Transition.Duration, ease.OutQuad)
	}
	alpha, finished := transition.Tween.Update(tickSeconds)
	transition.Alpha = float64(alpha)
	if finished {
		transition.Alpha = 0
		transition.Done = true
	}
}

// DrawTransition renders the fade overlay above everything else.
func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	transitionEntry, ok := components.Transition.First(e.World)
	if !ok {
		return
	}
	transition := components.Transition.Get(transitionEntry)
	if transition.Alpha <= 0 {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, width, height,
		scaleAlpha(config.Transition.Color, transition.Alpha), false)
}
