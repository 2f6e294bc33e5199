package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fxmath"
)

// MenuOverlay is the part of the nav overlay owned by ui (ebitenui); the
// system drives open/close state and forwards update ticks while visible.
type MenuOverlay interface {
	Update()
}

// NewUpdateMenu toggles the overlay from the menu key or a click on the
// burger area and eases the open progress used by the renderer.
func NewUpdateMenu(overlay MenuOverlay) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		menuEntry, ok := components.Menu.First(e.World)
		if !ok {
			return
		}
		menu := components.Menu.Get(menuEntry)

		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			menu.Open = !menu.Open
		}
		if menu.Open && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			menu.Open = false
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && burgerClicked(e) {
			menu.Open = !menu.Open
		}

		target := 0.0
		if menu.Open {
			target = 1.0
		}
		menu.Progress = fxmath.Lerp(menu.Progress, target, config.Menu.Speed)

		if menu.Open && overlay != nil {
			overlay.Update()
		}
	}
}

func burgerClicked(e *ecs.ECS) bool {
	headerEntry, ok := components.Header.First(e.World)
	if !ok {
		return false
	}
	header := components.Header.Get(headerEntry)

	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return false
	}
	vp := components.Viewport.Get(vpEntry)

	x, y := ebiten.CursorPosition()
	burgerX := float64(vp.Width) - 52
	burgerY := header.Offset + 12
	return float64(x) >= burgerX && float64(x) <= burgerX+38 &&
		float64(y) >= burgerY && float64(y) <= burgerY+32
}

// DrawMenuBackdrop dims the page behind the overlay proportionally to the
// open progress. The ebitenui panel itself draws on top in the scene.
func DrawMenuBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	menuEntry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(menuEntry)
	if menu.Progress <= 0.01 {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, width, height,
		scaleAlpha(config.OverlayBg, menu.Progress*0.85), false)
}
