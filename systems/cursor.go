package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fxmath"
)

// scrollActivityThreshold is the per-frame scroll movement above which the
// page counts as scrolling for hover suppression.
const scrollActivityThreshold = 0.05

// UpdateCursor advances both lagged cursor positions one frame. It is
// registered on the shared frame scheduler, not the ECS update, and calling
// it before any pointer sample arrived is a no-op.
func UpdateCursor(e *ecs.ECS) {
	cursorEntry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	cursor := components.Cursor.Get(cursorEntry)

	ptrEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(ptrEntry)
	if !ptr.HasSample {
		return
	}

	// The very first sample snaps both positions so the cursor never lerps
	// in from a default origin.
	if !cursor.HasSample {
		cursor.Dot = components.Vector{X: ptr.X, Y: ptr.Y}
		cursor.Glow = components.Vector{X: ptr.X, Y: ptr.Y}
		cursor.HasSample = true
		return
	}

	cursor.Dot.X = fxmath.Lerp(cursor.Dot.X, ptr.X, config.Cursor.DotFactor)
	cursor.Dot.Y = fxmath.Lerp(cursor.Dot.Y, ptr.Y, config.Cursor.DotFactor)
	cursor.Glow.X = fxmath.Lerp(cursor.Glow.X, ptr.X, config.Cursor.GlowFactor)
	cursor.Glow.Y = fxmath.Lerp(cursor.Glow.Y, ptr.Y, config.Cursor.GlowFactor)

	updateHover(e, cursor)
}

// updateHover suppresses hover changes while the page is scrolling and for
// a short quiet period after, then recomputes from the element actually
// under the pointer. This avoids flicker caused by page movement rather
// than genuine pointer movement.
func updateHover(e *ecs.ECS, cursor *components.CursorData) {
	if pageEntry, ok := components.Scroll.First(e.World); ok {
		scroll := components.Scroll.Get(pageEntry)
		if math.Abs(scroll.Delta) > scrollActivityThreshold {
			cursor.QuietFrames = config.Cursor.ScrollQuietFrames
			return
		}
	}
	if cursor.QuietFrames > 0 {
		cursor.QuietFrames--
		if cursor.QuietFrames > 0 {
			return
		}
	}
	cursor.Hovering = PointerOverInteractive(e)
}

// DrawCursor renders the glow first, then the dot, scaled up while over an
// interactive element.
func DrawCursor(e *ecs.ECS, screen *ebiten.Image) {
	cursorEntry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	cursor := components.Cursor.Get(cursorEntry)
	if !cursor.HasSample {
		return
	}

	scale := 1.0
	if cursor.Hovering {
		scale = config.Cursor.HoverScale
	}

	vector.DrawFilledCircle(screen,
		float32(cursor.Glow.X), float32(cursor.Glow.Y),
		float32(config.Cursor.GlowRadius*scale),
		config.Cursor.GlowColor, true)
	vector.DrawFilledCircle(screen,
		float32(cursor.Dot.X), float32(cursor.Dot.Y),
		float32(config.Cursor.DotRadius*scale),
		config.Cursor.DotColor, true)
}
