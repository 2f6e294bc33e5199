package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/tags"
)

// UpdatePointer feeds the latest raw pointer sample into the world and
// moves the resolv probe used for hover hit testing. Touch positions take
// precedence over the mouse cursor when present.
func UpdatePointer(e *ecs.ECS) {
	ptrEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(ptrEntry)

	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)

	x, y := ebiten.CursorPosition()
	touched := false
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y = ebiten.TouchPosition(touches[0])
		touched = true
	}
	samplePointer(ptr, x, y, touched, vp.Width, vp.Height)

	// Element rects live in page space; convert the probe by the current
	// scroll offset before hit testing.
	scrollOffset := 0.0
	if pageEntry, ok := components.Scroll.First(e.World); ok {
		scrollOffset = components.Scroll.Get(pageEntry).Offset
	}
	obj := components.Object.Get(ptrEntry)
	if obj.Object != nil {
		obj.X = ptr.X
		obj.Y = ptr.Y + scrollOffset
		obj.Update()
	}
}

// samplePointer records one raw pointer reading. The first mouse reading
// only primes the baseline: the cursor API reports (0,0) before the mouse
// ever moves, and treating that as a sample would snap the custom cursor
// to the corner. Touch readings are always genuine.
func samplePointer(ptr *components.PointerData, x, y int, touched bool, width, height int) {
	if !ptr.Primed {
		ptr.Primed = true
		ptr.BaselineX, ptr.BaselineY = x, y
	}

	ptr.X = float64(x)
	ptr.Y = float64(y)
	ptr.Inside = x >= 0 && y >= 0 && x < width && y < height
	if ptr.Inside && (touched || x != ptr.BaselineX || y != ptr.BaselineY) {
		ptr.HasSample = true
	}
}

// PointerOverInteractive reports whether the pointer probe currently
// overlaps an interactive element rect.
func PointerOverInteractive(e *ecs.ECS) bool {
	ptrEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return false
	}
	obj := components.Object.Get(ptrEntry)
	if obj.Object == nil {
		return false
	}
	return obj.Check(0, 0, tags.ResolvInteractive) != nil
}
