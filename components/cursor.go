package components

import "github.com/yohamta/donburi"

// CursorData holds the two lagged cursor positions. Dot tracks the pointer
// tightly, Glow loosely; the visible inertia difference comes entirely from
// the two smoothing factors. Pointer/scroll events write the flags, the
// per-frame update only advances Dot and Glow.
type CursorData struct {
	Dot  Vector
	Glow Vector

	// Snap both positions to the very first sample instead of lerping in
	// from the origin
	HasSample bool

	Hovering bool

	// Hover changes are suppressed while the page is scrolling and for a
	// short quiet period after; QuietFrames counts that period down.
	QuietFrames int
}

var Cursor = donburi.NewComponentType[CursorData]()
