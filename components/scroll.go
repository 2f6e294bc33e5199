package components

import "github.com/yohamta/donburi"

// ScrollData is the smoothed page scroll model. Offset eases toward Target;
// Delta is the per-frame movement consumed by the header and cursor
// suppression.
type ScrollData struct {
	Offset float64
	Target float64
	Delta  float64
}

var Scroll = donburi.NewComponentType[ScrollData]()

// ViewportData mirrors the current output dimensions.
type ViewportData struct {
	Width  int
	Height int
}

var Viewport = donburi.NewComponentType[ViewportData]()
