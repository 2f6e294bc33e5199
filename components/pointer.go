package components

import "github.com/yohamta/donburi"

// PointerData is the latest raw pointer sample. Inside is false when the
// pointer has left the viewport, which all consumers treat as "pointer at
// infinity" (no repulsion, no hover).
type PointerData struct {
	X, Y      float64
	Inside    bool
	HasSample bool

	// Baseline is the first reported position. The cursor API reports
	// (0,0) before the mouse ever moves, so mouse readings only count as
	// samples once they leave the baseline.
	BaselineX, BaselineY int
	Primed               bool
}

var Pointer = donburi.NewComponentType[PointerData]()
