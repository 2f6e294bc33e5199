package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RevealData drives the one-shot rise/fade when an element scrolls into
// view. Triggered latches so scroll jitter can never re-run the tween.
type RevealData struct {
	Tween      *gween.Tween
	Triggered  bool
	DelayTicks int

	Offset float64 // upward rise remaining, applied by the renderer
	Alpha  float64 // 0..1
}

var Reveal = donburi.NewComponentType[RevealData]()

// ParallaxData shifts an element by a fraction of the scroll offset.
type ParallaxData struct {
	Speed  float64
	Offset float64
}

var Parallax = donburi.NewComponentType[ParallaxData]()

// MagneticData eases interactive elements toward a nearby pointer.
type MagneticData struct {
	Offset Vector
	Active bool
}

var Magnetic = donburi.NewComponentType[MagneticData]()

// TiltData is the smoothed highlight shift while the pointer is inside a
// card; rendering only, never physics.
type TiltData struct {
	Shift    Vector
	Hovering bool
}

var Tilt = donburi.NewComponentType[TiltData]()

// CounterData animates a stat value from zero once its element reveals.
type CounterData struct {
	Target  float64
	Value   float64
	Suffix  string
	Tween   *gween.Tween
	Started bool
	Done    bool
}

var Counter = donburi.NewComponentType[CounterData]()
