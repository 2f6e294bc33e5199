package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HeaderData is the show/hide state of the top bar. Offset eases between 0
// (shown) and -height (hidden).
type HeaderData struct {
	Offset float64
	Hidden bool
}

var Header = donburi.NewComponentType[HeaderData]()

// MenuData is the nav/settings overlay state. Progress eases 0..1 and
// drives both the overlay fade and the panel slide.
type MenuData struct {
	Open     bool
	Progress float64
}

var Menu = donburi.NewComponentType[MenuData]()

// TransitionData is the page-load fade. Alpha tweens 1 -> 0 once.
type TransitionData struct {
	Tween *gween.Tween
	Alpha float64
	Done  bool
}

var Transition = donburi.NewComponentType[TransitionData]()

// LetterData is one glyph of the split hero heading.
type LetterData struct {
	Char string

	// Page-space position of the glyph baseline
	X, Y float64

	Rise  float64
	Alpha float64

	Tween      *gween.Tween
	DelayTicks int
	Done       bool
}

var Letter = donburi.NewComponentType[LetterData]()
