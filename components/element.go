package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ElementData is one block of page content at a fixed position in page
// space. Effects never move the base rect; they accumulate offsets that the
// renderer applies on top.
type ElementData struct {
	Title string
	Body  string

	// Page-space rect (Y is relative to the top of the page, not the screen)
	X, Y, W, H float64

	Fill color.RGBA
}

var Element = donburi.NewComponentType[ElementData]()
