package fonts

import (
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Body    FontName = "body"
	Label   FontName = "label"
	Title   FontName = "title"
	Counter FontName = "counter"
)

// Get returns the registered face, or nil when loading failed. Callers must
// treat nil as "text effects disabled" rather than an error.
func (f FontName) Get() font.Face {
	return fonts[f]
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: could not parse font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}
