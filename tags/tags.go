package tags

import "github.com/yohamta/donburi"

var (
	Hero    = donburi.NewTag().SetName("Hero")
	Card    = donburi.NewTag().SetName("Card")
	Stat    = donburi.NewTag().SetName("Stat")
	Section = donburi.NewTag().SetName("Section")
)

// Resolv tags for pointer hit testing
const (
	ResolvInteractive = "interactive"
	ResolvPointer     = "pointer"
)
