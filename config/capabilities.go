package config

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Capabilities is the immutable device profile detected once at composition
// time and passed to every factory. Components never re-probe the device.
type Capabilities struct {
	// Touch means the primary input lacks hover/pointer precision: fewer
	// particles, no pointer repulsion, no connection pass, no custom cursor.
	Touch bool

	// ReducedMotion disables the particle field and cursor smoothing
	// entirely; static content still renders.
	ReducedMotion bool
}

// DetectCapabilities probes the device once. Saved settings take precedence
// over detection so a user choice survives restarts; the LUMEN_REDUCED_MOTION
// environment variable force-enables reduced motion for either.
func DetectCapabilities(saved *SavedSettings) Capabilities {
	caps := Capabilities{
		Touch: len(ebiten.AppendTouchIDs(nil)) > 0,
	}
	if saved != nil {
		caps.Touch = caps.Touch || saved.TouchMode
		caps.ReducedMotion = saved.ReducedMotion
	}
	if os.Getenv("LUMEN_REDUCED_MOTION") == "1" {
		caps.ReducedMotion = true
	}
	return caps
}
