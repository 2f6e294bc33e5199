package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer used by all renderers.
const Default = ecs.LayerID(0)

// Config holds general application configuration
type Config struct {
	Width  int
	Height int

	// Total scrollable page height in pixels
	PageHeight float64
}

// ParticlesConfig contains particle background tuning
type ParticlesConfig struct {
	// Spawn policy: count = min(MaxCount, viewportArea/AreaDivisor),
	// with separate values for pointer-capable and touch devices
	MaxCount         int
	AreaDivisor      float64
	TouchMaxCount    int
	TouchAreaDivisor float64

	// Per-particle spawn ranges
	MinRadius float64
	MaxRadius float64
	MinAlpha  float64
	MaxAlpha  float64

	// Physics
	RepelRadius float64 // pointer influence distance
	RepelForce  float64 // force scale at zero distance
	Damping     float64 // multiplicative velocity decay per frame
	Drift       float64 // max magnitude of per-frame random velocity noise

	// Connection pass
	ConnectionDistance float64 // max link distance
	ConnectionMaxCount int     // pass skipped entirely above this count
	ConnectionAlpha    float64 // line opacity at zero distance

	Color color.RGBA
}

// CursorConfig contains the two-part custom cursor tuning
type CursorConfig struct {
	DotFactor  float64 // smoothing factor for the tight dot
	GlowFactor float64 // smoothing factor for the loose glow

	DotRadius  float64
	GlowRadius float64
	HoverScale float64 // dot/glow scale multiplier while over interactive elements

	// Frames of hover-change suppression after scroll movement stops
	ScrollQuietFrames int

	DotColor  color.RGBA
	GlowColor color.RGBA
}

// ScrollConfig contains the page scroll model tuning
type ScrollConfig struct {
	WheelSpeed float64 // pixels per wheel unit
	Smoothing  float64 // exponential approach factor toward the target offset
}

// RevealConfig contains scroll-reveal tuning
type RevealConfig struct {
	Duration     float32 // seconds
	Distance     float64 // rise distance in pixels
	TriggerRatio float64 // element reveals when above viewportHeight*ratio
	StaggerTicks int     // per-element delay step
}

// ParallaxConfig contains scroll parallax tuning
type ParallaxConfig struct {
	HeroSpeed float64 // scroll fraction applied to hero elements
	CardSpeed float64 // scroll fraction applied to decorative cards
}

// MagneticConfig contains magnetic hover tuning
type MagneticConfig struct {
	Radius      float64 // pointer distance at which pull engages
	Strength    float64 // fraction of pointer delta applied as offset
	PullFactor  float64 // smoothing toward the pulled offset
	ReleaseRate float64 // smoothing back to rest
}

// TiltConfig contains tilt-card tuning
type TiltConfig struct {
	MaxShift  float64 // highlight shift at the card edge, in pixels
	Smoothing float64
}

// CounterConfig contains animated stat counter tuning
type CounterConfig struct {
	Duration float32 // seconds from zero to target
}

// HeaderConfig contains header show/hide tuning
type HeaderConfig struct {
	Height        float64
	HideThreshold float64 // scroll offset below which the header never hides
	Smoothing     float64
}

// MenuConfig contains the nav/settings overlay tuning
type MenuConfig struct {
	Speed float64 // open/close progress per frame
}

// TransitionConfig contains the page-load fade tuning
type TransitionConfig struct {
	Duration float32 // seconds
	Color    color.RGBA
}

// LetterConfig contains split-text heading animation tuning
type LetterConfig struct {
	Duration     float32 // seconds per letter
	Rise         float64 // pixels each letter rises from
	StaggerTicks int     // delay step between letters
}

// Global configuration instances
var C *Config
var Particles ParticlesConfig
var Cursor CursorConfig
var Scroll ScrollConfig
var Reveal RevealConfig
var Parallax ParallaxConfig
var Magnetic MagneticConfig
var Tilt TiltConfig
var Counter CounterConfig
var Header HeaderConfig
var Menu MenuConfig
var Transition TransitionConfig
var Letter LetterConfig

// Shared RGBA color constants
var (
	Background = color.RGBA{R: 10, G: 12, B: 22, A: 255}
	Ink        = color.RGBA{R: 235, G: 238, B: 245, A: 255}
	InkDim     = color.RGBA{R: 140, G: 148, B: 165, A: 255}
	Accent     = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	AccentSoft = color.RGBA{R: 120, G: 200, B: 255, A: 70}
	CardFill   = color.RGBA{R: 22, G: 26, B: 42, A: 255}
	CardEdge   = color.RGBA{R: 48, G: 56, B: 82, A: 255}
	HeaderFill = color.RGBA{R: 12, G: 14, B: 26, A: 235}
	OverlayBg  = color.RGBA{R: 8, G: 10, B: 18, A: 245}
)

func init() {
	C = &Config{
		Width:      960,
		Height:     540,
		PageHeight: 2200,
	}

	Particles = ParticlesConfig{
		MaxCount:         100,
		AreaDivisor:      12000,
		TouchMaxCount:    40,
		TouchAreaDivisor: 24000,

		MinRadius: 0.8,
		MaxRadius: 2.4,
		MinAlpha:  0.15,
		MaxAlpha:  0.6,

		RepelRadius: 120.0,
		RepelForce:  0.35,
		Damping:     0.985,
		Drift:       0.01,

		ConnectionDistance: 100.0,
		ConnectionMaxCount: 80,
		ConnectionAlpha:    0.18,

		Color: color.RGBA{R: 150, G: 190, B: 255, A: 255},
	}

	Cursor = CursorConfig{
		DotFactor:  0.18,
		GlowFactor: 0.08,

		DotRadius:  4,
		GlowRadius: 18,
		HoverScale: 1.6,

		// ~100ms at 60 TPS
		ScrollQuietFrames: 6,

		DotColor:  color.RGBA{R: 235, G: 240, B: 255, A: 255},
		GlowColor: color.RGBA{R: 120, G: 200, B: 255, A: 60},
	}

	Scroll = ScrollConfig{
		WheelSpeed: 40.0,
		Smoothing:  0.12,
	}

	Reveal = RevealConfig{
		Duration:     0.7,
		Distance:     36.0,
		TriggerRatio: 0.88,
		StaggerTicks: 5,
	}

	Parallax = ParallaxConfig{
		HeroSpeed: 0.35,
		CardSpeed: 0.08,
	}

	Magnetic = MagneticConfig{
		Radius:      90.0,
		Strength:    0.3,
		PullFactor:  0.2,
		ReleaseRate: 0.12,
	}

	Tilt = TiltConfig{
		MaxShift:  10.0,
		Smoothing: 0.15,
	}

	Counter = CounterConfig{
		Duration: 1.6,
	}

	Header = HeaderConfig{
		Height:        56.0,
		HideThreshold: 120.0,
		Smoothing:     0.2,
	}

	Menu = MenuConfig{
		Speed: 0.09,
	}

	Transition = TransitionConfig{
		Duration: 0.9,
		Color:    color.RGBA{R: 8, G: 10, B: 18, A: 255},
	}

	Letter = LetterConfig{
		Duration:     0.55,
		Rise:         26.0,
		StaggerTicks: 3,
	}
}
