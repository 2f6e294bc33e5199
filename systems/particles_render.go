package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
)

// DrawParticleField renders the current field state: every particle as a
// filled circle, then the connection pass as faint lines.
func DrawParticleField(e *ecs.ECS, screen *ebiten.Image) {
	fieldEntry, ok := components.ParticleField.First(e.World)
	if !ok {
		return
	}
	field := components.ParticleField.Get(fieldEntry)

	for i := range field.Particles {
		p := &field.Particles[i]
		vector.DrawFilledCircle(screen,
			float32(p.X), float32(p.Y), float32(p.Radius),
			scaleAlpha(config.Particles.Color, p.Alpha), true)
	}

	for _, c := range connectionPairs(field) {
		a := &field.Particles[c.a]
		b := &field.Particles[c.b]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			1, scaleAlpha(config.Particles.Color, c.alpha), true)
	}
}

// scaleAlpha premultiplies a color by an opacity in [0, 1].
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
