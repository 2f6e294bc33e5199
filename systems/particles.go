package systems

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/fxmath"
)

// ParticleCount derives the spawn count from viewport area and input
// modality. Touch devices get a lower cap and a coarser divisor; the count
// is decided once per spawn, never per frame.
func ParticleCount(caps config.Capabilities, width, height int) int {
	area := float64(width * height)
	max := config.Particles.MaxCount
	divisor := config.Particles.AreaDivisor
	if caps.Touch {
		max = config.Particles.TouchMaxCount
		divisor = config.Particles.TouchAreaDivisor
	}
	count := int(math.Floor(area / divisor))
	if count > max {
		count = max
	}
	return count
}

// SpawnParticles replaces the whole collection with count fresh particles
// distributed uniformly over the current bounds.
func SpawnParticles(field *components.ParticleFieldData, count int) {
	if count < 0 {
		count = 0
	}
	field.Particles = make([]components.Particle, count)
	for i := range field.Particles {
		field.Particles[i] = components.Particle{
			X:      rand.Float64() * field.Width,
			Y:      rand.Float64() * field.Height,
			Radius: randRange(config.Particles.MinRadius, config.Particles.MaxRadius),
			Alpha:  randRange(config.Particles.MinAlpha, config.Particles.MaxAlpha),
		}
	}
}

// ResizeParticleField updates the bounds only. Particles are not respawned;
// they wrap against the new bounds on the next step.
func ResizeParticleField(field *components.ParticleFieldData, width, height float64) {
	field.Width = width
	field.Height = height
}

// UpdateParticleField advances the simulation one frame. It never draws;
// rendering reads the resulting state in DrawParticleField.
func UpdateParticleField(e *ecs.ECS) {
	fieldEntry, ok := components.ParticleField.First(e.World)
	if !ok {
		return
	}
	field := components.ParticleField.Get(fieldEntry)

	px, py := math.Inf(1), math.Inf(1)
	if ptrEntry, ok := components.Pointer.First(e.World); ok {
		ptr := components.Pointer.Get(ptrEntry)
		if ptr.HasSample && ptr.Inside {
			px, py = ptr.X, ptr.Y
		}
	}
	StepParticles(field, px, py)
}

// StepParticles runs the per-particle pass: repulsion, damping, drift,
// integration, wraparound. The pass completes for all particles before
// returning; there is no partial-frame interleaving.
func StepParticles(field *components.ParticleFieldData, pointerX, pointerY float64) {
	if field.Width <= 0 || field.Height <= 0 {
		return
	}
	repel := field.Repel && !math.IsInf(pointerX, 0)

	for i := range field.Particles {
		p := &field.Particles[i]

		if repel {
			applyRepulsion(p, pointerX, pointerY)
		}

		// Damping bounds velocity despite the unbounded additive forces.
		p.VX *= config.Particles.Damping
		p.VY *= config.Particles.Damping

		if drift := config.Particles.Drift; drift > 0 {
			p.VX += (rand.Float64() - 0.5) * drift
			p.VY += (rand.Float64() - 0.5) * drift
		}

		p.X = fxmath.Wrap(p.X+p.VX, field.Width)
		p.Y = fxmath.Wrap(p.Y+p.VY, field.Height)
	}
}

func applyRepulsion(p *components.Particle, px, py float64) {
	radius := config.Particles.RepelRadius
	distSq := fxmath.DistSq(px, py, p.X, p.Y)
	if distSq >= radius*radius {
		return
	}
	dist := math.Sqrt(distSq)
	// Coincident points have no meaningful force direction; skip rather
	// than feed a division by zero into the integrator.
	if dist < 1e-9 {
		return
	}
	force := (radius - dist) / radius * config.Particles.RepelForce
	p.VX += (p.X - px) / dist * force
	p.VY += (p.Y - py) / dist * force
}

// connection is one line of the proximity pass, identified by particle
// indices with a < b so each unordered pair appears once.
type connection struct {
	a, b  int
	alpha float64
}

// connectionPairs returns the links to draw this frame. The whole O(n²)
// pass is skipped on touch devices and above the particle-count cap.
func connectionPairs(field *components.ParticleFieldData) []connection {
	if !field.Connect {
		return nil
	}
	if len(field.Particles) > config.Particles.ConnectionMaxCount {
		return nil
	}
	maxDist := config.Particles.ConnectionDistance
	maxDistSq := maxDist * maxDist

	var pairs []connection
	for i := 0; i < len(field.Particles); i++ {
		for j := i + 1; j < len(field.Particles); j++ {
			distSq := fxmath.DistSq(
				field.Particles[i].X, field.Particles[i].Y,
				field.Particles[j].X, field.Particles[j].Y,
			)
			if distSq >= maxDistSq {
				continue
			}
			dist := math.Sqrt(distSq)
			pairs = append(pairs, connection{
				a:     i,
				b:     j,
				alpha: (1 - dist/maxDist) * config.Particles.ConnectionAlpha,
			})
		}
	}
	return pairs
}

func randRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
