package components

import "github.com/yohamta/donburi"

// Particle is one simulation entity in the background field. Particles are
// spawned in a batch and discarded wholesale on respawn; none survives it.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
}

// ParticleFieldData owns the particle collection and its bounds. The slice
// order only matters to the connection pass, which iterates unique pairs.
type ParticleFieldData struct {
	Particles []Particle

	Width  float64
	Height float64

	// Policy flags decided once at spawn from capabilities
	Repel   bool // pointer repulsion (pointer-capable devices only)
	Connect bool // proximity connection pass
}

var ParticleField = donburi.NewComponentType[ParticleFieldData]()
