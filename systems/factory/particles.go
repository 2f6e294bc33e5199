package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	cfg "github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/systems"
)

// CreateParticleField spawns the background field, or nothing at all when
// capabilities or settings rule it out; every particle system tolerates the
// absent entity.
func CreateParticleField(e *ecs.ECS, caps cfg.Capabilities, settings *cfg.SavedSettings) *donburi.Entry {
	if caps.ReducedMotion {
		return nil
	}
	density := 1.0
	if settings != nil {
		if !settings.Particles {
			return nil
		}
		if settings.Density > 0 {
			density = settings.Density
		}
	}

	entry := archetypes.ParticleField.Spawn(e)
	field := &components.ParticleFieldData{
		Width:   float64(cfg.C.Width),
		Height:  float64(cfg.C.Height),
		Repel:   !caps.Touch,
		Connect: !caps.Touch,
	}
	count := int(float64(systems.ParticleCount(caps, cfg.C.Width, cfg.C.Height)) * density)
	components.ParticleField.Set(entry, field)
	systems.SpawnParticles(field, count)

	return entry
}
