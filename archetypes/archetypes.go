package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	cfg "github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/tags"
)

var (
	Space = newArchetype(
		components.Space,
	)
	ParticleField = newArchetype(
		components.ParticleField,
	)
	Pointer = newArchetype(
		components.Pointer,
		components.Object,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
	Page = newArchetype(
		components.Scroll,
		components.Viewport,
	)
	Header = newArchetype(
		components.Header,
	)
	Menu = newArchetype(
		components.Menu,
	)
	Transition = newArchetype(
		components.Transition,
	)
	Hero = newArchetype(
		tags.Hero,
		components.Element,
		components.Parallax,
		components.Reveal,
	)
	Card = newArchetype(
		tags.Card,
		components.Element,
		components.Object,
		components.Reveal,
		components.Parallax,
		components.Magnetic,
		components.Tilt,
	)
	Stat = newArchetype(
		tags.Stat,
		components.Element,
		components.Reveal,
		components.Counter,
	)
	Section = newArchetype(
		tags.Section,
		components.Element,
		components.Reveal,
	)
	Letter = newArchetype(
		components.Letter,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
