package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	cfg "github.com/lumenfx/lumen/config"
)

// newPageECS builds a headless world with the page singleton (scroll +
// viewport) every system expects.
func newPageECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	pageEntry := archetypes.Page.Spawn(e)
	components.Scroll.Set(pageEntry, &components.ScrollData{})
	components.Viewport.Set(pageEntry, &components.ViewportData{
		Width:  cfg.C.Width,
		Height: cfg.C.Height,
	})
	return e
}

func spawnTestField(e *ecs.ECS, field *components.ParticleFieldData) *components.ParticleFieldData {
	entry := archetypes.ParticleField.Spawn(e)
	components.ParticleField.Set(entry, field)
	return components.ParticleField.Get(entry)
}

func spawnTestPointer(e *ecs.ECS, x, y float64, inside bool) *components.PointerData {
	entry := archetypes.Pointer.Spawn(e)
	components.Pointer.Set(entry, &components.PointerData{
		X: x, Y: y,
		Inside:    inside,
		HasSample: true,
	})
	return components.Pointer.Get(entry)
}

func spawnTestCursor(e *ecs.ECS) *components.CursorData {
	entry := archetypes.Cursor.Spawn(e)
	components.Cursor.Set(entry, &components.CursorData{})
	return components.Cursor.Get(entry)
}

func pageScroll(e *ecs.ECS) *components.ScrollData {
	entry, _ := components.Scroll.First(e.World)
	return components.Scroll.Get(entry)
}
