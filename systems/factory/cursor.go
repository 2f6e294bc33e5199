package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	cfg "github.com/lumenfx/lumen/config"
)

// CreateCursor spawns the two-part custom cursor. Touch devices and reduced
// motion get no cursor entity; the system cursor stays visible instead.
func CreateCursor(e *ecs.ECS, caps cfg.Capabilities) *donburi.Entry {
	if caps.Touch || caps.ReducedMotion {
		return nil
	}
	entry := archetypes.Cursor.Spawn(e)
	components.Cursor.Set(entry, &components.CursorData{})
	return entry
}
