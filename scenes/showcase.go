package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/components"
	cfg "github.com/lumenfx/lumen/config"
	"github.com/lumenfx/lumen/frame"
	"github.com/lumenfx/lumen/systems"
	"github.com/lumenfx/lumen/systems/factory"
	"github.com/lumenfx/lumen/ui"
)

// ShowcaseScene is the whole page: content elements, every effect system,
// and the two frame schedulers. The shared scheduler drives the cursor for
// the page's lifetime; the field scheduler is paused and resumed with
// window focus, so the particle loop can stop without touching anything
// else.
type ShowcaseScene struct {
	ecs      *ecs.ECS
	menuUI   *ui.MenuUI
	shared   *frame.Scheduler
	field    *frame.Scheduler
	settings *cfg.SavedSettings
	once     sync.Once
}

func NewShowcaseScene(settings *cfg.SavedSettings) *ShowcaseScene {
	if settings == nil {
		settings = cfg.DefaultSettings()
	}
	return &ShowcaseScene{
		shared:   frame.NewScheduler(),
		field:    frame.NewScheduler(),
		settings: settings,
	}
}

func (ss *ShowcaseScene) Update() {
	ss.once.Do(ss.configure)

	// Two independent callback chains; no defined ordering between them.
	ss.shared.Tick()
	ss.field.Tick()

	ss.ecs.Update()
}

func (ss *ShowcaseScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background
	screen.Fill(cfg.Background)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)

	if menuEntry, ok := components.Menu.First(ss.ecs.World); ok {
		if components.Menu.Get(menuEntry).Progress > 0.2 {
			ss.menuUI.Draw(screen)
		}
	}
}

func (ss *ShowcaseScene) configure() {
	caps := cfg.DetectCapabilities(ss.settings)

	e := ecs.NewECS(donburi.NewWorld())
	ss.ecs = e

	space := factory.CreateSpace(e)
	factory.CreatePage(e, space)
	factory.CreateParticleField(e, caps, ss.settings)
	if factory.CreateCursor(e, caps) != nil {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	ss.menuUI = ui.NewMenuUI(ss.settings,
		ss.navigateTo,
		ss.applySettings,
		ss.closeMenu,
	)

	e.AddSystem(systems.UpdatePointer)
	e.AddSystem(systems.UpdateScroll)
	e.AddSystem(systems.NewUpdateVisibility(ss.field))
	e.AddSystem(systems.UpdateReveals)
	e.AddSystem(systems.UpdateParallax)
	e.AddSystem(systems.UpdateMagnetic)
	e.AddSystem(systems.UpdateTilt)
	e.AddSystem(systems.UpdateCounters)
	e.AddSystem(systems.UpdateLetters)
	e.AddSystem(systems.UpdateHeader)
	e.AddSystem(systems.NewUpdateMenu(ss.menuUI))
	e.AddSystem(systems.UpdateTransition)

	e.AddRenderer(cfg.Default, systems.DrawParticleField)
	e.AddRenderer(cfg.Default, systems.DrawElements)
	e.AddRenderer(cfg.Default, systems.DrawLetters)
	e.AddRenderer(cfg.Default, systems.DrawCounters)
	e.AddRenderer(cfg.Default, systems.DrawHeader)
	e.AddRenderer(cfg.Default, systems.DrawMenuBackdrop)
	e.AddRenderer(cfg.Default, systems.DrawCursor)
	e.AddRenderer(cfg.Default, systems.DrawTransition)

	ss.shared.Add(func() { systems.UpdateCursor(e) })
	ss.shared.Start()

	ss.field.Add(func() { systems.UpdateParticleField(e) })
	ss.field.Start()
}

func (ss *ShowcaseScene) navigateTo(target float64) {
	if pageEntry, ok := components.Scroll.First(ss.ecs.World); ok {
		components.Scroll.Get(pageEntry).Target = target
	}
}

func (ss *ShowcaseScene) closeMenu() {
	if menuEntry, ok := components.Menu.First(ss.ecs.World); ok {
		components.Menu.Get(menuEntry).Open = false
	}
}

// applySettings persists the settings and rebuilds the capability-gated
// entities so toggles take effect immediately.
func (ss *ShowcaseScene) applySettings() {
	systems.SaveSettings(ss.settings)
	caps := cfg.DetectCapabilities(ss.settings)

	if fieldEntry, ok := components.ParticleField.First(ss.ecs.World); ok {
		fieldEntry.Remove()
	}
	factory.CreateParticleField(ss.ecs, caps, ss.settings)

	cursorEntry, hasCursor := components.Cursor.First(ss.ecs.World)
	switch {
	case hasCursor && caps.ReducedMotion:
		cursorEntry.Remove()
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	case !hasCursor:
		if factory.CreateCursor(ss.ecs, caps) != nil {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		}
	}
}
