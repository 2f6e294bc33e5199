package systems

import (
	"testing"

	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
)

func spawnRevealElement(e *ecs.ECS, y float64, delay int) (*components.ElementData, *components.RevealData) {
	entry := archetypes.Section.Spawn(e)
	components.Element.Set(entry, &components.ElementData{
		X: 80, Y: y, W: 400, H: 60,
	})
	components.Reveal.Set(entry, &components.RevealData{DelayTicks: delay})
	return components.Element.Get(entry), components.Reveal.Get(entry)
}

func TestRevealWaitsUntilElementEntersViewport(t *testing.T) {
	e := newPageECS()
	// Far below the first viewport.
	_, reveal := spawnRevealElement(e, 2000, 0)

	UpdateReveals(e)
	if reveal.Triggered {
		t.Fatal("element far below the fold must not reveal")
	}
	if reveal.Alpha != 0 {
		t.Fatalf("expected alpha 0 before trigger, got %f", reveal.Alpha)
	}

	// Scroll it into the trigger band.
	pageScroll(e).Offset = 1700
	UpdateReveals(e)
	if !reveal.Triggered {
		t.Fatal("expected reveal triggered once inside the viewport band")
	}
}

func TestRevealCompletesAndLatches(t *testing.T) {
	e := newPageECS()
	_, reveal := spawnRevealElement(e, 100, 0)

	ticks := int(config.Reveal.Duration*60) + 10
	for i := 0; i < ticks; i++ {
		UpdateReveals(e)
	}

	if reveal.Alpha != 1 {
		t.Fatalf("expected alpha exactly 1 when finished, got %f", reveal.Alpha)
	}
	if reveal.Offset != 0 {
		t.Fatalf("expected rise offset 0 when finished, got %f", reveal.Offset)
	}

	// Scrolling away and back must not replay the tween.
	pageScroll(e).Offset = 3000
	UpdateReveals(e)
	pageScroll(e).Offset = 0
	UpdateReveals(e)
	if reveal.Alpha != 1 {
		t.Fatalf("reveal replayed after scroll jitter: alpha %f", reveal.Alpha)
	}
}

func TestRevealProgressIsMonotonic(t *testing.T) {
	e := newPageECS()
	_, reveal := spawnRevealElement(e, 100, 0)

	previous := 0.0
	for i := 0; i < int(config.Reveal.Duration*60)+5; i++ {
		UpdateReveals(e)
		if reveal.Alpha < previous {
			t.Fatalf("tick %d: alpha regressed from %f to %f", i, previous, reveal.Alpha)
		}
		previous = reveal.Alpha
	}
}

func TestRevealStaggerDelaysStart(t *testing.T) {
	e := newPageECS()
	_, immediate := spawnRevealElement(e, 100, 0)
	_, delayed := spawnRevealElement(e, 100, 10)

	for i := 0; i < 5; i++ {
		UpdateReveals(e)
	}

	if immediate.Alpha == 0 {
		t.Fatal("undelayed element should have started revealing")
	}
	if delayed.Alpha != 0 {
		t.Fatalf("delayed element revealed %f before its stagger elapsed", delayed.Alpha)
	}
}
