package systems

import (
	"testing"

	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
)

func spawnTestStat(e *ecs.ECS, target float64) (*components.CounterData, *components.RevealData) {
	entry := archetypes.Stat.Spawn(e)
	components.Element.Set(entry, &components.ElementData{
		X: 80, Y: 1500, W: 200, H: 80,
	})
	components.Reveal.Set(entry, &components.RevealData{})
	components.Counter.Set(entry, &components.CounterData{Target: target})
	return components.Counter.Get(entry), components.Reveal.Get(entry)
}

func TestCounterWaitsForReveal(t *testing.T) {
	e := newPageECS()
	counter, _ := spawnTestStat(e, 42)

	for i := 0; i < 30; i++ {
		UpdateCounters(e)
	}

	if counter.Started {
		t.Fatal("counter started before its element revealed")
	}
	if counter.Value != 0 {
		t.Fatalf("counter moved to %f while waiting", counter.Value)
	}
}

func TestCounterRunsToTargetExactly(t *testing.T) {
	e := newPageECS()
	counter, reveal := spawnTestStat(e, 42)
	reveal.Triggered = true

	frames := int(config.Counter.Duration*60) + 5
	prev := 0.0
	for i := 0; i < frames; i++ {
		UpdateCounters(e)
		if counter.Value < prev {
			t.Fatalf("counter decreased from %f to %f at frame %d", prev, counter.Value, i)
		}
		if counter.Value > counter.Target {
			t.Fatalf("counter overshot to %f at frame %d", counter.Value, i)
		}
		prev = counter.Value
	}

	if !counter.Done {
		t.Fatal("counter never finished")
	}
	if counter.Value != counter.Target {
		t.Fatalf("counter landed on %f, want exactly %f", counter.Value, counter.Target)
	}
}

func TestCounterStaysDone(t *testing.T) {
	e := newPageECS()
	counter, reveal := spawnTestStat(e, 98)
	reveal.Triggered = true

	for i := 0; i < int(config.Counter.Duration*60)+5; i++ {
		UpdateCounters(e)
	}
	if !counter.Done {
		t.Fatal("counter never finished")
	}

	for i := 0; i < 30; i++ {
		UpdateCounters(e)
	}
	if counter.Value != counter.Target {
		t.Fatalf("finished counter drifted to %f", counter.Value)
	}
}
