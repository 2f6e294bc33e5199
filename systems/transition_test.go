package systems

import (
	"testing"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
)

func TestTransitionFadesOutOnce(t *testing.T) {
	e := newPageECS()
	entry := archetypes.Transition.Spawn(e)
	components.Transition.Set(entry, &components.TransitionData{Alpha: 1})
	transition := components.Transition.Get(entry)

	prev := 1.0
	for i := 0; i < int(config.Transition.Duration*60)+5; i++ {
		UpdateTransition(e)
		if transition.Alpha > prev {
			t.Fatalf("fade reversed at frame %d: %f -> %f", i, prev, transition.Alpha)
		}
		prev = transition.Alpha
	}

	if !transition.Done {
		t.Fatal("transition never finished")
	}
	if transition.Alpha != 0 {
		t.Fatalf("transition settled at alpha %f, want 0", transition.Alpha)
	}

	UpdateTransition(e)
	if transition.Alpha != 0 || !transition.Done {
		t.Fatal("finished transition restarted")
	}
}
