package systems

import (
	"testing"

	"github.com/yohamta/donburi/ecs"

	"github.com/lumenfx/lumen/archetypes"
	"github.com/lumenfx/lumen/components"
	"github.com/lumenfx/lumen/config"
)

func spawnTestLetter(e *ecs.ECS, delay int) *components.LetterData {
	entry := archetypes.Letter.Spawn(e)
	components.Letter.Set(entry, &components.LetterData{
		Char: "L", X: 80, Y: 200,
		DelayTicks: delay,
	})
	return components.Letter.Get(entry)
}

func TestLettersRiseAndSettle(t *testing.T) {
	e := newPageECS()
	letter := spawnTestLetter(e, 0)

	UpdateLetters(e)
	if letter.Alpha <= 0 {
		t.Fatal("undelayed letter did not start fading in")
	}
	if letter.Rise >= config.Letter.Rise {
		t.Fatalf("rise = %f, want below the start height %f", letter.Rise, config.Letter.Rise)
	}

	for i := 0; i < int(config.Letter.Duration*60)+5; i++ {
		UpdateLetters(e)
	}

	if !letter.Done {
		t.Fatal("letter never finished")
	}
	if letter.Alpha != 1 || letter.Rise != 0 {
		t.Fatalf("letter settled at alpha %f rise %f, want 1 and 0", letter.Alpha, letter.Rise)
	}
}

func TestLettersHonorStagger(t *testing.T) {
	e := newPageECS()
	first := spawnTestLetter(e, 0)
	second := spawnTestLetter(e, 10)

	for i := 0; i < 5; i++ {
		UpdateLetters(e)
	}

	if first.Alpha <= 0 {
		t.Fatal("first letter should be fading in")
	}
	if second.Alpha != 0 {
		t.Fatalf("second letter faded to %f before its delay elapsed", second.Alpha)
	}

	for i := 0; i < 10; i++ {
		UpdateLetters(e)
	}
	if second.Alpha <= 0 {
		t.Fatal("second letter never started after its delay")
	}
}
