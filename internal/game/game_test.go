package game

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string                                    { return s.id }
func (s *stubGame) Title() string                                 { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig)                      {}
func (s *stubGame) Step(float64, core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) DrawData() *core.DrawData                      { return &core.DrawData{} }
func (s *stubGame) State() core.GameState                         { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "Stub A"} })

	if !Exists("stub-a") {
		t.Fatal("registered game not found")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID = %q, want stub-a", g.ID())
	}

	// Each Create returns a fresh instance
	g2, _ := Create("stub-a")
	if g == g2 {
		t.Error("Create returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("Exists reported an unregistered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup", title: "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup", title: "Dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z", title: "Z"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b", title: "B"} })

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID > infos[i].ID {
			t.Fatalf("list not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}
