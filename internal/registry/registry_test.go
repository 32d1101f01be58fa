package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/bounce-joy/internal/core"
)

type stubGame struct {
	id      string
	resets  int
	resizes int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type resizingGame struct{ stubGame }

func (g *resizingGame) Resize(core.RuntimeConfig) { g.resizes++ }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists() = false, expected true")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub_a")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub_a")
			}
		}
	}
	if !found {
		t.Error("List() does not include stub_a")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID did not panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("Exists() = true for unknown game")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestResize(t *testing.T) {
	plain := &stubGame{id: "plain"}
	Resize(plain, core.DefaultConfig())
	if plain.resets != 1 {
		t.Errorf("resets = %d, expected 1", plain.resets)
	}

	aware := &resizingGame{stubGame{id: "aware"}}
	Resize(aware, core.DefaultConfig())
	if aware.resizes != 1 || aware.resets != 0 {
		t.Errorf("resizes = %d, resets = %d, expected 1 and 0", aware.resizes, aware.resets)
	}
}

type chattyGame struct{ stubGame }

func (g *chattyGame) Notes() []string { return []string{"brick 3 destroyed"} }

func TestNotes(t *testing.T) {
	if got := Notes(&stubGame{id: "quiet"}); got != nil {
		t.Errorf("Notes() = %v, expected nil", got)
	}

	got := Notes(&chattyGame{stubGame{id: "chatty"}})
	if len(got) != 1 || got[0] != "brick 3 destroyed" {
		t.Errorf("Notes() = %v, expected one note", got)
	}
}
