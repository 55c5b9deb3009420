package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                                  { return s.id }
func (s *stubGame) Title() string                               { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig)                    {}
func (s *stubGame) Step(core.InputFrame, int64) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                         {}
func (s *stubGame) State() core.GameState                       { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Stub"}, func() (Game, error) {
		return &stubGame{id: "zz_stub"}, nil
	})
	Register(GameInfo{ID: "aa_stub", Title: "Stub A"}, func() (Game, error) {
		return &stubGame{id: "aa_stub"}, nil
	})

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, expected zz_stub", g.ID())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("bad config")
	Register(GameInfo{ID: "broken_stub"}, func() (Game, error) {
		return nil, boom
	})

	_, err := Create("broken_stub")
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped factory error, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "dup_stub"}, func() (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "dup_stub"}, func() (Game, error) { return &stubGame{}, nil })
}
