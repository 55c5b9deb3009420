package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	for _, id := range []string{"menu_a", "menu_b"} {
		registry.Register(registry.GameInfo{ID: id, Title: strings.ToUpper(id)}, func() (registry.Game, error) {
			return &stubGame{}, nil
		})
	}
}

func newTestMenu() MenuModel {
	return NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
}

func TestMenuListsRegisteredModes(t *testing.T) {
	m := newTestMenu()

	if len(m.modes) != len(registry.List()) {
		t.Fatalf("menu has %d modes, registry %d", len(m.modes), len(registry.List()))
	}

	view := ansiEscape.ReplaceAllString(m.View(), "")
	for _, id := range []string{"menu_a", "menu_b"} {
		if !strings.Contains(view, id) {
			t.Errorf("view missing %s", id)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := newTestMenu()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}
	if m.Selected() != registry.List()[1].ID {
		t.Errorf("selected %q, want %q", m.Selected(), registry.List()[1].ID)
	}
	if m.IsQuitting() {
		t.Error("selection is not a quit")
	}
}

func TestMenuQuit(t *testing.T) {
	m := newTestMenu()

	next, _ := m.Update(runeKey('q'))
	m = next.(MenuModel)

	if !m.IsQuitting() || m.Selected() != "" {
		t.Errorf("quitting=%v selected=%q", m.IsQuitting(), m.Selected())
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestMenuResize(t *testing.T) {
	m := newTestMenu()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(MenuModel)

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestTableHeight(t *testing.T) {
	tests := []struct {
		rows, screenH, want int
	}{
		{3, 40, 4},
		{30, 20, 12},
		{0, 5, 2},
	}
	for _, tt := range tests {
		if got := tableHeight(tt.rows, tt.screenH); got != tt.want {
			t.Errorf("tableHeight(%d, %d) = %d, want %d", tt.rows, tt.screenH, got, tt.want)
		}
	}
}
