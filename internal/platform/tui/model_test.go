package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/logging"
)

// stubGame records what the host feeds it.
type stubGame struct {
	resets   int
	resizes  [][2]int
	inputs   []core.InputFrame
	elapsed  []int64
	state    core.GameState
	rendered int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Round: 1}
}

func (g *stubGame) Resize(w, h int) {
	g.resizes = append(g.resizes, [2]int{w, h})
}

func (g *stubGame) Step(in core.InputFrame, elapsedMs int64) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.elapsed = append(g.elapsed, elapsedMs)
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	g.rendered++
	dst.Clear()
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState { return g.state }

func newTestModel(g *stubGame) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 50, Seed: 7}
	m := NewModel(g, cfg, logging.Discard())
	m.Init()
	return m
}

func TestModelReservesHelpRow(t *testing.T) {
	m := newTestModel(&stubGame{})

	if m.screen.Height() != 11 {
		t.Errorf("screen height = %d, want 11", m.screen.Height())
	}
	if got := m.gameConfig().ScreenH; got != 11 {
		t.Errorf("game config height = %d, want 11", got)
	}
}

func TestModelFeedsKeysOnNextTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)

	start := time.Unix(1000, 0)
	next, cmd := m.Update(TickMsg(start))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}

	if len(g.inputs) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionRotate) {
		t.Errorf("step input = %v", g.inputs[0].Actions)
	}
	if g.elapsed[0] != 20 {
		t.Errorf("first tick elapsed = %d, want nominal 20", g.elapsed[0])
	}

	next, _ = m.Update(TickMsg(start.Add(35 * time.Millisecond)))
	m = next.(Model)
	if len(g.inputs[1].Actions) != 0 {
		t.Errorf("input not cleared between ticks: %v", g.inputs[1].Actions)
	}
	if g.elapsed[1] != 35 {
		t.Errorf("second tick elapsed = %d, want 35", g.elapsed[1])
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	now := time.Unix(1000, 0)

	next, _ := m.Update(runeKey('r'))
	next, _ = next.Update(TickMsg(now))
	m = next.(Model)
	if g.resets != 1 {
		t.Fatalf("restart honored while playing: %d resets", g.resets)
	}

	g.state = core.GameState{Score: 3, Round: 1, GameOver: true}
	next, _ = m.Update(TickMsg(now.Add(time.Second)))
	m = next.(Model)
	if !m.State().GameOver {
		t.Fatal("model did not observe game over")
	}

	next, _ = m.Update(runeKey('r'))
	next, _ = next.Update(TickMsg(now.Add(2 * time.Second)))
	m = next.(Model)
	if g.resets != 2 {
		t.Errorf("expected restart after game over, got %d resets", g.resets)
	}
	if m.State().GameOver {
		t.Error("state still game over after restart")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resize restarted the session")
	}
	if len(g.resizes) != 1 || g.resizes[0] != [2]int{100, 39} {
		t.Errorf("resizes = %v", g.resizes)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	view := ansiEscape.ReplaceAllString(m.View(), "")
	if !strings.Contains(view, "stub board") {
		t.Errorf("view missing game output: %q", view)
	}
	if !strings.Contains(view, "rotate") {
		t.Errorf("view missing help bar: %q", view)
	}
	if g.rendered != 1 {
		t.Errorf("rendered %d times", g.rendered)
	}
}

func TestElapsedMillis(t *testing.T) {
	now := time.Unix(50, 0)

	if got := elapsedMillis(time.Time{}, now, 60); got != 16 {
		t.Errorf("first tick = %d, want 16", got)
	}
	if got := elapsedMillis(now, now.Add(120*time.Millisecond), 60); got != 120 {
		t.Errorf("elapsed = %d, want 120", got)
	}
	if got := elapsedMillis(now, now.Add(-time.Second), 10); got != 100 {
		t.Errorf("clock going backwards = %d, want nominal 100", got)
	}
}
