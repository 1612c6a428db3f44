package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/polymd/internal/analysis"
	"github.com/san-kum/polymd/internal/pair"
)

func testExplorer(t *testing.T) Explorer {
	t.Helper()
	pot, err := pair.NewFixedPotential(pair.KindPoly12, pair.NewPoly12Params(1.0, 0.2, 1.25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := analysis.Probe{Pot: pot, Attr: pair.Attributes{Di: 1, Dj: 1}}
	return NewExplorer("polydisperse12", p, 0.8, 2.0)
}

func press(m Explorer, key tea.KeyMsg) (Explorer, tea.Cmd) {
	next, cmd := m.Update(key)
	return next.(Explorer), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewExplorer(t *testing.T) {
	m := testExplorer(t)
	lo, hi := m.Window()
	if lo != 0.8 || hi != 2.0 {
		t.Errorf("expected window [0.8, 2], got [%g, %g]", lo, hi)
	}
	if math.Abs(m.Cursor()-1.4) > 1e-12 {
		t.Errorf("expected cursor 1.4, got %g", m.Cursor())
	}

	m = NewExplorer("x", m.probe, 2, 1)
	if lo, hi := m.Window(); hi <= lo {
		t.Errorf("expected an empty range to be widened, got [%g, %g]", lo, hi)
	}
}

func TestExplorerMoveCursor(t *testing.T) {
	m := testExplorer(t)
	start := m.Cursor()

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if math.Abs(m.Cursor()-(start+0.012)) > 1e-12 {
		t.Errorf("expected cursor %g, got %g", start+0.012, m.Cursor())
	}
	m, _ = press(m, runes("h"))
	if math.Abs(m.Cursor()-start) > 1e-12 {
		t.Errorf("expected cursor back at %g, got %g", start, m.Cursor())
	}

	for i := 0; i < 200; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.Cursor() != 0.8 {
		t.Errorf("expected cursor clamped to 0.8, got %g", m.Cursor())
	}
}

func TestExplorerZoom(t *testing.T) {
	m := testExplorer(t)

	m, _ = press(m, runes("+"))
	lo, hi := m.Window()
	if math.Abs(lo-1.1) > 1e-12 || math.Abs(hi-1.7) > 1e-12 {
		t.Errorf("expected window [1.1, 1.7], got [%g, %g]", lo, hi)
	}

	m, _ = press(m, runes("-"))
	m, _ = press(m, runes("-"))
	lo, hi = m.Window()
	if math.Abs(lo-0.8) > 1e-12 || math.Abs(hi-2.0) > 1e-12 {
		t.Errorf("expected zoom out to stop at [0.8, 2], got [%g, %g]", lo, hi)
	}

	for i := 0; i < 30; i++ {
		m, _ = press(m, runes("+"))
	}
	lo, hi = m.Window()
	if hi-lo < 2*minWindow-1e-12 {
		t.Errorf("expected window no narrower than %g, got %g", 2*minWindow, hi-lo)
	}

	m, _ = press(m, runes("0"))
	if lo, hi := m.Window(); lo != 0.8 || hi != 2.0 {
		t.Errorf("expected reset to [0.8, 2], got [%g, %g]", lo, hi)
	}
}

func TestExplorerZoomAtEdge(t *testing.T) {
	m := testExplorer(t)
	for i := 0; i < 100; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	m, _ = press(m, runes("+"))
	lo, hi := m.Window()
	if hi != 2.0 || math.Abs(lo-1.4) > 1e-12 {
		t.Errorf("expected window pinned to the upper edge, got [%g, %g]", lo, hi)
	}
}

func TestExplorerToggles(t *testing.T) {
	m := testExplorer(t)

	m, _ = press(m, runes("f"))
	if !m.force {
		t.Error("expected f to switch to the force curve")
	}
	m, _ = press(m, runes("s"))
	if !m.probe.Shift {
		t.Error("expected s to enable the energy shift")
	}
	m, _ = press(m, runes("c"))
	if math.Abs(m.Cursor()-1.25) > 1e-12 {
		t.Errorf("expected cursor at the cutoff 1.25, got %g", m.Cursor())
	}
}

func TestExplorerQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := press(testExplorer(t), key)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key.String())
		}
	}
}

func TestExplorerWindowSize(t *testing.T) {
	m := testExplorer(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Explorer)
	if m.width != 120 || m.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.width, m.height)
	}
}

func TestExplorerView(t *testing.T) {
	m := testExplorer(t)
	view := m.View()

	for _, want := range []string{"polydisperse12", "energy", "cutoff", "1.2500", "outside", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	m, _ = press(m, runes("c"))
	for i := 0; i < 5; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	m, _ = press(m, runes("f"))
	view = m.View()
	if !strings.Contains(view, "inside") || !strings.Contains(view, "force") {
		t.Error("expected the force curve with the cursor inside the cutoff")
	}
	if !strings.Contains(view, "│") {
		t.Error("expected the cursor column to be drawn")
	}
}

func TestExplorerViewEmpty(t *testing.T) {
	p := analysis.Probe{Pot: pair.Potential{}}
	view := NewExplorer("off", p, 1, 2).View()
	if !strings.Contains(view, "no interaction in view") {
		t.Error("expected an empty view for the disabled potential")
	}
}

func TestSparkline(t *testing.T) {
	if sparkline(nil, 10) != "" {
		t.Error("expected empty sparkline for no data")
	}
	s := sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	if s != "▁▂▃▄▅▆▇█" {
		t.Errorf("expected a rising ramp, got %s", s)
	}
	if got := len([]rune(sparkline(make([]float64, 100), 24))); got != 24 {
		t.Errorf("expected 24 runes, got %d", got)
	}
}

func TestMarkColumn(t *testing.T) {
	if got := markColumn("  • ", 1); got != " │• " {
		t.Errorf("expected cursor drawn, got %q", got)
	}
	if got := markColumn("  • ", 2); got != "  • " {
		t.Errorf("expected points to win over the cursor, got %q", got)
	}
	if got := markColumn("ab", 5); got != "ab" {
		t.Errorf("expected out of range column ignored, got %q", got)
	}
}
