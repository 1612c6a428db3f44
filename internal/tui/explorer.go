package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/polymd/internal/analysis"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	samplesPerView = 200
	cursorSteps    = 100
	minWindow      = 1e-3
)

// Explorer is an interactive view of one probe's V(r) and F(r).
type Explorer struct {
	title string
	probe analysis.Probe

	rmin, rmax float64
	lo, hi     float64
	cursor     float64
	force      bool

	width  int
	height int
}

// NewExplorer opens on [rmin, rmax] with the cursor in the middle.
func NewExplorer(title string, p analysis.Probe, rmin, rmax float64) Explorer {
	if rmax <= rmin {
		rmax = rmin + 1
	}
	return Explorer{
		title:  title,
		probe:  p,
		rmin:   rmin,
		rmax:   rmax,
		lo:     rmin,
		hi:     rmax,
		cursor: 0.5 * (rmin + rmax),
		width:  80,
		height: 24,
	}
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := (m.hi - m.lo) / cursorSteps
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.cursor = math.Max(m.lo, m.cursor-step)
	case "right", "l":
		m.cursor = math.Min(m.hi, m.cursor+step)
	case "+", "=":
		m.zoom(0.5)
	case "-", "_":
		m.zoom(2)
	case "f":
		m.force = !m.force
	case "s":
		m.probe.Shift = !m.probe.Shift
	case "c":
		if rc := m.probe.Cutoff(); rc > m.lo && rc < m.hi {
			m.cursor = rc
		}
	case "0":
		m.lo, m.hi = m.rmin, m.rmax
		m.cursor = 0.5 * (m.rmin + m.rmax)
	}
	return m, nil
}

// zoom scales the visible window about the cursor, staying inside the
// initial range.
func (m *Explorer) zoom(factor float64) {
	half := 0.5 * (m.hi - m.lo) * factor
	full := 0.5 * (m.rmax - m.rmin)
	half = math.Max(minWindow, math.Min(full, half))

	lo, hi := m.cursor-half, m.cursor+half
	if lo < m.rmin {
		lo, hi = m.rmin, m.rmin+2*half
	}
	if hi > m.rmax {
		lo, hi = m.rmax-2*half, m.rmax
	}
	m.lo, m.hi = lo, hi
}

// Window returns the visible distance range.
func (m Explorer) Window() (lo, hi float64) { return m.lo, m.hi }

func (m Explorer) Cursor() float64 { return m.cursor }

func (m Explorer) View() string {
	cw := m.width - 6
	ch := m.height - 12
	if cw < 40 {
		cw = 40
	}
	if ch < 8 {
		ch = 8
	}

	samples := analysis.Tabulate(m.probe, m.lo, m.hi, samplesPerView)
	at := m.probe.At(m.cursor)
	rc := m.probe.Cutoff()

	var b strings.Builder

	curve := "energy"
	if m.force {
		curve = "force"
	}
	shift := dim.Render("unshifted")
	if m.probe.Shift {
		shift = yellow.Render("shifted")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n", green.Render("●"), cyan.Render(m.title), white.Render(curve), shift))
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", cw)) + "\n")

	plot := analysis.Plot(samples, cw, ch, m.force)
	if plot == "" {
		b.WriteString("\n" + dim.Render("   no interaction in view") + "\n")
	} else {
		col := int((m.cursor - m.lo) / (m.hi - m.lo) * float64(cw-1))
		for _, row := range strings.Split(strings.TrimSuffix(plot, "\n"), "\n") {
			b.WriteString("   " + markColumn(row, col) + "\n")
		}
	}
	b.WriteString(dim.Render(fmt.Sprintf("   %-*.4g%*.4g", cw/2, m.lo, cw-cw/2, m.hi)) + "\n\n")

	status := green.Render("inside")
	if !at.OK {
		status = yellow.Render("outside")
	}
	b.WriteString(fmt.Sprintf("   %s %s  %s %s  %s %s  %s\n",
		dim.Render("r="), white.Render(fmt.Sprintf("%.4f", m.cursor)),
		dim.Render("V="), magenta.Render(fmt.Sprintf("%.6g", at.Energy)),
		dim.Render("F="), magenta.Render(fmt.Sprintf("%.6g", at.Force())),
		status))
	b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("cutoff"), white.Render(fmt.Sprintf("%.4f", rc))))

	if spark := sparkline(analysis.Forces(samples, 0), 24); spark != "" {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("F"), cyan.Render(spark)))
	}

	b.WriteString("\n" + dim.Render("   ←→ move  ± zoom  f force  s shift  c cutoff  0 reset  q quit") + "\n")

	return b.String()
}

// markColumn draws the cursor into col of one plot row.
func markColumn(row string, col int) string {
	runes := []rune(row)
	if col < 0 || col >= len(runes) {
		return row
	}
	if runes[col] == ' ' || runes[col] == '─' {
		runes[col] = '│'
	}
	return string(runes)
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		idx = max(0, min(7, idx))
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Run opens the explorer on the alternate screen until the user quits.
func Run(m Explorer) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
