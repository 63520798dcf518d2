// Package tui provides an interactive terminal playground for poking at
// a live vector: key-driven operations, a slot strip showing occupied
// versus reserved storage, and a rolling capacity chart.
package tui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/nvail/veclab/internal/viz"
	"github.com/nvail/veclab/vec"
)

var (
	header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)

const historyWindow = 60

type model struct {
	v      *vec.Vector[int]
	rng    *rand.Rand
	cursor int

	steps    int
	reallocs int
	rejected int
	capHist  []float64
	sizeHist []float64

	lastOp  string
	lastErr string

	width  int
	height int
}

func NewPlayground(seed int64) model {
	return model{
		v:        vec.New[int](),
		rng:      rand.New(rand.NewSource(seed)),
		capHist:  make([]float64, 0, historyWindow),
		sizeHist: make([]float64, 0, historyWindow),
		width:    80,
		height:   24,
	}
}

// Run launches the playground and blocks until the user quits.
func Run(seed int64) error {
	_, err := tea.NewProgram(NewPlayground(seed), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "right", "l":
		if m.cursor < m.v.Size() {
			m.cursor++
		}
		return m, nil

	case "p":
		m.apply("push", func() error {
			m.v.PushBack(m.rng.Intn(100))
			return nil
		})
		return m, nil

	case "o":
		m.apply("pop", m.v.PopBack)
		return m, nil

	case "i":
		m.apply("insert", func() error {
			_, err := m.v.Insert(m.cursorPos(), m.rng.Intn(100))
			return err
		})
		return m, nil

	case "x", "e":
		m.apply("erase", func() error {
			_, err := m.v.Erase(m.cursorPos())
			return err
		})
		return m, nil

	case "r":
		m.apply("reserve", func() error {
			m.v.Reserve(m.v.Cap() + 8)
			return nil
		})
		return m, nil

	case "s":
		m.apply("shrink", func() error {
			m.v.ShrinkToFit()
			return nil
		})
		return m, nil

	case "c":
		m.apply("clear", func() error {
			m.v.Clear()
			return nil
		})
		return m, nil
	}
	return m, nil
}

// apply runs one operation, tracks realloc/rejection counters and keeps
// the rolling history. The cursor is clamped afterwards so it always
// denotes a valid insert offset.
func (m *model) apply(name string, op func() error) {
	capBefore := m.v.Cap()
	err := op()

	m.steps++
	m.lastOp = name
	if err != nil {
		m.rejected++
		m.lastErr = err.Error()
	} else {
		m.lastErr = ""
	}
	if m.v.Cap() != capBefore {
		m.reallocs++
	}
	if m.cursor > m.v.Size() {
		m.cursor = m.v.Size()
	}

	m.capHist = append(m.capHist, float64(m.v.Cap()))
	m.sizeHist = append(m.sizeHist, float64(m.v.Size()))
	if len(m.capHist) > historyWindow {
		m.capHist = m.capHist[1:]
		m.sizeHist = m.sizeHist[1:]
	}
}

func (m model) cursorPos() vec.ConstIterator[int] {
	it := m.v.CBegin()
	for i := 0; i < m.cursor; i++ {
		it.Next()
	}
	return it
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(header.Render("veclab playground") + "\n\n")

	b.WriteString(panel.Render(viz.CellStrip(m.v, m.cursor, 32)) + "\n\n")

	status := fmt.Sprintf("size %d  cap %d  steps %d  reallocs %d  rejected %d",
		m.v.Size(), m.v.Cap(), m.steps, m.reallocs, m.rejected)
	b.WriteString(viz.MetricValue.Render(status) + "\n")

	if m.lastOp != "" {
		b.WriteString(viz.Subtle.Render("last op: "+m.lastOp) + "\n")
	}
	if m.lastErr != "" {
		b.WriteString(viz.ErrorText.Render("rejected: "+m.lastErr) + "\n")
	}

	if len(m.capHist) >= 2 {
		chart := asciigraph.PlotMany(
			[][]float64{m.capHist, m.sizeHist},
			asciigraph.Height(8),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Cyan),
		)
		b.WriteString("\n" + chart + "\n")
		b.WriteString(viz.Subtle.Render("capacity (red) vs size (cyan)") + "\n")
	}

	b.WriteString("\n" + viz.KeyHint.Render(
		"p push  o pop  i insert  x erase  r reserve+8  s shrink  c clear  ←/→ cursor  q quit"))
	return b.String()
}
