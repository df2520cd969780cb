// Package viz renders simulation snapshots in the terminal: a Braille
// canvas for trajectories and a bubbletea program for live animation.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/horizon/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

var (
	canvasStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	photonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	capturedText = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model animates a driver frame by frame. The driver owns all
// simulation state; the model only reads snapshots.
type Model struct {
	driver  *sim.Driver
	rebuild func() (*sim.Driver, error)

	ticks   int
	maxTick int
	running bool
	done    bool

	snap          sim.Snapshot
	canvas        *Canvas
	limit         float64
	energyHistory []float64
}

// NewModel wraps a driver for live viewing. rebuild returns a fresh
// driver for the reset key; maxTick stops the animation (0 = run
// until quit). limit is the world half-extent mapped onto the canvas.
func NewModel(driver *sim.Driver, rebuild func() (*sim.Driver, error), maxTick int, limit float64) Model {
	return Model{
		driver:        driver,
		rebuild:       rebuild,
		maxTick:       maxTick,
		running:       true,
		snap:          driver.Snapshot(),
		canvas:        NewCanvas(width, height),
		limit:         limit,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			if !m.done {
				m.step()
			}
		case "r":
			if d, err := m.rebuild(); err == nil {
				m.driver = d
				m.snap = d.Snapshot()
				m.ticks = 0
				m.done = false
				m.energyHistory = m.energyHistory[:0]
			}
		}
	case TickMsg:
		if m.running && !m.done {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the simulation by one tick.
func (m *Model) step() {
	m.snap = m.driver.Tick()
	m.ticks++
	if m.maxTick > 0 && m.ticks >= m.maxTick {
		m.done = true
	}

	body := m.driver.Body()
	energy := 0.0
	for _, p := range m.snap.Particles {
		if p.Photon {
			continue
		}
		ke := 0.5 * p.Mass * p.Vel.LenSqr()
		if r := p.Pos.Sub(body.Pos).Len(); r > 0 {
			energy += ke - body.G*body.M*p.Mass/r
		} else {
			energy += ke
		}
	}
	m.energyHistory = append(m.energyHistory, energy)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// View renders the canvas and the stats panel.
func (m Model) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render("HORIZON") + "\n")

	status := "RUNNING"
	if m.done {
		status = "DONE"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	var stats strings.Builder
	stats.WriteString(labelStyle.Render("tick") + valueStyle.Render(fmt.Sprintf("%d", m.snap.Tick)) + "\n")
	stats.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.1f", m.snap.Time)) + "\n")
	stats.WriteString(labelStyle.Render("r_s") + valueStyle.Render(fmt.Sprintf("%.3f", m.snap.Rs)) + "\n")
	stats.WriteString(labelStyle.Render("captured") + valueStyle.Render(fmt.Sprintf("%d/%d", m.snap.Captures(), len(m.snap.Particles))) + "\n\n")

	for i, p := range m.snap.Particles {
		kind := "mass"
		style := valueStyle
		if p.Photon {
			kind = "photon"
			style = photonStyle
		}
		line := fmt.Sprintf("%2d %-6s r=%7.1f", i, kind, p.Pos.Sub(m.snap.Body).Len())
		if p.Captured {
			line += "  captured"
			style = capturedText
		}
		stats.WriteString(style.Render(line) + "\n")
	}

	if len(m.energyHistory) > 2 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(5),
			asciigraph.Width(36),
			asciigraph.Caption("total energy (massive)"),
		)
		stats.WriteString(graphStyle.Render(graph))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)
	s.WriteString(row)
	s.WriteString(helpStyle.Render("space pause · s step · r reset · q quit"))

	return s.String()
}

// draw projects paths, particles and the horizon onto the canvas.
func (m Model) draw() {
	m.canvas.Clear()

	subW := float64(width * 2)
	subH := float64(height * 4)
	toPix := func(x, y float64) (int, int) {
		px := (x - m.snap.Body.X() + m.limit) / (2 * m.limit) * subW
		py := (m.limit - (y - m.snap.Body.Y())) / (2 * m.limit) * subH
		return int(px), int(py)
	}

	// Horizon: radius in sub-pixels along x. Braille cells are not
	// square so the circle is slightly flattened; acceptable at this
	// resolution.
	cx, cy := toPix(m.snap.Body.X(), m.snap.Body.Y())
	m.canvas.DrawCircle(cx, cy, int(m.snap.Rs/(2*m.limit)*subW))

	for _, p := range m.snap.Particles {
		for i := 1; i < len(p.Path); i++ {
			x0, y0 := toPix(p.Path[i-1].X(), p.Path[i-1].Y())
			x1, y1 := toPix(p.Path[i].X(), p.Path[i].Y())
			m.canvas.DrawLine(x0, y0, x1, y1)
		}
		px, py := toPix(p.Pos.X(), p.Pos.Y())
		m.canvas.Set(px, py)
	}
}
