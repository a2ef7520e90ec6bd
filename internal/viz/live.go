package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/config"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/physics"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/sim"
)

const (
	canvasWidth     = 60
	canvasHeight    = 24
	historyCapacity = 600

	// World extent shown by the canvas; matches the visual frame of
	// the windowed renderer.
	worldExtent = 1.0
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(38)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the terminal live view of the particle simulation.
type Model struct {
	sim           *sim.Simulator
	cfg           *config.Config
	params        physics.Params
	canvas        *Canvas
	running       bool
	showHelp      bool
	energyHistory []float64
}

func NewModel(cfg *config.Config) (Model, error) {
	ps, err := engine.Spawn(cfg.SpawnOptions())
	if err != nil {
		return Model{}, err
	}

	return Model{
		sim:           sim.New(ps, cfg.PhysicsParams()),
		cfg:           cfg,
		params:        cfg.PhysicsParams(),
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if ps, err := engine.Spawn(m.cfg.SpawnOptions()); err == nil {
				m.sim.Reset(ps)
				m.energyHistory = m.energyHistory[:0]
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.sim.Step(m.cfg.Dt)

			energy := physics.TotalEnergy(m.sim.Particles(), m.params)
			m.energyHistory = append(m.energyHistory, energy)
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	ps := m.sim.Particles()
	for i := range ps {
		m.canvas.PlotWorld(ps[i].Pos.X, ps[i].Pos.Y, worldExtent)
	}

	mv := physics.Momentum(ps)
	stats := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("gravity"),
		statsRow("time", fmt.Sprintf("%.2f s", m.sim.Time())),
		statsRow("particles", fmt.Sprintf("%d", len(ps))),
		statsRow("kinetic", fmt.Sprintf("%.5f", physics.KineticEnergy(ps))),
		statsRow("total E", fmt.Sprintf("%.5f", physics.TotalEnergy(ps, m.params))),
		statsRow("|momentum|", fmt.Sprintf("%.5f", mv.Len())),
		statsRow("state", stateLabel(m.running)),
	)

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)

	if len(m.energyHistory) > 1 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption("total energy"),
		)
		view = lipgloss.JoinVertical(lipgloss.Left, view, graphStyle.Render(graph))
	}

	help := "space pause · r reset · q quit"
	if m.showHelp {
		help = "space: pause/resume · r: respawn particles · ?: toggle help · q: quit"
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, helpStyle.Render(help))
}

func statsRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func stateLabel(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}

// RunLive starts the bubbletea program for the live terminal view.
func RunLive(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
