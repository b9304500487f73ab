package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/analysis"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/pipeline"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/spqr"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// =============================================================================
// SimulateModel - Interactive failure simulation
// =============================================================================

// analyzedMsg carries the analysis of one disabled-set generation.
type analyzedMsg struct {
	gen    int
	result analysis.Result
	counts spqr.Stats
	err    error
}

// SimulateModel is the bubbletea model of the failure simulator. Toggling an
// edge re-runs the analysis and decomposition with that edge treated as
// failed; results of superseded generations are dropped.
type SimulateModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	opts   pipeline.Options

	Graph    graph.Graph
	Disabled graph.EdgeSet
	Cursor   int
	Offset   int
	Height   int

	Result *analysis.Result
	Counts spqr.Stats
	Err    error

	gen     int
	busy    bool
	spinner spinner.Model
}

// NewSimulateModel creates a simulator over g.
func NewSimulateModel(ctx context.Context, r *pipeline.Runner, g graph.Graph, opts pipeline.Options) SimulateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleIconSpinner
	return SimulateModel{
		ctx:      ctx,
		runner:   r,
		opts:     opts,
		Graph:    g,
		Disabled: graph.NewEdgeSet(opts.Disabled...),
		Height:   15,
		busy:     true,
		spinner:  s,
	}
}

func (m SimulateModel) Init() tea.Cmd {
	return tea.Batch(m.analyze(), m.spinner.Tick)
}

// analyze returns a command analyzing the current disabled set.
func (m SimulateModel) analyze() tea.Cmd {
	gen := m.gen
	opts := m.opts
	opts.Disabled = m.Disabled.IDs()
	ctx, r, g := m.ctx, m.runner, m.Graph
	return func() tea.Msg {
		res, _, err := r.AnalyzeWithCacheInfo(ctx, g, opts)
		if err != nil {
			return analyzedMsg{gen: gen, err: err}
		}
		tree, _, err := r.DecomposeWithCacheInfo(ctx, g, opts)
		if err != nil {
			return analyzedMsg{gen: gen, err: err}
		}
		return analyzedMsg{gen: gen, result: res, counts: tree.Stats()}
	}
}

func (m SimulateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Graph.Edges)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "enter", "x":
			if len(m.Graph.Edges) == 0 {
				return m, nil
			}
			id := m.Graph.Edges[m.Cursor].ID
			next := graph.NewEdgeSet(m.Disabled.IDs()...)
			if next.Has(id) {
				delete(next, id)
			} else {
				next.Add(id)
			}
			m.Disabled = next
			return m.rerun()
		case "r":
			m.Disabled = graph.NewEdgeSet()
			return m.rerun()
		}
	case analyzedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.busy = false
		m.Err = msg.err
		if msg.err == nil {
			res := msg.result
			m.Result = &res
			m.Counts = msg.counts
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-14, 5)
	}
	return m, nil
}

func (m SimulateModel) rerun() (tea.Model, tea.Cmd) {
	m.gen++
	m.busy = true
	return m, tea.Batch(m.analyze(), m.spinner.Tick)
}

func (m SimulateModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Failure Simulation"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space fail/restore link  r restore all  q quit"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.edgeTable(), " ", m.summary()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d failed", min(m.Cursor+1, len(m.Graph.Edges)), len(m.Graph.Edges), len(m.Disabled))))
	return b.String()
}

func (m SimulateModel) edgeTable() string {
	bridges := graph.NewEdgeSet()
	if m.Result != nil {
		bridges = graph.NewEdgeSet(m.Result.BridgeIDs()...)
	}

	end := min(m.Offset+m.Height, len(m.Graph.Edges))
	var rows [][]string
	for i := m.Offset; i < end; i++ {
		e := m.Graph.Edges[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		state := "up"
		switch {
		case m.Disabled.Has(e.ID):
			state = "FAILED"
		case bridges.Has(e.ID):
			state = "bridge"
		}
		rows = append(rows, []string{cursor, e.ID, nodeLabel(m.Graph, e.Source) + " ↔ " + nodeLabel(m.Graph, e.Target), state})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Link", "Between", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Graph.Edges) {
				return lipgloss.NewStyle()
			}
			id := m.Graph.Edges[idx].ID
			base := lipgloss.NewStyle()
			switch {
			case m.Disabled.Has(id):
				base = base.Foreground(colorYellow)
			case bridges.Has(id):
				base = base.Foreground(colorRed)
			}
			if idx == m.Cursor {
				return base.Inherit(listSelectedStyle)
			}
			return base
		}).
		Render()
}

func (m SimulateModel) summary() string {
	var b strings.Builder
	switch {
	case m.Err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error())
	case m.Result == nil:
		b.WriteString(m.spinner.View() + " analyzing...")
	default:
		res := m.Result
		score := StyleSuccess
		if res.RedundancyScore < 50 {
			score = StyleCritical
		}
		lines := []string{
			"Redundancy  " + score.Render(strconv.Itoa(res.RedundancyScore)+"/100"),
			"Connected   " + StyleValue.Render(fmt.Sprintf("%t (%d)", res.Connected, res.Components)),
			"Bridges     " + StyleValue.Render(strconv.Itoa(len(res.Bridges))),
			"Cut nodes   " + StyleValue.Render(joinOrNone(res.ArticulationIDs())),
			"Tree        " + StyleValue.Render(fmt.Sprintf("S %d · P %d · R %d", m.Counts.S, m.Counts.P, m.Counts.R)),
		}
		b.WriteString(strings.Join(lines, "\n"))
		if m.busy {
			b.WriteString("\n" + m.spinner.View() + " updating...")
		}
	}
	return panelStyle.Render(b.String())
}
