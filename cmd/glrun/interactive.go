package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/glbridge/backend/headless"
	"github.com/wippyai/glbridge/bridge"
	"github.com/wippyai/glbridge/glapi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	seqStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const defaultListHeight = 20

type viewerModel struct {
	err      error
	ctx      context.Context
	session  *session
	filename string
	status   string
	calls    []headless.Call
	visible  []headless.Call
	stats    []bridge.TableStats
	filter   textinput.Model
	offset   int
	height   int
	frames   int
	started  bool
	running  bool
}

type startedMsg struct {
	err error
}

type frameMsg struct {
	err error
	ok  bool
}

func newViewerModel(ctx context.Context, s *session, filename string) *viewerModel {
	ti := textinput.New()
	ti.Placeholder = "filter calls"
	ti.Prompt = "/ "
	ti.Width = 40

	return &viewerModel{
		ctx:      ctx,
		session:  s,
		filename: filename,
		filter:   ti,
		height:   defaultListHeight,
	}
}

func (m *viewerModel) Init() tea.Cmd {
	return m.start
}

func (m *viewerModel) start() tea.Msg {
	return startedMsg{err: m.session.start(m.ctx)}
}

func (m *viewerModel) runFrame() tea.Msg {
	ok, err := m.session.frame(m.ctx)
	return frameMsg{ok: ok, err: err}
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filter.Focused() {
			switch msg.String() {
			case "esc", "enter":
				m.filter.Blur()
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "/":
			m.filter.Focus()
			return m, textinput.Blink
		case "up", "k":
			m.scroll(-1)
		case "down", "j":
			m.scroll(1)
		case "pgup":
			m.scroll(-m.height)
		case "pgdown", " ":
			m.scroll(m.height)
		case "g":
			m.offset = 0
		case "G":
			m.scroll(len(m.visible))
		case "n":
			// frames share one guest and bridge, so never overlap
			if m.started && !m.running {
				m.running = true
				m.status = "running frame..."
				return m, m.runFrame
			}
		case "r":
			m.session.recorder.Reset()
			m.refresh()
			m.status = "trace cleared"
		}

	case tea.WindowSizeMsg:
		// title, filter, help and panel borders
		m.height = max(msg.Height-8, 3)
		m.scroll(0)

	case startedMsg:
		m.started = true
		m.err = msg.err
		m.refresh()
		if msg.err == nil {
			m.status = "entry point finished"
			if m.session.entry == "" {
				m.status = "no entry point"
			}
		}

	case frameMsg:
		m.running = false
		m.err = msg.err
		switch {
		case !msg.ok:
			m.status = "guest has no frame export"
		case msg.err == nil:
			m.frames++
			m.status = fmt.Sprintf("frame %d done", m.frames)
		}
		m.refresh()
	}

	return m, nil
}

func (m *viewerModel) refresh() {
	m.calls = m.session.recorder.Trace()
	m.stats = m.session.env.Bridge().Stats()
	m.applyFilter()
}

func (m *viewerModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		m.visible = m.calls
	} else {
		m.visible = m.visible[:0:0]
		for _, c := range m.calls {
			if strings.Contains(strings.ToLower(c.String()), q) {
				m.visible = append(m.visible, c)
			}
		}
	}
	m.scroll(0)
}

func (m *viewerModel) scroll(delta int) {
	m.offset += delta
	if limit := len(m.visible) - m.height; m.offset > limit {
		m.offset = limit
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *viewerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GL Trace"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	if !m.started {
		b.WriteString("Running entry point...\n")
		return b.String()
	}

	end := min(m.offset+m.height, len(m.visible))
	var list strings.Builder
	for _, c := range m.visible[m.offset:end] {
		list.WriteString(seqStyle.Render(fmt.Sprintf("%6d ", c.Seq)))
		list.WriteString(funcStyle.Render(c.Name))
		list.WriteString(strings.TrimPrefix(c.String(), c.Name))
		list.WriteString("\n")
	}
	if len(m.visible) == 0 {
		list.WriteString("no calls\n")
	}

	var side strings.Builder
	side.WriteString("live handles\n\n")
	for _, st := range m.stats {
		fmt.Fprintf(&side, "%-17s %4d\n", st.Kind, st.Live)
	}
	fmt.Fprintf(&side, "\ncalls  %d/%d\n", len(m.visible), len(m.calls))
	fmt.Fprintf(&side, "draws  %d\n", m.session.recorder.Draws())
	fmt.Fprintf(&side, "error  %s\n", glapi.ErrorName(m.session.recorder.PendingError()))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(strings.TrimSuffix(list.String(), "\n")),
		" ",
		panelStyle.Render(strings.TrimSuffix(side.String(), "\n"))))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ scroll • / filter • n frame • r clear • q quit"))

	return b.String()
}

func runInteractive(ctx context.Context, s *session, filename string) error {
	p := tea.NewProgram(newViewerModel(ctx, s, filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
