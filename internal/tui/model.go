package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simon/vigil/internal/session"
)

// SessionService lists and kills sessions on the remote host. The picker
// never talks to ssh directly, so the model stays testable.
type SessionService interface {
	List() ([]session.Session, error)
	Kill(name string) error
}

type sessionsMsg struct {
	sessions []session.Session
	err      error
}

type killDoneMsg struct {
	err error
}

type Model struct {
	svc           SessionService
	sessions      []session.Session
	filtered      []session.Session
	cursor        int
	input         textinput.Model
	spin          spinner.Model
	loading       bool
	confirmKill   string // session pending kill confirmation, "" = none
	width, height int
	err           error
	AttachTarget  string // set when user confirms attach
	NoSessions    bool   // set when the remote host has nothing to pick
	quitting      bool
}

func NewModel(svc SessionService) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter sessions..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return Model{
		svc:     svc,
		input:   ti,
		spin:    sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, m.fetchSessions)
}

func (m Model) fetchSessions() tea.Msg {
	sessions, err := m.svc.List()
	return sessionsMsg{sessions: sessions, err: err}
}

func (m Model) killCmd(name string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return killDoneMsg{err: svc.Kill(name)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case sessionsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.sessions = msg.sessions
		session.Sort(m.sessions)
		m.applyFilter()
		if len(m.sessions) == 0 {
			m.NoSessions = true
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case killDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.fetchSessions, m.spin.Tick)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits
	if key.Matches(msg, keys.CtrlC) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, keys.Escape) {
		if m.confirmKill != "" {
			m.confirmKill = ""
			return m, nil
		}
		m.input.SetValue("")
		m.applyFilter()
		return m, nil
	}

	// If kill confirmation is pending, only Enter proceeds
	if m.confirmKill != "" {
		if key.Matches(msg, keys.Enter) {
			return m.executeKill()
		}
		// Any other key cancels
		m.confirmKill = ""
		return m, nil
	}

	if key.Matches(msg, keys.Kill) {
		if sel := m.selectedSession(); sel != nil {
			m.confirmKill = sel.Name
		}
		return m, nil
	}

	if key.Matches(msg, keys.Refresh) {
		m.loading = true
		return m, tea.Batch(m.fetchSessions, m.spin.Tick)
	}

	// q quits only when the filter is empty
	if key.Matches(msg, keys.Quit) && m.input.Value() == "" {
		m.quitting = true
		return m, tea.Quit
	}

	// Navigation: only when input is empty
	if m.input.Value() == "" {
		if key.Matches(msg, keys.Up) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
		if key.Matches(msg, keys.Down) {
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	if key.Matches(msg, keys.Enter) {
		if sel := m.selectedSession(); sel != nil {
			m.AttachTarget = sel.Name
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Default: update text input and refilter
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.MouseButtonWheelDown:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m Model) executeKill() (tea.Model, tea.Cmd) {
	name := m.confirmKill
	m.confirmKill = ""
	if name == "" {
		return m, nil
	}
	return m, m.killCmd(name)
}

func (m *Model) applyFilter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.filtered = m.sessions
	} else {
		lower := strings.ToLower(query)
		m.filtered = nil
		for _, s := range m.sessions {
			if strings.Contains(strings.ToLower(s.Name), lower) {
				m.filtered = append(m.filtered, s)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m Model) selectedSession() *session.Session {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	s := m.filtered[m.cursor]
	return &s
}
