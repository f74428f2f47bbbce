package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"cardreveal/internal/domain"
	"cardreveal/internal/game"
	"cardreveal/internal/services/reveal"
)

// Exporter is the export side the model drives.
type Exporter interface {
	Save(ctx context.Context, view domain.RevealView) (string, error)
	Share(ctx context.Context, platform domain.Platform, view domain.RevealView) (reveal.Result, error)
}

type saveDoneMsg struct {
	ticket game.Ticket
	path   string
	err    error
}

type shareDoneMsg struct {
	ticket game.Ticket
	result reveal.Result
	err    error
}

// Model is the bubbletea model for one play session.
type Model struct {
	ctx     context.Context
	session *game.Session
	export  Exporter
	logger  *zap.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	cursor  int
	pending int
	status  string
	failed  bool
	link    string
}

// New returns a model playing session and exporting through export.
func New(ctx context.Context, session *game.Session, export Exporter, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &Model{
		ctx:     ctx,
		session: session,
		export:  export,
		logger:  logger,
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: sp,
	}
}

// Session exposes the underlying round, mainly for tests.
func (m *Model) Session() *game.Session { return m.session }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case saveDoneMsg:
		m.pending--
		if !m.session.Current(msg.ticket) {
			m.logger.Debug("dropping stale save result")
			return m, nil
		}
		if msg.err != nil {
			m.setError("save failed: " + msg.err.Error())
			return m, nil
		}
		m.setStatus("saved " + msg.path)
	case shareDoneMsg:
		m.pending--
		if !m.session.Current(msg.ticket) {
			m.logger.Debug("dropping stale share result")
			return m, nil
		}
		if msg.err != nil {
			m.setError("share failed: " + msg.err.Error())
			return m, nil
		}
		m.link = msg.result.URL
		if msg.result.Degraded != nil {
			m.setError("image unavailable, sharing link only")
		} else {
			m.setStatus("shared to " + msg.result.Platform.String())
		}
	}
	return m, nil
}

func (m *Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(k, m.keys.Up):
		m.move(-3)
	case key.Matches(k, m.keys.Down):
		m.move(3)
	case key.Matches(k, m.keys.Left):
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case key.Matches(k, m.keys.Right):
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case key.Matches(k, m.keys.Toggle):
		if m.session.Toggle(m.cursor) && m.session.State() == domain.StateRevealed {
			m.setStatus("revealed")
		}
	case key.Matches(k, m.keys.Close):
		m.session.CloseModal()
	case key.Matches(k, m.keys.Reset):
		if m.session.Reset() {
			m.link = ""
			m.setStatus("")
		}
	case key.Matches(k, m.keys.Save):
		if m.session.ModalOpen() {
			return m, m.start(m.saveCmd())
		}
	case key.Matches(k, m.keys.ShareX):
		return m, m.share(domain.PlatformX)
	case key.Matches(k, m.keys.ShareF):
		return m, m.share(domain.PlatformFacebook)
	case key.Matches(k, m.keys.ShareT):
		return m, m.share(domain.PlatformTelegram)
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if next := m.cursor + delta; next >= 0 && next < domain.SlotCount {
		m.cursor = next
	}
}

func (m *Model) share(p domain.Platform) tea.Cmd {
	if !m.session.ModalOpen() {
		return nil
	}
	return m.start(m.shareCmd(p))
}

// start marks a background job as pending and runs it alongside the
// spinner.
func (m *Model) start(job tea.Cmd) tea.Cmd {
	m.pending++
	m.setStatus("working...")
	if m.pending == 1 {
		return tea.Batch(job, m.spinner.Tick)
	}
	return job
}

func (m *Model) saveCmd() tea.Cmd {
	ticket, view, ctx, export := m.session.Ticket(), m.session.View(), m.ctx, m.export
	return func() tea.Msg {
		path, err := export.Save(ctx, view)
		return saveDoneMsg{ticket: ticket, path: path, err: err}
	}
}

func (m *Model) shareCmd(p domain.Platform) tea.Cmd {
	ticket, view, ctx, export := m.session.Ticket(), m.session.View(), m.ctx, m.export
	return func() tea.Msg {
		res, err := export.Share(ctx, p, view)
		return shareDoneMsg{ticket: ticket, result: res, err: err}
	}
}

func (m *Model) setStatus(s string) { m.status, m.failed = s, false }
func (m *Model) setError(s string)  { m.status, m.failed = s, true }

// Status returns the current status line.
func (m *Model) Status() string { return m.status }

// Link returns the last share URL produced in this round.
func (m *Model) Link() string { return m.link }

// Cursor returns the focused slot.
func (m *Model) Cursor() int { return m.cursor }

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick three cards"))
	b.WriteString("\n\n")
	b.WriteString(m.board())
	b.WriteString("\n")

	if m.session.ModalOpen() {
		b.WriteString(m.panel())
		b.WriteString("\n")
	}

	if m.status != "" || m.pending > 0 {
		line := m.status
		if m.pending > 0 {
			line = m.spinner.View() + " " + line
		}
		if m.failed {
			b.WriteString(errorStyle.Render(line))
		} else {
			b.WriteString(statusStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if m.link != "" {
		b.WriteString(linkStyle.Render(m.link))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) board() string {
	slots := m.session.Slots()
	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 0, 3)
		for c := 0; c < 3; c++ {
			cells = append(cells, m.card(slots[r*3+c]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) card(s domain.Slot) string {
	style := cardStyle
	switch {
	case s.Selected:
		style = selectedCardStyle
	case s.Index == m.cursor:
		style = cursorCardStyle
	}
	if s.Selected && s.Index == m.cursor {
		style = style.Underline(true)
	}

	body := "?"
	if s.Content != nil {
		body = kindStyle.Render(string(s.Content.Kind())) + "\n" + describe(s.Content)
	}
	return style.Render(body)
}

func (m *Model) panel() string {
	view := m.session.View()
	var parts []string
	if view.Image != "" {
		parts = append(parts, "image  "+view.Image)
	} else {
		parts = append(parts, "image  (placeholder)")
	}
	if view.Feature != "" {
		parts = append(parts, pillStyle.Render(view.Feature))
	}
	if view.Prompt != "" {
		parts = append(parts, view.Prompt)
	}
	parts = append(parts, "", statusStyle.Render("s save · x/f/t share · esc close · r again"))
	return panelStyle.Render(strings.Join(parts, "\n"))
}

// describe returns the card face text for c.
func describe(c domain.Content) string {
	switch c := c.(type) {
	case domain.ImageContent:
		return c.Ref
	case domain.TextContent:
		return c.Text
	case domain.FeatureContent:
		return c.Feature
	default:
		panic(fmt.Sprintf("unhandled content type %T", c))
	}
}

var _ tea.Model = (*Model)(nil)
