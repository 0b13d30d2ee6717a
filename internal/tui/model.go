package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/diogo/geminichat/internal/render"
)

// Separator is printed after every exchange in the transcript
var Separator = strings.Repeat("-", 30)

// Session is the conversation the shell submits to
type Session interface {
	Submit(ctx context.Context, text string) (string, error)
	LastReply() string
}

// Config carries the shell's dependencies and display settings
type Config struct {
	ModelName string
	Theme     render.TUITheme
	Markdown  render.Options
	Raw       bool // print replies without markdown rendering
	Timeout   time.Duration
	AutoCopy  bool
	Clipboard func(text string) error
	Logger    *zap.Logger
}

// Message types for the TUI
type (
	replyMsg struct {
		text string
	}
	errMsg struct {
		err error
	}
)

type entryKind int

const (
	entryUser entryKind = iota
	entryAssistant
	entryError
)

// entry is one line group of the transcript
type entry struct {
	kind entryKind
	text string
	err  error
}

// Model represents the TUI state
type Model struct {
	session Session
	cfg     Config
	styles  Styles

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// State
	entries []entry
	loading bool
	ready   bool
	cancel  context.CancelFunc
	notice  string

	// Dimensions
	width  int
	height int
}

// NewModel creates the chat shell for a session
func NewModel(session Session, cfg Config) Model {
	if cfg.Theme.Name == "" {
		cfg.Theme = render.TokyoNightTheme
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.WriteAll
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Markdown.Style == "" {
		cfg.Markdown = render.DefaultOptions()
	}

	styles := NewStyles(cfg.Theme)

	ti := textinput.New()
	ti.Placeholder = "Type your message and press Enter..."
	ti.CharLimit = 4000
	ti.Prompt = "> "
	ti.PromptStyle = styles.UserLabel
	ti.TextStyle = styles.InputText
	ti.PlaceholderStyle = styles.Placeholder
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = styles.Loading

	return Model{
		session: session,
		cfg:     cfg,
		styles:  styles,
		input:   ti,
		spinner: s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Loading reports whether a submission is in flight
func (m Model) Loading() bool {
	return m.loading
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelInFlight()
			return m, tea.Quit

		case "esc":
			if m.loading {
				m.cancelInFlight()
				m.notice = "Cancelling..."
				return m, nil
			}
			return m, tea.Quit

		case "ctrl+y":
			m.copyLastReply()
			return m, nil

		case "enter":
			if m.loading {
				return m, nil
			}
			raw := m.input.Value()
			input := strings.TrimSpace(raw)
			if input == "" {
				m.input.Reset()
				return m, nil
			}
			if isExitCommand(input) {
				return m, tea.Quit
			}
			return m.submit(raw)
		}

	case replyMsg:
		m.finish()
		m.entries = append(m.entries, entry{kind: entryAssistant, text: msg.text})
		if m.cfg.AutoCopy {
			m.copyLastReply()
		}
		m.refreshViewport()
		cmds = append(cmds, textinput.Blink)

	case errMsg:
		m.finish()
		m.entries = append(m.entries, entry{kind: entryError, err: msg.err})
		m.refreshViewport()
		cmds = append(cmds, textinput.Blink)

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Only key presses reach the input, and only while it is enabled
	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if forwardToViewport(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// forwardToViewport keeps typed letters out of the viewport's scroll keys
func forwardToViewport(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return true
	}
	switch key.String() {
	case "pgup", "pgdown", "up", "down", "ctrl+u", "ctrl+d":
		return true
	}
	return false
}

func isExitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit", "/exit", "/quit":
		return true
	}
	return false
}

// submit records the user entry, disables input and starts the request
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	m.entries = append(m.entries, entry{kind: entryUser, text: text})
	m.input.Reset()
	m.input.Blur()
	m.loading = true
	m.notice = ""

	ctx, cancel := m.requestContext()
	m.cancel = cancel
	m.refreshViewport()

	m.cfg.Logger.Debug("submitting message", zap.Int("chars", len(text)))

	return m, tea.Batch(
		submitCmd(ctx, cancel, m.session, text),
		m.spinner.Tick,
	)
}

func (m Model) requestContext() (context.Context, context.CancelFunc) {
	if m.cfg.Timeout > 0 {
		return context.WithTimeout(context.Background(), m.cfg.Timeout)
	}
	return context.WithCancel(context.Background())
}

// submitCmd runs Submit off the update loop and reports back as a message
func submitCmd(ctx context.Context, cancel context.CancelFunc, session Session, text string) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		reply, err := session.Submit(ctx, text)
		if err != nil {
			return errMsg{err: err}
		}
		return replyMsg{text: reply}
	}
}

// finish re-enables input after a submission settles
func (m *Model) finish() {
	m.loading = false
	m.cancel = nil
	m.notice = ""
	m.input.Focus()
}

func (m *Model) cancelInFlight() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Model) copyLastReply() {
	reply := m.session.LastReply()
	if reply == "" {
		m.notice = "Nothing to copy yet"
		return
	}
	if err := m.cfg.Clipboard(reply); err != nil {
		m.cfg.Logger.Debug("clipboard write failed", zap.Error(err))
		m.notice = "Copy failed: " + err.Error()
		return
	}
	m.notice = "Reply copied to clipboard"
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	headerHeight := 3 // Header panel with border
	inputHeight := 3  // Input panel with border
	statusHeight := 1 // Status bar
	borders := 2      // Messages panel border

	vpHeight := height - headerHeight - inputHeight - statusHeight - borders
	if vpHeight < 3 {
		vpHeight = 3
	}
	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}
	m.input.Width = contentWidth - 4
	m.refreshViewport()
}

// refreshViewport re-renders the transcript and scrolls to the end
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.transcript(m.viewport.Width))
	m.viewport.GotoBottom()
}

// transcript renders all entries in order
func (m Model) transcript(width int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle().Width(width)

	for _, e := range m.entries {
		switch e.kind {
		case entryUser:
			line := m.styles.UserLabel.Render("You:") + " " + m.styles.UserText.Render(e.text)
			b.WriteString(wrap.Render(line))
			b.WriteString("\n")
		case entryAssistant:
			b.WriteString(m.styles.AILabel.Render("AI:"))
			b.WriteString("\n")
			b.WriteString(m.renderReply(e.text, width))
			b.WriteString("\n")
			b.WriteString(m.styles.Separator.Render(Separator))
			b.WriteString("\n")
		case entryError:
			b.WriteString(wrap.Render(formatError(m.styles, e.err)))
			b.WriteString("\n")
			b.WriteString(m.styles.Separator.Render(Separator))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderReply(text string, width int) string {
	if m.cfg.Raw {
		return m.styles.AIText.Width(width).Render(text)
	}
	return render.Reply(text, m.cfg.Markdown.WithWidth(width))
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return m.styles.Loading.Render("  Initializing...")
	}

	contentWidth := m.width - 2

	header := m.styles.Header.Width(contentWidth).Render(lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.styles.Title.Render("Gemini Chat"),
		m.styles.Hint.Render("  |  "),
		m.styles.Subtitle.Render(m.cfg.ModelName),
	))

	var body string
	if len(m.entries) == 0 {
		body = m.renderWelcome()
	} else {
		body = m.viewport.View()
	}
	messages := m.styles.Messages.Width(contentWidth).Height(m.viewport.Height).Render(body)

	var inputContent string
	if m.loading {
		inputContent = m.spinner.View() + m.styles.Loading.Render(" Waiting for reply...")
	} else {
		inputContent = m.input.View()
	}
	input := m.styles.Input.Width(contentWidth).Render(inputContent)

	return lipgloss.JoinVertical(lipgloss.Left, header, messages, input, m.renderStatusBar(contentWidth))
}

func (m Model) renderWelcome() string {
	text := m.styles.Welcome.Width(m.viewport.Width).Render(
		"Type a message and press Enter. Type exit to quit.",
	)
	top := (m.viewport.Height - lipgloss.Height(text)) / 2
	if top < 0 {
		top = 0
	}
	return strings.Repeat("\n", top) + text
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	if m.notice != "" {
		return m.styles.Notice.Width(width).Render(m.notice)
	}

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+Y", "Copy reply"},
		{"Esc", "Quit"},
		{"PgUp/PgDn", "Scroll"},
	}

	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, m.styles.StatusKey.Render(s.key)+m.styles.Status.Render(" "+s.desc))
	}
	return m.styles.StatusBar.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  |  "))
}

// Run starts the shell and blocks until the user quits
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(m, opts...)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.cancelInFlight()
	}
	return err
}
