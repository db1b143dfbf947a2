package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptKind identifies what the message-bar prompt is collecting.
type promptKind uint8

const (
	promptNone promptKind = iota
	promptSearch
	promptSaveAs
)

const (
	searchPrompt = "Search (ESC to cancel, Arrows to navigate): "
	saveAsPrompt = "Save as: "
)

// statusMessage is a message-bar text and the time it was set.
type statusMessage struct {
	text string
	at   time.Time
}

// statusExpiredMsg asks for a redraw once a status message times out.
type statusExpiredMsg struct{ at time.Time }

// Model is the Bubble Tea program around a Session: it turns key presses
// into session intents and renders the text area, status bar and message
// bar.
type Model struct {
	cfg Config
	s   *Session

	width, height int

	input  textinput.Model
	prompt promptKind

	status   statusMessage
	quitLeft int
	quitting bool

	now func() time.Time
}

// New returns a Model driving s. A nil s edits an empty document.
func New(s *Session, cfg Config) Model {
	if s == nil {
		s = NewSession(nil, SessionOptions{})
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.MessageTTL <= 0 {
		cfg.MessageTTL = DefaultMessageTTL
	}
	if cfg.QuitTimes < 0 {
		cfg.QuitTimes = 0
	}

	m := Model{
		cfg:      cfg,
		s:        s,
		input:    textinput.New(),
		quitLeft: cfg.QuitTimes,
		now:      time.Now,
	}
	text := cfg.Status
	if text == "" {
		text = helpMessage
	}
	m.status = statusMessage{text: text, at: m.now()}
	return m
}

func (m Model) Session() *Session { return m.s }

func (m Model) Init() tea.Cmd { return m.expireStatus() }

// SetSize resizes the model. Two rows are reserved for the status and
// message bars.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.s.Resize(Size{Rows: max(m.height-2, 0), Cols: m.width})
	return m
}

// Status returns the current message-bar text, expired or not.
func (m Model) Status() string { return m.status.text }

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case statusExpiredMsg:
		// Nothing to change; the redraw drops the expired message.
		return m, nil
	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	default:
		if m.prompt != promptNone {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// setStatus replaces the message-bar text and schedules its expiry.
func (m *Model) setStatus(text string) tea.Cmd {
	m.status = statusMessage{text: text, at: m.now()}
	return m.expireStatus()
}

func (m Model) expireStatus() tea.Cmd {
	if m.status.text == "" {
		return nil
	}
	at := m.status.at
	return tea.Tick(m.cfg.MessageTTL, func(time.Time) tea.Msg { return statusExpiredMsg{at: at} })
}

func (m Model) statusVisible() bool {
	return m.status.text != "" && m.now().Sub(m.status.at) < m.cfg.MessageTTL
}
