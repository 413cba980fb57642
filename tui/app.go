package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jevan001/Turbomate-Ai/chat"
)

type focus int

const (
	focusInput focus = iota
	focusSidebar
)

// layout constants
const (
	sidebarWidth = 32
	titleHeight  = 1
	inputHeight  = 6 // textarea rows, border, toggle line
	statusHeight = 1
	helpHeight   = 1
)

// Options tweaks a Model. Zero values fall back to defaults.
type Options struct {
	UserLabel string
	Logger    *slog.Logger
	Clipboard func(string) error
}

type Model struct {
	state    *chat.ViewState
	sched    *teaScheduler
	input    textarea.Model
	viewport viewport.Model
	keys     keyMap
	focus    focus
	cursor   int // sidebar cursor
	width    int
	height   int

	userLabel string
	copy      func(string) error
	log       *slog.Logger

	rendered uint64 // state revision last written to the viewport
	shown    int    // message count last written to the viewport
	status   string
	quitting bool
}

func NewModel(state *chat.ViewState, opts Options) Model {
	if opts.UserLabel == "" {
		opts.UserLabel = "AD"
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	keys := defaultKeyMap()

	ta := textarea.New()
	ta.Placeholder = "Ask TurboMate anything..."
	ta.CharLimit = 0 // unlimited; submit sends the whole input
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline = keys.Newline
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.SetValue(state.Input)
	ta.Focus()

	m := Model{
		state:     state,
		sched:     newTeaScheduler(),
		input:     ta,
		viewport:  viewport.New(80, 20),
		keys:      keys,
		focus:     focusInput,
		width:     120,
		height:    30,
		userLabel: opts.UserLabel,
		copy:      opts.Clipboard,
		log:       opts.Logger,
	}
	m.layout()
	m.syncViewport(true)
	return m
}

// State exposes the view state driven by this model.
func (m Model) State() *chat.ViewState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.syncViewport(true)
		return m, nil

	case replyDueMsg:
		if !m.sched.fire(msg.id) {
			m.log.Warn("unknown reply tick", "id", msg.id)
		}

	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)

	default:
		m.input, cmd = m.input.Update(msg)
	}

	m.syncViewport(false)
	return m, tea.Batch(cmd, m.sched.flush())
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewChat):
		chat.StartNewChat(m.state)
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.state.SetDetailed(!m.state.Toggle.Detailed)
		m.log.Debug("reply length toggled", "detailed", m.state.Toggle.Detailed)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copyLastReply()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusInput {
			return m.focusSidebar(), nil
		}
		cmd := m.focusInput()
		return m, cmd

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	if m.focus == focusSidebar {
		return m.updateSidebar(msg)
	}
	return m.updateInput(msg)
}

func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Send) {
		m.state.Input = m.input.Value()
		chat.Submit(m.state, m.sched)
		if m.state.Input == "" {
			m.input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.Input = m.input.Value()
	return m, cmd
}

func (m Model) updateSidebar(msg tea.KeyMsg) (Model, tea.Cmd) {
	history := m.state.History
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(history)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(history) {
			chat.Select(m.state, history[m.cursor].ID)
		}

	case key.Matches(msg, m.keys.Back):
		cmd := m.focusInput()
		return m, cmd
	}
	return m, nil
}

func (m Model) focusSidebar() Model {
	m.focus = focusSidebar
	m.input.Blur()
	if m.cursor >= len(m.state.History) {
		m.cursor = max(0, len(m.state.History)-1)
	}
	return m
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

func (m *Model) copyLastReply() {
	reply, ok := m.state.LastAssistantMessage()
	if !ok {
		return
	}
	if err := m.copy(reply.Text); err != nil {
		m.log.Warn("copy to clipboard failed", "error", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = "reply copied to clipboard"
}

// syncViewport rewrites the conversation when the view state changed and
// keeps the newest message in view.
func (m *Model) syncViewport(force bool) {
	if !force && m.rendered == m.state.Revision {
		return
	}
	m.viewport.SetContent(m.renderConversation())
	if force || len(m.state.Messages) != m.shown {
		m.viewport.GotoBottom()
	}
	m.rendered = m.state.Revision
	m.shown = len(m.state.Messages)
}

func (m *Model) layout() {
	chatWidth := max(m.chatWidth(), 20)
	m.viewport.Width = chatWidth
	m.viewport.Height = max(m.height-titleHeight-inputHeight-statusHeight-helpHeight, 3)
	m.input.SetWidth(chatWidth - 2)
}

func (m Model) chatWidth() int {
	return m.width - sidebarWidth - 1
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("TurboMate"),
		m.viewport.View(),
		m.viewStatus(),
		m.viewInput(),
		m.viewHelp(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), main)
}

func (m Model) viewStatus() string {
	text := m.status
	if n := m.sched.Pending(); n > 0 {
		text = "TurboMate is thinking..."
		if n > 1 {
			text = fmt.Sprintf("TurboMate is thinking... (%d replies pending)", n)
		}
	}
	return statusBarStyle.Width(max(m.chatWidth(), 20)).Render(text)
}

func (m Model) viewHelp() string {
	k := m.keys
	if m.focus == focusSidebar {
		return helpStyle.Render(helpLine(k.Up, k.Down, k.Select, k.Back, k.NewChat, k.Quit))
	}
	return helpStyle.Render(helpLine(k.Send, k.Newline, k.NewChat, k.Toggle, k.Copy, k.Focus, k.Quit))
}
