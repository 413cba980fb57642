package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jevan001/Turbomate-Ai/chat"
	"github.com/jevan001/Turbomate-Ai/model"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, opts ...chat.Option) (Model, *[]string) {
	t.Helper()
	n := 0
	ids := chat.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("entry-%d", n)
	})
	state := chat.NewViewState(append([]chat.Option{ids}, opts...)...)
	chat.StartNewChat(state)

	var copied []string
	m := NewModel(state, Options{
		Clipboard: func(s string) error {
			copied = append(copied, s)
			return nil
		},
	})
	return m, &copied
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	altEnter = tea.KeyMsg{Type: tea.KeyEnter, Alt: true}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	down     = tea.KeyMsg{Type: tea.KeyDown}
	up       = tea.KeyMsg{Type: tea.KeyUp}
	ctrlN    = tea.KeyMsg{Type: tea.KeyCtrlN}
	ctrlT    = tea.KeyMsg{Type: tea.KeyCtrlT}
	ctrlY    = tea.KeyMsg{Type: tea.KeyCtrlY}
	ctrlD    = tea.KeyMsg{Type: tea.KeyCtrlD}
	left     = tea.KeyMsg{Type: tea.KeyLeft}
)

func TestModel_StartsWithGreeting(t *testing.T) {
	m, _ := newTestModel(t)

	require.Equal(t, []model.Message{{Text: chat.Greeting, Sender: model.SenderAssistant}}, m.State().Messages)
	require.Contains(t, m.View(), "TurboMate")
	require.Contains(t, m.View(), "No past chats")
}

func TestModel_EnterSubmitsAndTickDeliversReply(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, typeText("Hi"))
	require.Equal(t, "Hi", m.State().Input)

	m, cmd := send(t, m, enter)
	require.NotNil(t, cmd)
	require.Equal(t, model.Message{Text: "Hi", Sender: model.SenderUser}, m.State().Messages[1])
	require.Empty(t, m.input.Value())
	require.Equal(t, 1, m.sched.Pending())
	require.Contains(t, m.View(), "thinking")

	m, _ = send(t, m, replyDueMsg{id: 1})
	require.Len(t, m.State().Messages, 3)
	require.Equal(t, chat.ShortReply, m.State().Messages[2].Text)
	require.Zero(t, m.sched.Pending())
	require.NotContains(t, m.View(), "thinking")
	require.True(t, m.viewport.AtBottom())
}

func TestModel_BlankEnterKeepsInput(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, typeText("   "), enter)

	require.Len(t, m.State().Messages, 1)
	require.Equal(t, "   ", m.input.Value())
	require.Zero(t, m.sched.Pending())
}

func TestModel_LongInputIsSentWhole(t *testing.T) {
	m, _ := newTestModel(t)
	long := strings.Repeat("x", 5000)

	m, _ = send(t, m, typeText(long), enter)

	require.Equal(t, long, m.State().Messages[1].Text)
}

func TestModel_CtrlDDeletesForward(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, typeText("ab"), left, ctrlD)

	require.False(t, m.quitting)
	require.Equal(t, "a", m.input.Value())
}

func TestModel_AltEnterInsertsNewline(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, typeText("line one"), altEnter, typeText("line two"))
	require.Equal(t, "line one\nline two", m.input.Value())

	m, _ = send(t, m, enter)
	require.Equal(t, "line one\nline two", m.State().Messages[1].Text)
}

func TestModel_ToggleChosenAtSendTime(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, ctrlT, typeText("explain"), enter, ctrlT)
	require.False(t, m.State().Toggle.Detailed)

	m, _ = send(t, m, replyDueMsg{id: 1})
	require.Equal(t, chat.DetailedReply, m.State().Messages[2].Text)
}

func TestModel_NewChatArchivesAndSelects(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, typeText(strings.Repeat("A", 30)), enter, ctrlN)
	m, _ = send(t, m, typeText("second"), enter, ctrlN)

	history := m.State().History
	require.Len(t, history, 2)
	require.Equal(t, "second", history[0].Title)
	require.Equal(t, strings.Repeat("A", 25)+"...", history[1].Title)
	require.Contains(t, m.View(), "second")

	m, _ = send(t, m, tab, down, enter)
	require.Equal(t, focusSidebar, m.focus)
	require.False(t, m.State().History[0].Active)
	require.True(t, m.State().History[1].Active)

	m, _ = send(t, m, up, enter)
	require.True(t, m.State().History[0].Active)
	require.False(t, m.State().History[1].Active)

	m, _ = send(t, m, esc)
	require.Equal(t, focusInput, m.focus)

	// starting another chat clears the selection
	m, _ = send(t, m, ctrlN)
	_, ok := m.State().ActiveEntry()
	require.False(t, ok)
}

func TestModel_SidebarKeysDoNotReachInput(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tab, typeText("j"), enter, tab)

	require.Empty(t, m.input.Value())
	require.Len(t, m.State().Messages, 1)
}

func TestModel_LateReplyAfterNewChat(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, typeText("Hi"), enter, ctrlN)
	require.Len(t, m.State().Messages, 1)

	m, _ = send(t, m, replyDueMsg{id: 1})
	require.Equal(t, []model.Message{
		{Text: chat.Greeting, Sender: model.SenderAssistant},
		{Text: chat.ShortReply, Sender: model.SenderAssistant},
	}, m.State().Messages)
}

func TestModel_CopyLastReply(t *testing.T) {
	m, copied := newTestModel(t)

	m, _ = send(t, m, ctrlY)
	require.Equal(t, []string{chat.Greeting}, *copied)
	require.Contains(t, m.View(), "reply copied")

	m.copy = func(string) error { return errors.New("no clipboard") }
	m, _ = send(t, m, ctrlY)
	require.Contains(t, m.View(), "clipboard unavailable")
}

func TestModel_UnknownTickIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, replyDueMsg{id: 42})
	require.Len(t, m.State().Messages, 1)
}

func TestModel_WindowResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Equal(t, 100-sidebarWidth-1, m.viewport.Width)
	require.Equal(t, 40-titleHeight-inputHeight-statusHeight-helpHeight, m.viewport.Height)
}

func TestSidebar_MultilineTitleStaysOnOneRow(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, typeText("line one"), altEnter, typeText("line two"), enter, ctrlN)
	entry := m.State().History[0]
	require.Equal(t, "line one\nline two", entry.Title)

	row := m.renderEntry(entry, 0, sidebarWidth-1)
	require.NotContains(t, row, "\n")
	require.Contains(t, row, "line one line two")
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fills", "ab", 4, "ab  "},
		{"truncates", "abcdef", 4, "abcd"},
		{"wide fills by cells", "你好", 5, "你好 "},
		{"wide truncates by cells", "你好世界", 5, "你好 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, pad(tt.in, tt.width))
		})
	}
}

func TestRenderMessage_Layout(t *testing.T) {
	user := renderMessage(model.Message{Text: "hello there", Sender: model.SenderUser}, 60, "AD")
	require.Less(t, strings.Index(user, "hello there"), strings.Index(user, "AD"))

	bot := renderMessage(model.Message{Text: "hi", Sender: model.SenderAssistant}, 60, "AD")
	require.Less(t, strings.Index(bot, assistantIcon), strings.Index(bot, "hi"))
	require.NotContains(t, bot, "AD")
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short", 10, []string{"short"}},
		{"word break", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"hard break", "abcdefghijkl", 5, []string{"abcde", "fghij", "kl"}},
		{"keeps newlines", "a\n\nb", 10, []string{"a", "", "b"}},
		{"empty", "", 10, []string{""}},
		{"wide glyphs", "🤖🤖🤖", 4, []string{"🤖🤖", "🤖"}},
		{"cjk", "你好世界", 4, []string{"你好", "世界"}},
		{"glyph wider than line", "你", 1, []string{"你"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}
