package panes

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// CommandBuffer is a single-line editor with a cursor and a replayable
// history. The history always holds at least the seed text.
type CommandBuffer struct {
	kind     Kind
	text     []rune
	cursor   Scroller
	history  []string
	recall   Scroller
	errMsg   string
	failed   bool
	complete Completer
}

// Completer rewrites text around a rune cursor and returns the new text and
// cursor.
type Completer func(text string, cursor int) (string, int)

// NewCommandBuffer returns a buffer holding seed with the cursor at its end.
func NewCommandBuffer(seed string) *CommandBuffer {
	b := &CommandBuffer{
		kind:    KindCommand,
		history: []string{seed},
		recall:  NewScroller(0),
	}
	b.replace(seed)
	return b
}

// Kind implements Pane.
func (b *CommandBuffer) Kind() Kind { return b.kind }

// Capturing implements TextEntry. A command line always takes typed text.
func (b *CommandBuffer) Capturing() bool { return true }

// Text returns the command text regardless of error state.
func (b *CommandBuffer) Text() string { return string(b.text) }

// Cursor returns the cursor position in runes.
func (b *CommandBuffer) Cursor() int { return b.cursor.Position() }

// Failed reports whether an error message is displayed in place of the text.
func (b *CommandBuffer) Failed() bool { return b.failed }

// Content returns what the line displays: the error message while in error
// state, the command text otherwise.
func (b *CommandBuffer) Content() string {
	if b.failed {
		return b.errMsg
	}
	return string(b.text)
}

// History returns a copy of the recorded entries, oldest first.
func (b *CommandBuffer) History() []string {
	out := make([]string, len(b.history))
	copy(out, b.history)
	return out
}

// SetError shows msg in place of the text until the next edit.
func (b *CommandBuffer) SetError(msg string) {
	b.errMsg = msg
	b.failed = true
}

func (b *CommandBuffer) clearError() {
	b.errMsg = ""
	b.failed = false
}

// SetText replaces the text and puts the cursor at its end.
func (b *CommandBuffer) SetText(text string) {
	b.clearError()
	b.replace(text)
}

func (b *CommandBuffer) replace(text string) {
	b.text = []rune(text)
	b.cursor.SetMax(len(b.text))
	b.cursor.SetPosition(len(b.text))
}

// InsertChar inserts text at the cursor and advances past it.
func (b *CommandBuffer) InsertChar(text string) {
	b.clearError()
	ins := []rune(text)
	if len(ins) == 0 {
		return
	}
	pos := b.cursor.Position()
	out := make([]rune, 0, len(b.text)+len(ins))
	out = append(out, b.text[:pos]...)
	out = append(out, ins...)
	out = append(out, b.text[pos:]...)
	b.text = out
	b.cursor.SetMax(len(b.text))
	b.cursor.SetPosition(pos + len(ins))
}

// Backspace removes the character before the cursor.
func (b *CommandBuffer) Backspace() {
	b.clearError()
	pos := b.cursor.Position()
	if pos == 0 {
		return
	}
	b.text = append(b.text[:pos-1:pos-1], b.text[pos:]...)
	b.cursor.SetPosition(pos - 1)
	b.cursor.SetMax(len(b.text))
}

// Delete removes the character under the cursor.
func (b *CommandBuffer) Delete() {
	b.clearError()
	pos := b.cursor.Position()
	if pos >= len(b.text) {
		return
	}
	b.text = append(b.text[:pos:pos], b.text[pos+1:]...)
	b.cursor.SetMax(len(b.text))
}

func (b *CommandBuffer) MoveLeft()  { b.cursor.Prev() }
func (b *CommandBuffer) MoveRight() { b.cursor.Next() }
func (b *CommandBuffer) MoveHome()  { b.cursor.SetPosition(0) }
func (b *CommandBuffer) MoveEnd()   { b.cursor.SetPosition(b.cursor.Max()) }

// Record appends the current text to the history and points recall at it.
func (b *CommandBuffer) Record() {
	b.history = append(b.history, string(b.text))
	b.recall.SetMax(len(b.history) - 1)
	b.recall.SetPosition(b.recall.Max())
}

// Clear empties the line.
func (b *CommandBuffer) Clear() {
	b.clearError()
	b.replace("")
}

// SetCompleter installs the function run by Complete. A nil completer turns
// completion off.
func (b *CommandBuffer) SetCompleter(c Completer) { b.complete = c }

// Complete runs the completer at the cursor.
func (b *CommandBuffer) Complete() {
	if b.complete == nil {
		return
	}
	text, cursor := b.complete(string(b.text), b.cursor.Position())
	if text == string(b.text) && cursor == b.cursor.Position() {
		return
	}
	b.clearError()
	b.replace(text)
	b.cursor.SetPosition(cursor)
}

// ScrollUp replaces the text with the previous history entry.
func (b *CommandBuffer) ScrollUp() {
	b.recall.Prev()
	b.SetText(b.history[b.recall.Position()])
}

// ScrollDown replaces the text with the next history entry.
func (b *CommandBuffer) ScrollDown() {
	b.recall.Next()
	b.SetText(b.history[b.recall.Position()])
}

// HandleKey implements Pane. Enter emits a Run signal; everything else edits.
func (b *CommandBuffer) HandleKey(msg tea.KeyPressMsg) Signal {
	switch {
	case key.Matches(msg, CommandKeys.Submit):
		return Signal{Kind: SignalRun, Text: b.Text()}
	case key.Matches(msg, CommandKeys.Backspace):
		b.Backspace()
	case key.Matches(msg, CommandKeys.Delete):
		b.Delete()
	case key.Matches(msg, CommandKeys.Left):
		b.MoveLeft()
	case key.Matches(msg, CommandKeys.Right):
		b.MoveRight()
	case key.Matches(msg, CommandKeys.Home):
		b.MoveHome()
	case key.Matches(msg, CommandKeys.End):
		b.MoveEnd()
	case key.Matches(msg, CommandKeys.HistoryPrev):
		b.ScrollUp()
	case key.Matches(msg, CommandKeys.HistoryNext):
		b.ScrollDown()
	case key.Matches(msg, CommandKeys.ClearLine):
		b.Clear()
	case key.Matches(msg, CommandKeys.Complete):
		b.Complete()
	default:
		if text := typedText(msg); text != "" {
			b.InsertChar(text)
		}
	}
	return Nop
}
