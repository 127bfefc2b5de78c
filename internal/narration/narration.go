// Package narration carries the text a battle or an entity wants shown to
// the player. Rendering is someone else's job; this package only collects
// lines in the order they were said.
package narration

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/reflow/wordwrap"
)

// Sink receives narration lines. Lines are never taken back.
type Sink interface {
	Say(line string)
}

// Sayf formats a line and sends it to sink. A nil sink drops it.
func Sayf(sink Sink, format string, args ...interface{}) {
	if sink == nil {
		return
	}
	sink.Say(fmt.Sprintf(format, args...))
}

// Buffer keeps every line in memory. Tests read it back with Lines.
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Say appends a line.
func (b *Buffer) Say(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
}

// Lines returns a copy of everything said so far.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String joins the lines with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Reset forgets everything said so far.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

// Writer writes each line followed by a newline to an io.Writer.
type Writer struct {
	mu    sync.Mutex
	w     io.Writer
	width int
}

// NewWriter creates a sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// NewWrappingWriter creates a sink that word-wraps lines longer than width.
// A width of zero or less never wraps.
func NewWrappingWriter(w io.Writer, width int) *Writer {
	return &Writer{w: w, width: width}
}

// Say writes the line. Write errors are dropped; narration is best effort.
func (w *Writer) Say(line string) {
	if w.width > 0 {
		line = wordwrap.String(line, w.width)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = io.WriteString(w.w, line+"\n")
}

// Discard is a Sink that drops every line.
var Discard Sink = discard{}

type discard struct{}

func (discard) Say(string) {}
