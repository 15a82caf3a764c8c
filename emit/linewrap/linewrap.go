// Package linewrap implements a column-limited soft-wrap buffer over an io.Writer.
//
// Wrap points are deferred: after WrappingSpace or ZeroWidthSpace the wrapper
// holds text in a buffer until it either knows the pending line fits (and emits
// a space or nothing) or knows it overflows (and emits a newline plus indent).
// The buffer never holds more than the text since the last wrap point.
package linewrap

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/teranos/jpoet/errors"
)

// DefaultColumnLimit is the wrap column used when none is configured
const DefaultColumnLimit = 100

type flushKind int

const (
	flushNone  flushKind = iota // no decision pending
	flushSpace                  // emit a single space
	flushWrap                   // emit newline + indent
	flushEmpty                  // emit nothing
)

// Wrapper is single-use: create one per render pass.
type Wrapper struct {
	out         io.Writer
	indent      string
	indentWidth int
	columnLimit int

	buffer      strings.Builder
	column      int
	indentLevel int
	nextFlush   flushKind

	lastChar rune
	closed   bool
	err      error
}

// New returns a Wrapper writing to out. A columnLimit <= 0 selects DefaultColumnLimit.
func New(out io.Writer, indent string, columnLimit int) *Wrapper {
	if columnLimit <= 0 {
		columnLimit = DefaultColumnLimit
	}
	return &Wrapper{
		out:         out,
		indent:      indent,
		indentWidth: Width(indent),
		columnLimit: columnLimit,
		indentLevel: -1,
	}
}

// Width returns the display width of s in columns. Tabs count as one column.
func Width(s string) int {
	return runewidth.StringWidth(s) + strings.Count(s, "\t")
}

// Column returns the current column, counting buffered text.
func (w *Wrapper) Column() int {
	return w.column
}

// ColumnLimit returns the configured wrap column.
func (w *Wrapper) ColumnLimit() int {
	return w.columnLimit
}

// LastChar returns the last character appended, buffered or not, or 0 if nothing was appended.
func (w *Wrapper) LastChar() rune {
	return w.lastChar
}

// Append writes s, which may contain newlines.
func (w *Wrapper) Append(s string) error {
	if err := w.check("append"); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	w.lastChar = lastRune(s)

	if w.nextFlush != flushNone {
		nextNewline := strings.IndexByte(s, '\n')

		// Fits without a newline: keep deferring.
		if nextNewline == -1 && w.column+Width(s) <= w.columnLimit {
			w.buffer.WriteString(s)
			w.column += Width(s)
			return nil
		}

		// Wrap if the projected column overflows, else honor the pending kind.
		kind := w.nextFlush
		if nextNewline == -1 || w.column+Width(s[:nextNewline]) > w.columnLimit {
			kind = flushWrap
		}
		if err := w.flush(kind); err != nil {
			return err
		}
	}

	if err := w.write(s); err != nil {
		return err
	}
	if lastNewline := strings.LastIndexByte(s, '\n'); lastNewline != -1 {
		w.column = Width(s[lastNewline+1:])
	} else {
		w.column += Width(s)
	}
	return nil
}

// WrappingSpace emits a space, or a newline plus indentLevel indents if the
// text that follows would overflow the column limit.
func (w *Wrapper) WrappingSpace(indentLevel int) error {
	if err := w.check("wrapping space"); err != nil {
		return err
	}
	if w.nextFlush != flushNone {
		if err := w.flush(w.nextFlush); err != nil {
			return err
		}
	}
	// The space is counted now even though it is written on the next flush.
	w.column++
	w.nextFlush = flushSpace
	w.indentLevel = indentLevel
	return nil
}

// ZeroWidthSpace emits nothing, or a newline plus indentLevel indents if the
// text that follows would overflow the column limit. It is a no-op at column zero.
func (w *Wrapper) ZeroWidthSpace(indentLevel int) error {
	if err := w.check("zero-width space"); err != nil {
		return err
	}
	if w.column == 0 {
		return nil
	}
	if w.nextFlush != flushNone {
		if err := w.flush(w.nextFlush); err != nil {
			return err
		}
	}
	w.nextFlush = flushEmpty
	w.indentLevel = indentLevel
	return nil
}

// Close flushes any pending decision. Further calls fail.
func (w *Wrapper) Close() error {
	if w.closed {
		return errors.NewWriterMisuseError("line wrapper closed twice")
	}
	if w.err == nil && w.nextFlush != flushNone {
		w.err = w.flush(w.nextFlush)
	}
	w.closed = true
	return w.err
}

func (w *Wrapper) check(op string) error {
	if w.closed {
		return errors.NewWriterMisuseError("%s after close", op)
	}
	return w.err
}

// flush commits the pending decision and writes the buffered text.
func (w *Wrapper) flush(kind flushKind) error {
	switch kind {
	case flushWrap:
		var sb strings.Builder
		sb.WriteByte('\n')
		for i := 0; i < w.indentLevel; i++ {
			sb.WriteString(w.indent)
		}
		if err := w.write(sb.String()); err != nil {
			return err
		}
		w.column = w.indentLevel*w.indentWidth + Width(w.buffer.String())
	case flushSpace:
		if err := w.write(" "); err != nil {
			return err
		}
	}

	if err := w.write(w.buffer.String()); err != nil {
		return err
	}
	w.buffer.Reset()
	w.indentLevel = -1
	w.nextFlush = flushNone
	return nil
}

func (w *Wrapper) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = errors.Wrap(err, "write failed")
		return w.err
	}
	return nil
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
