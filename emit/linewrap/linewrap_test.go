package linewrap

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/jpoet/errors"
)

// op drives one wrapper call in a script
type op func(w *Wrapper) error

func text(s string) op { return func(w *Wrapper) error { return w.Append(s) } }
func space(level int) op { return func(w *Wrapper) error { return w.WrappingSpace(level) } }
func zero(level int) op { return func(w *Wrapper) error { return w.ZeroWidthSpace(level) } }

func run(t *testing.T, limit int, ops ...op) string {
	t.Helper()
	var sb strings.Builder
	w := New(&sb, "  ", limit)
	for _, o := range ops {
		require.NoError(t, o(w))
	}
	require.NoError(t, w.Close())
	return sb.String()
}

func TestWrapper(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		ops   []op
		want  string
	}{
		{"wrap", 10, []op{text("abcde"), space(2), text("fghij")}, "abcde\n    fghij"},
		{"no wrap", 10, []op{text("abcde"), space(2), text("fghi")}, "abcde fghi"},
		{"zero width no wrap", 10, []op{text("abcde"), zero(2), text("fghij")}, "abcdefghij"},
		{"zero width wrap", 10, []op{text("abcde"), zero(2), text("fghijk")}, "abcde\n    fghijk"},
		{
			"multiple writes", 10,
			[]op{
				text("ab"), space(1), text("cd"), space(1), text("ef"), space(1), text("gh"),
				space(1), text("ij"), space(1), text("kl"), space(1), text("mn"), space(1),
				text("op"), space(1), text("qr"),
			},
			"ab cd ef\n  gh ij kl\n  mn op qr",
		},
		{"fencepost", 10, []op{text("abcde"), text("fghij"), space(2), text("k"), text("lmnop")}, "abcdefghij\n    klmnop"},
		{"overly long token", 10, []op{text("abcdefghijkl"), space(1), text("mnopqrstuvwxy")}, "abcdefghijkl\n  mnopqrstuvwxy"},
		{"newline fits", 10, []op{text("abcde"), space(2), text("fg\nhijklmnop")}, "abcde fg\nhijklmnop"},
		{"newline overflows", 10, []op{text("abcde"), space(2), text("fghijk\nl")}, "abcde\n    fghijk\nl"},
		{"zero width at column zero", 10, []op{text("abc\n"), zero(1), text("defghijklmnop")}, "abc\ndefghijklmnop"},
		{"pending space at close", 10, []op{text("abc"), space(1)}, "abc "},
		{"wide runes count by display width", 10, []op{text("abcd"), space(1), text("日本語")}, "abcd\n  日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, tt.limit, tt.ops...))
		})
	}
}

func TestWrapAt95To105(t *testing.T) {
	head := strings.Repeat("x", 94)
	tail := strings.Repeat("y", 10)

	out := run(t, 100, text(head), space(1), text(tail))
	assert.Equal(t, head+"\n  "+tail, out)

	// Same text one column shorter still fits.
	out = run(t, 100, text(head), space(1), text(tail[:5]))
	assert.Equal(t, head+" "+tail[:5], out)
}

func TestColumnLimitInvariant(t *testing.T) {
	words := strings.Fields("the quick brown fox jumps over the lazy dog and keeps running across the field until the sun goes down")
	var ops []op
	for i, word := range words {
		if i > 0 {
			ops = append(ops, space(1))
		}
		ops = append(ops, text(word))
	}

	out := run(t, 20, ops...)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, Width(line), 20, "line %q", line)
	}
	assert.Equal(t, strings.Join(words, " "), strings.Join(strings.Fields(out), " "))
}

func TestDefaultColumnLimit(t *testing.T) {
	w := New(io.Discard, "  ", 0)
	assert.Equal(t, DefaultColumnLimit, w.ColumnLimit())
}

func TestColumnAndLastChar(t *testing.T) {
	var sb strings.Builder
	w := New(&sb, "  ", 100)
	assert.Equal(t, rune(0), w.LastChar())

	require.NoError(t, w.Append("ab\ncd"))
	assert.Equal(t, 2, w.Column())
	assert.Equal(t, 'd', w.LastChar())

	require.NoError(t, w.WrappingSpace(1))
	require.NoError(t, w.Append("é"))
	assert.Equal(t, 'é', w.LastChar())
	assert.Equal(t, 4, w.Column())
	assert.Equal(t, "ab\ncd", sb.String(), "buffered text is not written yet")
}

func TestUseAfterClose(t *testing.T) {
	w := New(io.Discard, "  ", 100)
	require.NoError(t, w.Close())

	for _, o := range []op{text("x"), space(1), zero(1)} {
		err := o(w)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrWriterMisuse))
	}
	assert.True(t, errors.Is(w.Close(), errors.ErrWriterMisuse))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

func TestWriteErrorIsSticky(t *testing.T) {
	w := New(failingWriter{}, "  ", 100)

	err := w.Append("abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrShortWrite))

	assert.Error(t, w.Append("def"))
	assert.Error(t, w.Close())
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 3, Width("abc"))
	assert.Equal(t, 4, Width("日本"))
	assert.Equal(t, 2, Width("\t\t"))
	assert.Equal(t, 0, Width(""))
}
