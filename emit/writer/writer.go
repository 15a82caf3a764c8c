// Package writer renders code blocks as Java source text.
//
// A Writer interprets the parts of a codeblock.Block: literal text goes to
// the line wrapper with the current indentation, $T arguments go through the
// name resolver, and the marker placeholders drive indentation, statement
// continuation and wrapping.
package writer

import (
	"io"
	"sort"
	"strings"

	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/linewrap"
	"github.com/teranos/jpoet/emit/names"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/errors"
)

// DefaultIndent is the indent unit used when none is configured.
const DefaultIndent = "  "

// Continuation lines of a statement, and wrapped lines, are indented by one
// extra level.
const continuation = 1

// Options configures a Writer.
type Options struct {
	Indent        string
	ColumnLimit   int
	StaticImports []string
	AlwaysQualify []string

	// Imports is the table frozen after the collecting pass. Nil while
	// collecting.
	Imports *names.Table
}

// Writer renders one pass of a document. It is not safe for concurrent use.
type Writer struct {
	out      *linewrap.Wrapper
	resolver *names.Resolver

	indent        string
	level         int
	staticImports []string

	javadoc         bool
	comment         bool
	trailingNewline bool
	statementLine   int // -1 outside a statement
	statementLevel  int // level at the enclosing $[

	capture *strings.Builder
}

// New returns a Writer emitting to out.
func New(out io.Writer, opts Options) *Writer {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	statics := append([]string(nil), opts.StaticImports...)
	sort.Strings(statics)
	return &Writer{
		out: linewrap.New(out, opts.Indent, opts.ColumnLimit),
		resolver: names.New(names.Options{
			AlwaysQualify: opts.AlwaysQualify,
			StaticImports: statics,
			Imports:       opts.Imports,
		}),
		indent:        opts.Indent,
		staticImports: statics,
		statementLine: -1,
	}
}

// Indent returns the indent unit.
func (w *Writer) Indent() string { return w.indent }

// Level returns the current indentation level.
func (w *Writer) Level() int { return w.level }

// StaticImports returns the sorted static imports.
func (w *Writer) StaticImports() []string {
	return append([]string(nil), w.staticImports...)
}

// SuggestedImports freezes the imports observed so far.
func (w *Writer) SuggestedImports() *names.Table {
	return w.resolver.Freeze()
}

// LookupName resolves c against the current scope.
func (w *Writer) LookupName(c typename.ClassName) string {
	return w.resolver.LookupName(c)
}

// PushPackage sets the package of the document.
func (w *Writer) PushPackage(pkg string) error { return w.resolver.PushPackage(pkg) }

// PopPackage clears the package of the document.
func (w *Writer) PopPackage() error { return w.resolver.PopPackage() }

// PushType enters a type body whose directly nested types are named nested.
func (w *Writer) PushType(simpleName string, nested []string) {
	w.resolver.PushType(simpleName, nested)
}

// PopType leaves the innermost type body.
func (w *Writer) PopType() error { return w.resolver.PopType() }

// CurrentType returns the class of the innermost type body.
func (w *Writer) CurrentType() (typename.ClassName, bool) { return w.resolver.CurrentType() }

// PushTypeVariables brings type variables into scope.
func (w *Writer) PushTypeVariables(vars []typename.TypeVariableName) {
	list := make([]string, len(vars))
	for i, v := range vars {
		list[i] = v.Name()
	}
	w.resolver.PushTypeVariables(list)
}

// PopTypeVariables removes the innermost type variables from scope.
func (w *Writer) PopTypeVariables() error { return w.resolver.PopTypeVariables() }

// IndentBy increases the indentation level by levels.
func (w *Writer) IndentBy(levels int) {
	w.level += levels
}

// UnindentBy decreases the indentation level by levels.
func (w *Writer) UnindentBy(levels int) error {
	if w.level-levels < 0 {
		return errors.NewWriterMisuseError("cannot unindent %d from %d", levels, w.level)
	}
	w.level -= levels
	return nil
}

// Emit parses format with args and emits the result.
func (w *Writer) Emit(format string, args ...interface{}) error {
	b, err := codeblock.Of(format, args...)
	if err != nil {
		return err
	}
	return w.EmitBlock(b)
}

// EmitBlock emits b.
func (w *Writer) EmitBlock(b codeblock.Block) error {
	return w.emitBlock(b, false)
}

// EmitBlockTrailingNewline emits b and then a newline unless b ended with one.
// It is used for whole bodies, so every statement b opens must be closed in b.
func (w *Writer) EmitBlockTrailingNewline(b codeblock.Block) error {
	return w.emitBlock(b, true)
}

func (w *Writer) emitBlock(b codeblock.Block, ensureTrailingNewline bool) error {
	parts := b.Parts()
	args := b.Args()
	a := 0
	var deferred *typename.ClassName
	open := w.statementLine != -1

	for i, part := range parts {
		if deferred != nil {
			if member, ok := w.resolver.StaticMember(*deferred, part); ok {
				deferred = nil
				if err := w.emitAndIndent(member); err != nil {
					return err
				}
				continue
			}
			if err := w.emitAndIndent(w.resolver.LookupName(*deferred)); err != nil {
				return err
			}
			deferred = nil
		}

		var err error
		switch part {
		case "$L":
			err = w.emitLiteral(args[a])
			a++
		case "$N":
			err = w.emitAndIndent(args[a].Text())
			a++
		case "$S":
			arg := args[a]
			a++
			if arg.IsNull() {
				err = w.emitAndIndent("null")
			} else {
				err = w.emitAndIndent(codeblock.Quote(arg.Text(), w.indent))
			}
		case "$T":
			t := args[a].Type()
			a++
			// A member of a statically imported class is written alone.
			if c, ok := t.(typename.ClassName); ok && i+1 < len(parts) &&
				!strings.HasPrefix(parts[i+1], "$") && w.resolver.IsStaticImportClass(c) {
				deferred = &c
				continue
			}
			err = w.emitAndIndent(t.Render(w.resolver))
		case "$$":
			err = w.emitAndIndent("$")
		case "$>":
			if w.capture == nil {
				w.IndentBy(1)
			}
		case "$<":
			if w.capture == nil {
				err = w.UnindentBy(1)
			}
		case "$[":
			if w.capture == nil {
				err = w.beginStatement()
			}
		case "$]":
			if w.capture == nil {
				err = w.endStatement()
			}
		case "$W":
			if w.capture != nil {
				w.capture.WriteByte(' ')
			} else {
				err = w.out.WrappingSpace(w.level + continuation)
			}
		case "$Z":
			if w.capture == nil {
				err = w.out.ZeroWidthSpace(w.level + continuation)
			}
		default:
			err = w.emitAndIndent(part)
		}
		if err != nil {
			return err
		}
	}
	if deferred != nil {
		if err := w.emitAndIndent(w.resolver.LookupName(*deferred)); err != nil {
			return err
		}
	}

	if !ensureTrailingNewline {
		return nil
	}
	if !open && w.statementLine != -1 {
		return errUnclosedStatement()
	}
	if w.lastChar() != '\n' {
		return w.emitAndIndent("\n")
	}
	return nil
}

func errUnclosedStatement() error {
	return errors.NewWriterMisuseError("statement enter $[ has no matching statement exit $]")
}

func (w *Writer) beginStatement() error {
	if w.statementLine != -1 {
		return errors.NewWriterMisuseError("statement enter $[ followed by statement enter $[")
	}
	w.statementLine = 0
	w.statementLevel = w.level
	return nil
}

func (w *Writer) endStatement() error {
	if w.statementLine == -1 {
		return errors.NewWriterMisuseError("statement exit $] has no matching statement enter $[")
	}
	// Continuation indent and any unbalanced $> or $< inside end here.
	w.level = w.statementLevel
	w.statementLine = -1
	return nil
}

// SuspendStatement closes the current statement until the returned func is
// called. Type bodies nested in an expression use it so their members are
// not indented as statement continuations.
func (w *Writer) SuspendStatement() (restore func()) {
	line, level := w.statementLine, w.statementLevel
	w.statementLine = -1
	return func() {
		w.statementLine = line
		w.statementLevel = level
	}
}

func (w *Writer) emitLiteral(arg codeblock.Arg) error {
	if sub, ok := arg.Block(); ok {
		return w.EmitBlock(sub)
	}
	if node, ok := arg.Node(); ok {
		return node.EmitNode(w)
	}
	return w.emitAndIndent(arg.Text())
}

func (w *Writer) lastChar() rune {
	if w.capture != nil {
		s := w.capture.String()
		if s == "" {
			return 0
		}
		return rune(s[len(s)-1])
	}
	return w.out.LastChar()
}

// emitAndIndent writes s, indenting every non-empty line that starts after a
// newline and applying the comment prefix.
func (w *Writer) emitAndIndent(s string) error {
	if w.capture != nil {
		w.capture.WriteString(s)
		return nil
	}

	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			if (w.javadoc || w.comment) && w.trailingNewline {
				if err := w.emitIndentation(); err != nil {
					return err
				}
				prefix := "//"
				if w.javadoc {
					prefix = " *"
				}
				if err := w.out.Append(prefix); err != nil {
					return err
				}
			}
			if err := w.out.Append("\n"); err != nil {
				return err
			}
			w.trailingNewline = true
			if w.statementLine != -1 {
				if w.statementLine == 0 {
					w.IndentBy(continuation)
				}
				w.statementLine++
			}
		}

		if line == "" {
			continue
		}
		if w.trailingNewline {
			if err := w.emitIndentation(); err != nil {
				return err
			}
			switch {
			case w.javadoc:
				if err := w.out.Append(" * "); err != nil {
					return err
				}
			case w.comment:
				if err := w.out.Append("// "); err != nil {
					return err
				}
			}
		}
		if err := w.out.Append(line); err != nil {
			return err
		}
		w.trailingNewline = false
	}
	return nil
}

func (w *Writer) emitIndentation() error {
	if w.level == 0 {
		return nil
	}
	return w.out.Append(strings.Repeat(w.indent, w.level))
}

// Close flushes pending output. The Writer cannot be used afterwards.
// Closing inside a statement is an error.
func (w *Writer) Close() error {
	if err := w.out.Close(); err != nil {
		return err
	}
	if w.statementLine != -1 {
		return errUnclosedStatement()
	}
	return nil
}
