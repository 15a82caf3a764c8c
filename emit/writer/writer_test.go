package writer

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/errors"
)

var foo = typename.Class("com.other", "Foo")

// render runs fn against a fresh writer and returns the output.
func render(t *testing.T, opts Options, fn func(w *Writer) error) string {
	t.Helper()
	var buf bytes.Buffer
	w := New(&buf, opts)
	require.NoError(t, fn(w))
	require.NoError(t, w.Close())
	return buf.String()
}

type fakeAnnotation struct{ class typename.ClassName }

func (a fakeAnnotation) EmitAnnotation(w *Writer, inline bool) error {
	return w.Emit("@$T", a.class)
}

type fakeNode struct{}

func (fakeNode) EmitNode(t codeblock.Target) error {
	return t.EmitBlock(codeblock.Must(codeblock.Of("new $T()", foo)))
}

func TestStatementContinuation(t *testing.T) {
	got := render(t, Options{}, func(w *Writer) error {
		if err := w.Emit("$[return a\n+ b;\n$]"); err != nil {
			return err
		}
		return w.Emit("c();\n")
	})
	assert.Equal(t, "return a\n  + b;\nc();\n", got)
}

func TestStatementRestoresLevel(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{})
	w.IndentBy(1)

	require.NoError(t, w.Emit("$[foo($>\nbar,$>\nbaz);\n$]"))
	assert.Equal(t, 1, w.Level())

	require.NoError(t, w.Emit("$[x = y;\n$]"))
	assert.Equal(t, 1, w.Level())
	require.NoError(t, w.Close())

	assert.Equal(t, "foo(\n      bar,\n        baz);\n  x = y;\n", buf.String())
}

func TestStatementMisuse(t *testing.T) {
	w := New(io.Discard, Options{})
	err := w.Emit("$[a$[")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrWriterMisuse))
	assert.Contains(t, err.Error(), "followed by statement enter")

	w = New(io.Discard, Options{})
	err = w.Emit("$]")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrWriterMisuse))
	assert.Contains(t, err.Error(), "no matching statement enter")

	w = New(io.Discard, Options{})
	err = w.Emit("$<")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrWriterMisuse))
	assert.Contains(t, err.Error(), "cannot unindent 1 from 0")
}

func TestUnclosedStatement(t *testing.T) {
	w := New(io.Discard, Options{})
	require.NoError(t, w.Emit("$[foo(\nbar);\n"))
	err := w.Close()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrWriterMisuse))
	assert.Contains(t, err.Error(), "has no matching statement exit")

	w = New(io.Discard, Options{})
	err = w.EmitBlockTrailingNewline(codeblock.Must(codeblock.Of("$[foo(\nbar);\n")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrWriterMisuse))

	// A statement opened outside the body may stay open across it.
	got := render(t, Options{}, func(w *Writer) error {
		if err := w.Emit("$[int x ="); err != nil {
			return err
		}
		if err := w.EmitBlockTrailingNewline(codeblock.Must(codeblock.Of(" 1;"))); err != nil {
			return err
		}
		return w.Emit("$]")
	})
	assert.Equal(t, "int x = 1;\n", got)
}

func TestWrappingSpace(t *testing.T) {
	got := render(t, Options{ColumnLimit: 20}, func(w *Writer) error {
		return w.Emit("$[int total =$Wfirst +$Wsecond +$Wthird;\n$]")
	})
	assert.Equal(t, "int total = first +\n  second + third;\n", got)
}

func TestWrapAtColumnLimit(t *testing.T) {
	got := render(t, Options{}, func(w *Writer) error {
		return w.Emit(strings.Repeat("a", 95) + "$W" + strings.Repeat("b", 10))
	})
	assert.Equal(t, strings.Repeat("a", 95)+"\n  "+strings.Repeat("b", 10), got)

	got = render(t, Options{}, func(w *Writer) error {
		return w.Emit(strings.Repeat("a", 90) + "$W" + strings.Repeat("b", 5))
	})
	assert.Equal(t, strings.Repeat("a", 90)+" "+strings.Repeat("b", 5), got)
}

func TestZeroWidthSpace(t *testing.T) {
	got := render(t, Options{ColumnLimit: 10}, func(w *Writer) error {
		return w.Emit("aaaaaaaa$Zbbbb")
	})
	assert.Equal(t, "aaaaaaaa\n  bbbb", got)

	got = render(t, Options{ColumnLimit: 10}, func(w *Writer) error {
		return w.Emit("$Zabc$Zd")
	})
	assert.Equal(t, "abcd", got)
}

func TestTypeImportedInSecondPass(t *testing.T) {
	collect := New(io.Discard, Options{})
	require.NoError(t, collect.PushPackage("com.example"))
	require.NoError(t, collect.Emit("$T.class", foo))
	assert.Equal(t, "com.other.Foo", collect.LookupName(foo))
	table := collect.SuggestedImports()
	require.NoError(t, collect.Close())
	assert.Equal(t, []string{"com.other.Foo"}, table.Imports(true))

	got := render(t, Options{Imports: table}, func(w *Writer) error {
		if err := w.PushPackage("com.example"); err != nil {
			return err
		}
		if err := w.Emit("$T.class", foo); err != nil {
			return err
		}
		return w.PopPackage()
	})
	assert.Equal(t, "Foo.class", got)
}

func TestStringLiteralUsesIndent(t *testing.T) {
	got := render(t, Options{Indent: "    "}, func(w *Writer) error {
		return w.Emit("$S", "a\nb")
	})
	assert.Equal(t, "\"a\\n\"\n        + \"b\"", got)

	got = render(t, Options{}, func(w *Writer) error {
		return w.Emit("$S", nil)
	})
	assert.Equal(t, "null", got)
}

func TestStaticImports(t *testing.T) {
	objects := typename.Class("java.util", "Objects")
	opts := Options{StaticImports: []string{"java.util.Objects.requireNonNull"}}

	tests := []struct {
		format string
		args   []interface{}
		want   string
	}{
		{"$T.requireNonNull(x);\n", []interface{}{objects}, "requireNonNull(x);\n"},
		{"$T.hash(x);\n", []interface{}{objects}, "java.util.Objects.hash(x);\n"},
		{"return $T", []interface{}{objects}, "return java.util.Objects"},
		{"$T$L", []interface{}{objects, ".requireNonNull"}, "java.util.Objects.requireNonNull"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got := render(t, opts, func(w *Writer) error {
				return w.Emit(tt.format, tt.args...)
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJavadoc(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{})
	require.NoError(t, w.PushPackage("com.example"))
	doc := codeblock.Must(codeblock.Of("Returns a {@link $T}.\n\n@param x the value", foo))
	require.NoError(t, w.EmitJavadoc(doc))
	require.NoError(t, w.EmitJavadoc(codeblock.Block{}))
	require.NoError(t, w.Close())

	assert.Equal(t, ""+
		"/**\n"+
		" * Returns a {@link com.other.Foo}.\n"+
		" *\n"+
		" * @param x the value\n"+
		" */\n", buf.String())
	assert.Zero(t, w.SuggestedImports().Len())
}

func TestJavadocReflow(t *testing.T) {
	got := render(t, Options{ColumnLimit: 30}, func(w *Writer) error {
		return w.EmitJavadoc(codeblock.Must(codeblock.Of("one two three four five six seven eight nine ten")))
	})
	assert.Equal(t, ""+
		"/**\n"+
		" * one two three four five six\n"+
		" * seven eight nine ten\n"+
		" */\n", got)

	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 30)
	}
}

func TestJavadocIndented(t *testing.T) {
	got := render(t, Options{ColumnLimit: 20}, func(w *Writer) error {
		if err := w.Emit("{\n"); err != nil {
			return err
		}
		w.IndentBy(2)
		return w.EmitJavadoc(codeblock.Must(codeblock.Of("alpha beta gamma\n")))
	})
	assert.Equal(t, "{\n    /**\n     * alpha beta\n     * gamma\n     */\n", got)
}

func TestComment(t *testing.T) {
	got := render(t, Options{}, func(w *Writer) error {
		if err := w.EmitComment(codeblock.Must(codeblock.Of("Generated by $L.", "jpoet"))); err != nil {
			return err
		}
		return w.EmitComment(codeblock.Must(codeblock.Of("a\n\nb\n")))
	})
	assert.Equal(t, "// Generated by jpoet.\n// a\n//\n// b\n", got)
}

func TestCommentReflowKeepsLongWords(t *testing.T) {
	long := strings.Repeat("x", 30)
	got := render(t, Options{ColumnLimit: 20}, func(w *Writer) error {
		return w.EmitComment(codeblock.Must(codeblock.Of("see " + long + " here")))
	})
	assert.Equal(t, "// see\n// "+long+"\n// here\n", got)
}

func TestDeclarationHelpers(t *testing.T) {
	got := render(t, Options{}, func(w *Writer) error {
		anns := []Annotation{fakeAnnotation{typename.Override}, fakeAnnotation{typename.Deprecated}}
		if err := w.EmitAnnotations(anns, false); err != nil {
			return err
		}
		if err := w.EmitAnnotations(anns[:1], true); err != nil {
			return err
		}
		if err := w.EmitModifiers("public", "static"); err != nil {
			return err
		}
		return w.EmitTypeVariables([]typename.TypeVariableName{
			typename.TypeVariable("T"),
			typename.TypeVariable("N", typename.Class("java.lang", "Number"), typename.Class("java.lang", "Comparable")),
		})
	})
	assert.Equal(t, ""+
		"@java.lang.Override\n"+
		"@java.lang.Deprecated\n"+
		"@java.lang.Override public static <T, N extends java.lang.Number & java.lang.Comparable>", got)
}

func TestTypeVariablesMaskClasses(t *testing.T) {
	masked := typename.Class("com.other", "T")
	var w *Writer
	render(t, Options{}, func(wr *Writer) error {
		w = wr
		if err := w.PushPackage("com.example"); err != nil {
			return err
		}
		w.PushTypeVariables([]typename.TypeVariableName{typename.TypeVariable("T")})
		if err := w.Emit("$T", masked); err != nil {
			return err
		}
		return w.PopTypeVariables()
	})
	assert.Zero(t, w.SuggestedImports().Len())
}

func TestNodeLiteral(t *testing.T) {
	got := render(t, Options{}, func(w *Writer) error {
		return w.Emit("return $L;", fakeNode{})
	})
	assert.Equal(t, "return new com.other.Foo();", got)
}

func TestTrailingNewline(t *testing.T) {
	got := render(t, Options{}, func(w *Writer) error {
		if err := w.EmitBlockTrailingNewline(codeblock.Must(codeblock.Of("a"))); err != nil {
			return err
		}
		return w.EmitBlockTrailingNewline(codeblock.Must(codeblock.Of("b\n")))
	})
	assert.Equal(t, "a\nb\n", got)
}

func TestIndentation(t *testing.T) {
	got := render(t, Options{Indent: "\t"}, func(w *Writer) error {
		return w.Emit("class A {\n$>int x;\n\nvoid f() {\n$>x++;\n$<}\n$<}\n")
	})
	assert.Equal(t, "class A {\n\tint x;\n\n\tvoid f() {\n\t\tx++;\n\t}\n}\n", got)
}

func TestWriteAfterClose(t *testing.T) {
	w := New(io.Discard, Options{})
	require.NoError(t, w.Close())

	err := w.Emit("x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrWriterMisuse))
}

func TestTemplateErrorsPropagate(t *testing.T) {
	w := New(io.Discard, Options{})
	err := w.Emit("$L", 1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTemplateSyntax))
}

func TestSuspendStatement(t *testing.T) {
	got := render(t, Options{}, func(w *Writer) error {
		if err := w.Emit("$[run("); err != nil {
			return err
		}
		restore := w.SuspendStatement()
		if err := w.Emit("new Task() {\n$>void go() {}\n$<}"); err != nil {
			return err
		}
		restore()
		return w.Emit(");\n$]")
	})
	assert.Equal(t, "run(new Task() {\n  void go() {}\n});\n", got)
}
