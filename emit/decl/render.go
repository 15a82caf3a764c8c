// Package decl builds Java declarations and renders them through the
// document writer.
//
// Every spec is an immutable value produced by a builder. Builders record
// the first error they meet and return it from Build:
//
//	method, err := decl.NewMethod("main").
//		AddModifiers(decl.Public, decl.Static).
//		Returns(typename.Void).
//		AddParameter(decl.Param(typename.ArrayOf(typename.String), "args")).
//		AddStatement("$T.out.println($S)", typename.Class("java.lang", "System"), "Hello").
//		Build()
//
// A File wraps a top-level type and renders it in two passes: the first
// collects the imports, the second writes the source.
package decl

import (
	"bytes"

	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/writer"
	"github.com/teranos/jpoet/errors"
)

// render emits through a writer with no imports, so every class is fully
// qualified. It backs the String methods of the specs.
func render(fn func(w *writer.Writer) error) string {
	var buf bytes.Buffer
	w := writer.New(&buf, writer.Options{})
	if err := fn(w); err != nil {
		return "!(" + err.Error() + ")"
	}
	if err := w.Close(); err != nil {
		return "!(" + err.Error() + ")"
	}
	return buf.String()
}

// asWriter recovers the document writer a node is emitted through.
func asWriter(t codeblock.Target) (*writer.Writer, error) {
	w, ok := t.(*writer.Writer)
	if !ok {
		return nil, errors.NewArgumentTypeError("declarations emit through *writer.Writer, not %T", t)
	}
	return w, nil
}

// block parses format with args.
func block(format string, args []interface{}) (codeblock.Block, error) {
	return codeblock.Of(format, args...)
}
