package writer

import (
	"github.com/teranos/jpoet/emit/typename"
)

// Annotation is an annotation that emits itself, either inline ("@A(1) ")
// or on its own line.
type Annotation interface {
	EmitAnnotation(w *Writer, inline bool) error
}

// EmitAnnotations emits each annotation followed by a space when inline, or
// a newline otherwise.
func (w *Writer) EmitAnnotations(annotations []Annotation, inline bool) error {
	sep := "\n"
	if inline {
		sep = " "
	}
	for _, a := range annotations {
		if err := a.EmitAnnotation(w, inline); err != nil {
			return err
		}
		if err := w.emitAndIndent(sep); err != nil {
			return err
		}
	}
	return nil
}

// EmitModifiers emits each modifier followed by a space.
func (w *Writer) EmitModifiers(modifiers ...string) error {
	for _, m := range modifiers {
		if err := w.emitAndIndent(m + " "); err != nil {
			return err
		}
	}
	return nil
}

// EmitTypeVariables emits a type parameter list such as
// "<K extends Comparable<K>, V>". Nothing is emitted for an empty list.
func (w *Writer) EmitTypeVariables(vars []typename.TypeVariableName) error {
	if len(vars) == 0 {
		return nil
	}
	if err := w.emitAndIndent("<"); err != nil {
		return err
	}
	for i, v := range vars {
		if i > 0 {
			if err := w.emitAndIndent(", "); err != nil {
				return err
			}
		}
		if err := w.emitAndIndent(v.Name()); err != nil {
			return err
		}
		for j, bound := range v.Bounds() {
			format := " & $T"
			if j == 0 {
				format = " extends $T"
			}
			if err := w.Emit(format, bound); err != nil {
				return err
			}
		}
	}
	return w.emitAndIndent(">")
}
