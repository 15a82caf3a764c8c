package decl

import (
	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/emit/writer"
	"github.com/teranos/jpoet/errors"
)

// ParameterSpec is a method or constructor parameter.
type ParameterSpec struct {
	typ         typename.TypeName
	name        string
	javadoc     codeblock.Block
	annotations []AnnotationSpec
	final       bool
}

// Param returns a parameter without annotations. It panics on an invalid
// name; use NewParameter to handle the error.
func Param(t typename.TypeName, name string) ParameterSpec {
	p, err := NewParameter(t, name).Build()
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the parameter name.
func (p ParameterSpec) Name() string { return p.name }

// Type returns the parameter type.
func (p ParameterSpec) Type() typename.TypeName { return p.typ }

func (p ParameterSpec) emit(w *writer.Writer, varargs bool) error {
	if err := w.EmitAnnotations(annotations(p.annotations), true); err != nil {
		return err
	}
	if p.final {
		if err := w.EmitModifiers(Final.String()); err != nil {
			return err
		}
	}
	if varargs {
		array, _ := p.typ.(typename.ArrayTypeName)
		return w.Emit("$T... $L", array.Component(), p.name)
	}
	return w.Emit("$T $L", p.typ, p.name)
}

func (p ParameterSpec) String() string {
	return render(func(w *writer.Writer) error { return p.emit(w, false) })
}

// ParameterBuilder builds a ParameterSpec.
type ParameterBuilder struct {
	spec    ParameterSpec
	javadoc *codeblock.Builder
	err     error
}

// NewParameter starts a parameter of type t named name.
func NewParameter(t typename.TypeName, name string, mods ...Modifier) *ParameterBuilder {
	b := &ParameterBuilder{spec: ParameterSpec{typ: t, name: name}, javadoc: codeblock.NewBuilder()}
	if t == nil {
		b.err = errors.NewArgumentTypeError("parameter %s has no type", name)
	} else if err := typename.CheckName("parameter", name); err != nil {
		b.err = err
	}
	return b.AddModifiers(mods...)
}

// AddModifiers adds modifiers. Only final is allowed on a parameter.
func (b *ParameterBuilder) AddModifiers(mods ...Modifier) *ParameterBuilder {
	for _, m := range mods {
		if m != Final {
			if b.err == nil {
				b.err = errors.NewInvalidNameError("unexpected parameter modifier: %s", m)
			}
			continue
		}
		b.spec.final = true
	}
	return b
}

// AddAnnotation adds an annotation.
func (b *ParameterBuilder) AddAnnotation(a AnnotationSpec) *ParameterBuilder {
	b.spec.annotations = append(b.spec.annotations, a)
	return b
}

// AddJavadoc appends text used for the @param tag of the enclosing method.
func (b *ParameterBuilder) AddJavadoc(format string, args ...interface{}) *ParameterBuilder {
	b.javadoc.Add(format, args...)
	return b
}

// Build returns the parameter.
func (b *ParameterBuilder) Build() (ParameterSpec, error) {
	if b.err != nil {
		return ParameterSpec{}, b.err
	}
	javadoc, err := b.javadoc.Build()
	if err != nil {
		return ParameterSpec{}, err
	}
	spec := b.spec
	spec.javadoc = javadoc
	spec.annotations = append([]AnnotationSpec(nil), b.spec.annotations...)
	return spec, nil
}
