package decl

import (
	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/emit/writer"
	"github.com/teranos/jpoet/errors"
)

// FieldSpec is a field declaration.
type FieldSpec struct {
	typ         typename.TypeName
	name        string
	javadoc     codeblock.Block
	annotations []AnnotationSpec
	modifiers   modifierSet
	initializer codeblock.Block
}

// Name returns the field name.
func (f FieldSpec) Name() string { return f.name }

// Type returns the field type.
func (f FieldSpec) Type() typename.TypeName { return f.typ }

// Modifiers returns the declared modifiers in canonical order.
func (f FieldSpec) Modifiers() []Modifier { return f.modifiers.list() }

// HasModifier reports whether m was declared.
func (f FieldSpec) HasModifier(m Modifier) bool { return f.modifiers.has(m) }

// Initializer returns the initializer expression, empty when there is none.
func (f FieldSpec) Initializer() codeblock.Block { return f.initializer }

func (f FieldSpec) emit(w *writer.Writer, implicit modifierSet) error {
	if err := w.EmitJavadoc(f.javadoc); err != nil {
		return err
	}
	if err := w.EmitAnnotations(annotations(f.annotations), false); err != nil {
		return err
	}
	if err := w.EmitModifiers(f.modifiers.strings(implicit)...); err != nil {
		return err
	}
	if err := w.Emit("$T $L", f.typ, f.name); err != nil {
		return err
	}
	if !f.initializer.IsEmpty() {
		if err := w.Emit(" = "); err != nil {
			return err
		}
		if err := w.EmitBlock(f.initializer); err != nil {
			return err
		}
	}
	return w.Emit(";\n")
}

func (f FieldSpec) String() string {
	return render(func(w *writer.Writer) error { return f.emit(w, 0) })
}

// FieldBuilder builds a FieldSpec.
type FieldBuilder struct {
	spec    FieldSpec
	javadoc *codeblock.Builder
	err     error
}

// NewField starts a field of type t named name.
func NewField(t typename.TypeName, name string, mods ...Modifier) *FieldBuilder {
	b := &FieldBuilder{
		spec:    FieldSpec{typ: t, name: name, modifiers: setOf(mods...)},
		javadoc: codeblock.NewBuilder(),
	}
	if t == nil {
		b.err = errors.NewArgumentTypeError("field %s has no type", name)
	} else if err := typename.CheckName("field", name); err != nil {
		b.err = err
	}
	return b
}

// AddJavadoc appends to the field's javadoc.
func (b *FieldBuilder) AddJavadoc(format string, args ...interface{}) *FieldBuilder {
	b.javadoc.Add(format, args...)
	return b
}

// AddAnnotation adds an annotation.
func (b *FieldBuilder) AddAnnotation(a AnnotationSpec) *FieldBuilder {
	b.spec.annotations = append(b.spec.annotations, a)
	return b
}

// AddModifiers adds modifiers.
func (b *FieldBuilder) AddModifiers(mods ...Modifier) *FieldBuilder {
	b.spec.modifiers = b.spec.modifiers.with(mods...)
	return b
}

// Initializer sets the initializer expression.
func (b *FieldBuilder) Initializer(format string, args ...interface{}) *FieldBuilder {
	if b.err != nil {
		return b
	}
	if !b.spec.initializer.IsEmpty() {
		b.err = errors.NewWriterMisuseError("field %s already has an initializer", b.spec.name)
		return b
	}
	init, err := block(format, args)
	if err != nil {
		b.err = err
		return b
	}
	b.spec.initializer = init
	return b
}

// Build returns the field.
func (b *FieldBuilder) Build() (FieldSpec, error) {
	if b.err != nil {
		return FieldSpec{}, b.err
	}
	javadoc, err := b.javadoc.Build()
	if err != nil {
		return FieldSpec{}, err
	}
	spec := b.spec
	spec.javadoc = javadoc
	spec.annotations = append([]AnnotationSpec(nil), b.spec.annotations...)
	return spec, nil
}
