package decl

import (
	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/emit/writer"
)

// Members of a multi-member annotation and elements of an array value are
// indented by this many levels.
const annotationIndent = 2

type annotationMember struct {
	name   string
	values []codeblock.Block
}

// AnnotationSpec is an annotation such as @Deprecated or
// @SuppressWarnings("unchecked").
type AnnotationSpec struct {
	class   typename.ClassName
	members []annotationMember
}

// Annotation returns a marker annotation of class c.
func Annotation(c typename.ClassName) AnnotationSpec {
	return AnnotationSpec{class: c}
}

// Class returns the annotation type.
func (a AnnotationSpec) Class() typename.ClassName { return a.class }

// MemberNames returns the member names in the order they were added.
func (a AnnotationSpec) MemberNames() []string {
	out := make([]string, len(a.members))
	for i, m := range a.members {
		out[i] = m.name
	}
	return out
}

// Member returns the values of the named member.
func (a AnnotationSpec) Member(name string) []codeblock.Block {
	for _, m := range a.members {
		if m.name == name {
			return append([]codeblock.Block(nil), m.values...)
		}
	}
	return nil
}

// EmitAnnotation writes the annotation. Inline annotations stay on one line.
func (a AnnotationSpec) EmitAnnotation(w *writer.Writer, inline bool) error {
	whitespace, separator := "\n", ",\n"
	if inline {
		whitespace, separator = "", ", "
	}

	switch {
	case len(a.members) == 0:
		return w.Emit("@$T", a.class)
	case len(a.members) == 1 && a.members[0].name == "value":
		if err := w.Emit("@$T(", a.class); err != nil {
			return err
		}
		if err := emitAnnotationValues(w, whitespace, separator, a.members[0].values); err != nil {
			return err
		}
		return w.Emit(")")
	}

	if err := w.Emit("@$T("+whitespace, a.class); err != nil {
		return err
	}
	w.IndentBy(annotationIndent)
	for i, m := range a.members {
		if err := w.Emit("$L = ", m.name); err != nil {
			return err
		}
		if err := emitAnnotationValues(w, whitespace, separator, m.values); err != nil {
			return err
		}
		if i < len(a.members)-1 {
			if err := w.Emit(separator); err != nil {
				return err
			}
		}
	}
	if err := w.UnindentBy(annotationIndent); err != nil {
		return err
	}
	return w.Emit(whitespace + ")")
}

func emitAnnotationValues(w *writer.Writer, whitespace, separator string, values []codeblock.Block) error {
	if len(values) == 1 {
		w.IndentBy(annotationIndent)
		if err := w.EmitBlock(values[0]); err != nil {
			return err
		}
		return w.UnindentBy(annotationIndent)
	}

	if err := w.Emit("{" + whitespace); err != nil {
		return err
	}
	w.IndentBy(annotationIndent)
	for i, v := range values {
		if i > 0 {
			if err := w.Emit(separator); err != nil {
				return err
			}
		}
		if err := w.EmitBlock(v); err != nil {
			return err
		}
	}
	if err := w.UnindentBy(annotationIndent); err != nil {
		return err
	}
	return w.Emit(whitespace + "}")
}

// EmitNode writes the annotation inline, for use as a $L argument.
func (a AnnotationSpec) EmitNode(t codeblock.Target) error {
	w, err := asWriter(t)
	if err != nil {
		return err
	}
	return a.EmitAnnotation(w, true)
}

func (a AnnotationSpec) String() string {
	return render(func(w *writer.Writer) error { return a.EmitAnnotation(w, true) })
}

// AnnotationBuilder builds an AnnotationSpec.
type AnnotationBuilder struct {
	spec AnnotationSpec
	err  error
}

// NewAnnotation starts an annotation of class c.
func NewAnnotation(c typename.ClassName) *AnnotationBuilder {
	return &AnnotationBuilder{spec: AnnotationSpec{class: c}}
}

// AddMember adds a value to the named member. Adding several values to one
// member makes it an array.
func (b *AnnotationBuilder) AddMember(name, format string, args ...interface{}) *AnnotationBuilder {
	if b.err != nil {
		return b
	}
	if err := typename.CheckName("annotation member", name); err != nil {
		b.err = err
		return b
	}
	value, err := block(format, args)
	if err != nil {
		b.err = err
		return b
	}
	for i := range b.spec.members {
		if b.spec.members[i].name == name {
			b.spec.members[i].values = append(b.spec.members[i].values, value)
			return b
		}
	}
	b.spec.members = append(b.spec.members, annotationMember{name: name, values: []codeblock.Block{value}})
	return b
}

// Build returns the annotation.
func (b *AnnotationBuilder) Build() (AnnotationSpec, error) {
	if b.err != nil {
		return AnnotationSpec{}, b.err
	}
	if err := b.spec.class.Validate(); err != nil {
		return AnnotationSpec{}, err
	}
	members := make([]annotationMember, len(b.spec.members))
	for i, m := range b.spec.members {
		members[i] = annotationMember{name: m.name, values: append([]codeblock.Block(nil), m.values...)}
	}
	return AnnotationSpec{class: b.spec.class, members: members}, nil
}

// annotations converts specs for the writer.
func annotations(specs []AnnotationSpec) []writer.Annotation {
	out := make([]writer.Annotation, len(specs))
	for i, a := range specs {
		out[i] = a
	}
	return out
}
