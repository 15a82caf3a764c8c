package decl

import (
	"strings"

	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/emit/writer"
	"github.com/teranos/jpoet/errors"
)

// Kind is the kind of a type declaration.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindEnum
	KindAnnotation
)

func (k Kind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAnnotation:
		return "@interface"
	default:
		return "class"
	}
}

// ParseKind returns the kind spelled s: class, interface, enum or annotation.
func ParseKind(s string) (Kind, error) {
	switch strings.TrimPrefix(s, "@") {
	case "class", "":
		return KindClass, nil
	case "interface":
		if strings.HasPrefix(s, "@") {
			return KindAnnotation, nil
		}
		return KindInterface, nil
	case "enum":
		return KindEnum, nil
	case "annotation":
		return KindAnnotation, nil
	}
	return 0, errors.NewInvalidNameError("unknown type kind %q", s)
}

// Modifiers implied by the kind of the enclosing type.
type implicitModifiers struct {
	field    modifierSet
	method   modifierSet
	nested   modifierSet
	asMember modifierSet
}

func (k Kind) implicit() implicitModifiers {
	switch k {
	case KindInterface, KindAnnotation:
		return implicitModifiers{
			field:    setOf(Public, Static, Final),
			method:   setOf(Public, Abstract),
			nested:   setOf(Public, Static),
			asMember: setOf(Static),
		}
	case KindEnum:
		return implicitModifiers{asMember: setOf(Static)}
	default:
		return implicitModifiers{}
	}
}

type enumConstant struct {
	name string
	body TypeSpec
}

// TypeSpec is a class, interface, enum, annotation type or anonymous class.
type TypeSpec struct {
	kind          Kind
	name          string
	anonymousArgs *codeblock.Block // non-nil for anonymous classes and enum constant bodies
	javadoc       codeblock.Block
	annotations   []AnnotationSpec
	modifiers     modifierSet
	typeVariables []typename.TypeVariableName
	superclass    typename.TypeName
	interfaces    []typename.TypeName
	constants     []enumConstant
	fields        []FieldSpec
	staticBlock   codeblock.Block
	initializer   codeblock.Block
	methods       []MethodSpec
	types         []TypeSpec
}

// Name returns the simple name, empty for anonymous classes.
func (t TypeSpec) Name() string { return t.name }

// Kind returns the declaration kind.
func (t TypeSpec) Kind() Kind { return t.kind }

// IsAnonymous reports whether t is an anonymous class body.
func (t TypeSpec) IsAnonymous() bool { return t.anonymousArgs != nil }

// Fields returns the fields.
func (t TypeSpec) Fields() []FieldSpec { return append([]FieldSpec(nil), t.fields...) }

// Methods returns the methods and constructors.
func (t TypeSpec) Methods() []MethodSpec { return append([]MethodSpec(nil), t.methods...) }

// Types returns the nested types.
func (t TypeSpec) Types() []TypeSpec { return append([]TypeSpec(nil), t.types...) }

// EnumConstants returns the enum constant names in declaration order.
func (t TypeSpec) EnumConstants() []string {
	out := make([]string, len(t.constants))
	for i, c := range t.constants {
		out[i] = c.name
	}
	return out
}

// nestedNames returns the simple names of the directly nested types.
func (t TypeSpec) nestedNames() []string {
	out := make([]string, 0, len(t.types))
	for _, n := range t.types {
		out = append(out, n.name)
	}
	return out
}

// emit writes the declaration. enumName is set for enum constants;
// implicit holds the modifiers implied by the enclosing type.
func (t TypeSpec) emit(w *writer.Writer, enumName string, implicit modifierSet) error {
	// Members of a type nested in an expression are not statement continuations.
	restore := w.SuspendStatement()
	defer restore()

	if len(t.typeVariables) > 0 {
		w.PushTypeVariables(t.typeVariables)
	}

	switch {
	case enumName != "":
		if err := w.EmitJavadoc(t.javadoc); err != nil {
			return err
		}
		if err := w.EmitAnnotations(annotations(t.annotations), false); err != nil {
			return err
		}
		if err := w.Emit("$L", enumName); err != nil {
			return err
		}
		if t.anonymousArgs != nil && !t.anonymousArgs.IsEmpty() {
			if err := w.Emit("($L)", *t.anonymousArgs); err != nil {
				return err
			}
		}
		if len(t.fields) == 0 && len(t.methods) == 0 && len(t.types) == 0 {
			return t.popTypeVariables(w)
		}
		if err := w.Emit(" {\n"); err != nil {
			return err
		}

	case t.anonymousArgs != nil:
		super := t.superclass
		if len(t.interfaces) > 0 {
			super = t.interfaces[0]
		}
		if err := w.Emit("new $T($L) {\n", super, *t.anonymousArgs); err != nil {
			return err
		}

	default:
		// The header resolves names without the nested types in scope.
		w.PushType(t.name, nil)
		if err := t.emitHeader(w, implicit); err != nil {
			return err
		}
		if err := w.PopType(); err != nil {
			return err
		}
		if err := w.Emit(" {\n"); err != nil {
			return err
		}
	}

	w.PushType(t.name, t.nestedNames())
	w.IndentBy(1)
	if err := t.emitMembers(w); err != nil {
		return err
	}
	if err := w.UnindentBy(1); err != nil {
		return err
	}
	if err := w.PopType(); err != nil {
		return err
	}
	if err := t.popTypeVariables(w); err != nil {
		return err
	}

	if err := w.Emit("}"); err != nil {
		return err
	}
	// A type that is not also a value ends its line.
	if enumName == "" && t.anonymousArgs == nil {
		return w.Emit("\n")
	}
	return nil
}

func (t TypeSpec) popTypeVariables(w *writer.Writer) error {
	if len(t.typeVariables) == 0 {
		return nil
	}
	return w.PopTypeVariables()
}

func (t TypeSpec) emitHeader(w *writer.Writer, implicit modifierSet) error {
	if err := w.EmitJavadoc(t.javadoc); err != nil {
		return err
	}
	if err := w.EmitAnnotations(annotations(t.annotations), false); err != nil {
		return err
	}
	if err := w.EmitModifiers(t.modifiers.strings(implicit.union(t.kind.implicit().asMember))...); err != nil {
		return err
	}
	if err := w.Emit("$L $L", t.kind.String(), t.name); err != nil {
		return err
	}
	if err := w.EmitTypeVariables(t.typeVariables); err != nil {
		return err
	}

	var extends, implements []typename.TypeName
	if t.kind == KindInterface {
		extends = t.interfaces
	} else {
		if t.superclass != nil && !typename.Equal(t.superclass, typename.Object) {
			extends = []typename.TypeName{t.superclass}
		}
		implements = t.interfaces
	}
	if err := emitTypeList(w, " extends", extends); err != nil {
		return err
	}
	return emitTypeList(w, " implements", implements)
}

func emitTypeList(w *writer.Writer, keyword string, types []typename.TypeName) error {
	if len(types) == 0 {
		return nil
	}
	if err := w.Emit(keyword); err != nil {
		return err
	}
	for i, t := range types {
		format := " $T"
		if i > 0 {
			format = ", $T"
		}
		if err := w.Emit(format, t); err != nil {
			return err
		}
	}
	return nil
}

func (t TypeSpec) emitMembers(w *writer.Writer) error {
	implicit := t.kind.implicit()
	first := true
	separate := func() error {
		if first {
			first = false
			return nil
		}
		return w.Emit("\n")
	}

	needsSeparator := t.kind == KindEnum && (len(t.fields) > 0 || len(t.methods) > 0 || len(t.types) > 0)
	for i, c := range t.constants {
		if err := separate(); err != nil {
			return err
		}
		if err := c.body.emit(w, c.name, 0); err != nil {
			return err
		}
		switch {
		case i < len(t.constants)-1:
			if err := w.Emit(",\n"); err != nil {
				return err
			}
		case !needsSeparator:
			if err := w.Emit("\n"); err != nil {
				return err
			}
		}
	}
	if needsSeparator {
		if err := w.Emit(";\n"); err != nil {
			return err
		}
	}

	for _, f := range t.fields {
		if !f.HasModifier(Static) {
			continue
		}
		if err := separate(); err != nil {
			return err
		}
		if err := f.emit(w, implicit.field); err != nil {
			return err
		}
	}
	if !t.staticBlock.IsEmpty() {
		if err := separate(); err != nil {
			return err
		}
		if err := emitInitializer(w, "static {\n", t.staticBlock); err != nil {
			return err
		}
	}
	for _, f := range t.fields {
		if f.HasModifier(Static) {
			continue
		}
		if err := separate(); err != nil {
			return err
		}
		if err := f.emit(w, implicit.field); err != nil {
			return err
		}
	}
	if !t.initializer.IsEmpty() {
		if err := separate(); err != nil {
			return err
		}
		if err := emitInitializer(w, "{\n", t.initializer); err != nil {
			return err
		}
	}
	for _, constructors := range []bool{true, false} {
		for _, m := range t.methods {
			if m.IsConstructor() != constructors {
				continue
			}
			if err := separate(); err != nil {
				return err
			}
			if err := m.emit(w, t.name, implicit.method); err != nil {
				return err
			}
		}
	}
	for _, n := range t.types {
		if err := separate(); err != nil {
			return err
		}
		if err := n.emit(w, "", implicit.nested); err != nil {
			return err
		}
	}
	return nil
}

// EmitNode writes an anonymous class, for use as a $L argument.
func (t TypeSpec) EmitNode(target codeblock.Target) error {
	w, err := asWriter(target)
	if err != nil {
		return err
	}
	return t.emit(w, "", 0)
}

func (t TypeSpec) String() string {
	return render(func(w *writer.Writer) error { return t.emit(w, "", 0) })
}

func emitInitializer(w *writer.Writer, open string, body codeblock.Block) error {
	if err := w.Emit(open + "$>"); err != nil {
		return err
	}
	if err := w.EmitBlockTrailingNewline(body); err != nil {
		return err
	}
	return w.Emit("$<}\n")
}
