package decl

import (
	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/errors"
)

// TypeBuilder builds a TypeSpec.
type TypeBuilder struct {
	spec        TypeSpec
	javadoc     *codeblock.Builder
	staticBlock *codeblock.Builder
	initializer *codeblock.Builder
	err         error
}

func newType(kind Kind, name string) *TypeBuilder {
	b := &TypeBuilder{
		spec:        TypeSpec{kind: kind, name: name},
		javadoc:     codeblock.NewBuilder(),
		staticBlock: codeblock.NewBuilder(),
		initializer: codeblock.NewBuilder(),
	}
	if err := typename.CheckName(kind.String(), name); err != nil {
		b.err = err
	}
	return b
}

// NewClass starts a class.
func NewClass(name string) *TypeBuilder { return newType(KindClass, name) }

// NewInterface starts an interface.
func NewInterface(name string) *TypeBuilder { return newType(KindInterface, name) }

// NewEnum starts an enum.
func NewEnum(name string) *TypeBuilder { return newType(KindEnum, name) }

// NewAnnotationType starts an annotation type (@interface).
func NewAnnotationType(name string) *TypeBuilder { return newType(KindAnnotation, name) }

// NewKind starts a type of the given kind.
func NewKind(kind Kind, name string) *TypeBuilder { return newType(kind, name) }

// NewAnonymousClass starts an anonymous class whose constructor arguments
// are format with args. Set its supertype with Superclass or AddSuperinterface.
func NewAnonymousClass(format string, args ...interface{}) *TypeBuilder {
	b := &TypeBuilder{
		spec:        TypeSpec{kind: KindClass},
		javadoc:     codeblock.NewBuilder(),
		staticBlock: codeblock.NewBuilder(),
		initializer: codeblock.NewBuilder(),
	}
	ctorArgs, err := block(format, args)
	if err != nil {
		b.err = err
	}
	b.spec.anonymousArgs = &ctorArgs
	return b
}

// ToBuilder returns a builder initialized with the contents of t.
func (t TypeSpec) ToBuilder() *TypeBuilder {
	b := &TypeBuilder{
		spec:        t,
		javadoc:     t.javadoc.ToBuilder(),
		staticBlock: t.staticBlock.ToBuilder(),
		initializer: t.initializer.ToBuilder(),
	}
	b.spec.annotations = append([]AnnotationSpec(nil), t.annotations...)
	b.spec.typeVariables = append([]typename.TypeVariableName(nil), t.typeVariables...)
	b.spec.interfaces = append([]typename.TypeName(nil), t.interfaces...)
	b.spec.constants = append([]enumConstant(nil), t.constants...)
	b.spec.fields = append([]FieldSpec(nil), t.fields...)
	b.spec.methods = append([]MethodSpec(nil), t.methods...)
	b.spec.types = append([]TypeSpec(nil), t.types...)
	return b
}

func (b *TypeBuilder) fail(err error) *TypeBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// AddJavadoc appends to the type's javadoc.
func (b *TypeBuilder) AddJavadoc(format string, args ...interface{}) *TypeBuilder {
	b.javadoc.Add(format, args...)
	return b
}

// AddAnnotation adds an annotation.
func (b *TypeBuilder) AddAnnotation(a AnnotationSpec) *TypeBuilder {
	b.spec.annotations = append(b.spec.annotations, a)
	return b
}

// AddModifiers adds modifiers.
func (b *TypeBuilder) AddModifiers(mods ...Modifier) *TypeBuilder {
	b.spec.modifiers = b.spec.modifiers.with(mods...)
	return b
}

// AddTypeVariable declares a type parameter.
func (b *TypeBuilder) AddTypeVariable(v typename.TypeVariableName) *TypeBuilder {
	b.spec.typeVariables = append(b.spec.typeVariables, v)
	return b
}

// Superclass sets the superclass. Only classes have one.
func (b *TypeBuilder) Superclass(t typename.TypeName) *TypeBuilder {
	if b.spec.kind != KindClass {
		return b.fail(errors.NewWriterMisuseError("only classes have super classes, not %s %s", b.spec.kind, b.spec.name))
	}
	if b.spec.superclass != nil {
		return b.fail(errors.NewWriterMisuseError("superclass already set to %s", b.spec.superclass))
	}
	if t == nil || t.IsPrimitive() {
		return b.fail(errors.NewArgumentTypeError("superclass may not be %v", t))
	}
	b.spec.superclass = t
	return b
}

// AddSuperinterface adds an implemented (or, for interfaces, extended) interface.
func (b *TypeBuilder) AddSuperinterface(t typename.TypeName) *TypeBuilder {
	if t == nil || t.IsPrimitive() {
		return b.fail(errors.NewArgumentTypeError("superinterface may not be %v", t))
	}
	b.spec.interfaces = append(b.spec.interfaces, t)
	return b
}

// AddEnumConstant adds an enum constant without a body.
func (b *TypeBuilder) AddEnumConstant(name string) *TypeBuilder {
	return b.AddEnumConstantWith(name, TypeSpec{})
}

// AddEnumConstantWith adds an enum constant whose arguments and body come
// from an anonymous class.
func (b *TypeBuilder) AddEnumConstantWith(name string, body TypeSpec) *TypeBuilder {
	if b.spec.kind != KindEnum {
		return b.fail(errors.NewWriterMisuseError("%s %s cannot have enum constants", b.spec.kind, b.spec.name))
	}
	if err := typename.CheckName("enum constant", name); err != nil {
		return b.fail(err)
	}
	for _, c := range b.spec.constants {
		if c.name == name {
			return b.fail(errors.NewInvalidNameError("duplicate enum constant %s in %s", name, b.spec.name))
		}
	}
	b.spec.constants = append(b.spec.constants, enumConstant{name: name, body: body})
	return b
}

// AddField adds a field.
func (b *TypeBuilder) AddField(f FieldSpec) *TypeBuilder {
	b.spec.fields = append(b.spec.fields, f)
	return b
}

// AddStaticBlock appends code to the static initializer.
func (b *TypeBuilder) AddStaticBlock(c codeblock.Block) *TypeBuilder {
	b.staticBlock.AddBlock(c)
	return b
}

// AddInitializerBlock appends code to the instance initializer.
func (b *TypeBuilder) AddInitializerBlock(c codeblock.Block) *TypeBuilder {
	if b.spec.kind != KindClass && b.spec.kind != KindEnum {
		return b.fail(errors.NewWriterMisuseError("%s %s cannot have an initializer block", b.spec.kind, b.spec.name))
	}
	b.initializer.AddBlock(c)
	return b
}

// AddMethod adds a method or constructor.
func (b *TypeBuilder) AddMethod(m MethodSpec) *TypeBuilder {
	b.spec.methods = append(b.spec.methods, m)
	return b
}

// AddType adds a nested type.
func (b *TypeBuilder) AddType(t TypeSpec) *TypeBuilder {
	b.spec.types = append(b.spec.types, t)
	return b
}

// Build validates and returns the type.
func (b *TypeBuilder) Build() (TypeSpec, error) {
	if b.err != nil {
		return TypeSpec{}, b.err
	}
	spec := b.spec
	var err error
	if spec.javadoc, err = b.javadoc.Build(); err != nil {
		return TypeSpec{}, err
	}
	if spec.staticBlock, err = b.staticBlock.Build(); err != nil {
		return TypeSpec{}, err
	}
	if spec.initializer, err = b.initializer.Build(); err != nil {
		return TypeSpec{}, err
	}

	spec.annotations = append([]AnnotationSpec(nil), spec.annotations...)
	spec.typeVariables = append([]typename.TypeVariableName(nil), spec.typeVariables...)
	spec.interfaces = append([]typename.TypeName(nil), spec.interfaces...)
	spec.constants = append([]enumConstant(nil), spec.constants...)
	spec.fields = append([]FieldSpec(nil), spec.fields...)
	spec.methods = append([]MethodSpec(nil), spec.methods...)
	spec.types = append([]TypeSpec(nil), spec.types...)

	if err := spec.normalize(); err != nil {
		return TypeSpec{}, err
	}
	return spec, nil
}

// normalize applies the modifiers an interface or annotation type implies
// and checks the rules each kind imposes on its members.
func (t *TypeSpec) normalize() error {
	if t.anonymousArgs != nil {
		if t.superclass != nil && len(t.interfaces) > 0 {
			return errors.NewWriterMisuseError("anonymous class may extend a class or implement one interface, not both")
		}
		if len(t.interfaces) > 1 {
			return errors.NewWriterMisuseError("anonymous class cannot implement %d interfaces", len(t.interfaces))
		}
		if t.superclass == nil && len(t.interfaces) == 0 {
			t.superclass = typename.Object
		}
	}

	if t.kind == KindEnum && len(t.constants) == 0 {
		return errors.WithHint(
			errors.NewWriterMisuseError("at least one enum constant is required for %s", t.name),
			"add one with AddEnumConstant")
	}

	for i := range t.fields {
		f := &t.fields[i]
		if t.kind == KindInterface || t.kind == KindAnnotation {
			if f.modifiers.has(Private) || f.modifiers.has(Protected) {
				return errors.NewWriterMisuseError("%s %s.%s must be public", t.kind, t.name, f.name)
			}
			f.modifiers = f.modifiers.union(t.kind.implicit().field)
			if f.initializer.IsEmpty() {
				return errors.NewWriterMisuseError("%s %s.%s requires an initializer", t.kind, t.name, f.name)
			}
		}
	}

	for i := range t.methods {
		m := &t.methods[i]
		switch t.kind {
		case KindInterface:
			if m.IsConstructor() {
				return errors.NewWriterMisuseError("interface %s cannot have constructors", t.name)
			}
			if !m.modifiers.has(Private) {
				m.modifiers = m.modifiers.with(Public)
			}
			if !m.modifiers.has(Static) && !m.modifiers.has(Default) && !m.modifiers.has(Private) {
				if !m.code.IsEmpty() {
					return errors.WithHint(
						errors.NewWriterMisuseError("interface method %s.%s has a body", t.name, m.name),
						"mark it default, static or private")
				}
				m.modifiers = m.modifiers.with(Abstract)
			}
		case KindAnnotation:
			if m.IsConstructor() || len(m.parameters) > 0 {
				return errors.NewWriterMisuseError("annotation element %s.%s takes no parameters", t.name, m.name)
			}
			m.modifiers = m.modifiers.union(t.kind.implicit().method)
		default:
			if m.modifiers.has(Abstract) && !t.modifiers.has(Abstract) && t.kind == KindClass {
				return errors.NewWriterMisuseError("non-abstract type %s cannot declare abstract method %s", t.name, m.name)
			}
		}
		if t.kind != KindAnnotation && !m.defaultValue.IsEmpty() {
			return errors.NewWriterMisuseError("%s %s.%s cannot have a default value", t.kind, t.name, m.name)
		}
		if t.kind != KindInterface && m.modifiers.has(Default) {
			return errors.NewWriterMisuseError("%s %s.%s cannot be default", t.kind, t.name, m.name)
		}
	}

	if t.kind == KindInterface || t.kind == KindAnnotation {
		for i := range t.types {
			t.types[i].modifiers = t.types[i].modifiers.union(t.kind.implicit().nested)
		}
	}

	seen := make(map[string]bool, len(t.types))
	for _, n := range t.types {
		if n.name == t.name {
			return errors.NewInvalidNameError("%s has a nested type with the same name", t.name)
		}
		if seen[n.name] {
			return errors.NewInvalidNameError("%s declares nested type %s twice", t.name, n.name)
		}
		seen[n.name] = true
	}
	return nil
}
