package decl

import (
	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/emit/writer"
	"github.com/teranos/jpoet/errors"
)

const constructorName = "<init>"

// MethodSpec is a method or constructor declaration.
type MethodSpec struct {
	name          string
	javadoc       codeblock.Block
	annotations   []AnnotationSpec
	modifiers     modifierSet
	typeVariables []typename.TypeVariableName
	returns       typename.TypeName
	parameters    []ParameterSpec
	varargs       bool
	exceptions    []typename.TypeName
	code          codeblock.Block
	defaultValue  codeblock.Block
}

// Name returns the method name, "<init>" for constructors.
func (m MethodSpec) Name() string { return m.name }

// IsConstructor reports whether m is a constructor.
func (m MethodSpec) IsConstructor() bool { return m.name == constructorName }

// Returns returns the return type, nil for constructors.
func (m MethodSpec) Returns() typename.TypeName { return m.returns }

// Parameters returns the parameters.
func (m MethodSpec) Parameters() []ParameterSpec {
	return append([]ParameterSpec(nil), m.parameters...)
}

// Modifiers returns the declared modifiers in canonical order.
func (m MethodSpec) Modifiers() []Modifier { return m.modifiers.list() }

// HasModifier reports whether mod was declared.
func (m MethodSpec) HasModifier(mod Modifier) bool { return m.modifiers.has(mod) }

// Code returns the method body.
func (m MethodSpec) Code() codeblock.Block { return m.code }

// javadocWithParameters appends @param tags for documented parameters.
func (m MethodSpec) javadocWithParameters() (codeblock.Block, error) {
	b := m.javadoc.ToBuilder()
	first := true
	for _, p := range m.parameters {
		if p.javadoc.IsEmpty() {
			continue
		}
		if first && !m.javadoc.IsEmpty() {
			b.Add("\n")
		}
		first = false
		b.Add("@param $L $L", p.name, p.javadoc)
	}
	return b.Build()
}

func (m MethodSpec) emit(w *writer.Writer, enclosingName string, implicit modifierSet) error {
	javadoc, err := m.javadocWithParameters()
	if err != nil {
		return err
	}
	if err := w.EmitJavadoc(javadoc); err != nil {
		return err
	}
	if err := w.EmitAnnotations(annotations(m.annotations), false); err != nil {
		return err
	}
	if err := w.EmitModifiers(m.modifiers.strings(implicit)...); err != nil {
		return err
	}

	if len(m.typeVariables) > 0 {
		w.PushTypeVariables(m.typeVariables)
		if err := w.EmitTypeVariables(m.typeVariables); err != nil {
			return err
		}
		if err := w.Emit(" "); err != nil {
			return err
		}
	}

	if m.IsConstructor() {
		err = w.Emit("$L($Z", enclosingName)
	} else {
		err = w.Emit("$T $L($Z", m.returns, m.name)
	}
	if err != nil {
		return err
	}

	for i, p := range m.parameters {
		if i > 0 {
			if err := w.Emit(",$W"); err != nil {
				return err
			}
		}
		if err := p.emit(w, m.varargs && i == len(m.parameters)-1); err != nil {
			return err
		}
	}
	if err := w.Emit(")"); err != nil {
		return err
	}

	if !m.defaultValue.IsEmpty() {
		if err := w.Emit(" default $L", m.defaultValue); err != nil {
			return err
		}
	}

	if len(m.exceptions) > 0 {
		if err := w.Emit("$Wthrows"); err != nil {
			return err
		}
		for i, e := range m.exceptions {
			format := "$W$T"
			if i > 0 {
				format = ",$W$T"
			}
			if err := w.Emit(format, e); err != nil {
				return err
			}
		}
	}

	switch {
	case m.modifiers.has(Abstract):
		err = w.Emit(";\n")
	case m.modifiers.has(Native):
		err = w.Emit("$L;\n", m.code)
	default:
		err = w.Emit(" {\n$>")
		if err == nil {
			err = w.EmitBlockTrailingNewline(m.code)
		}
		if err == nil {
			err = w.Emit("$<}\n")
		}
	}
	if err != nil {
		return err
	}

	if len(m.typeVariables) > 0 {
		return w.PopTypeVariables()
	}
	return nil
}

func (m MethodSpec) String() string {
	return render(func(w *writer.Writer) error { return m.emit(w, "Constructor", 0) })
}

// MethodBuilder builds a MethodSpec.
type MethodBuilder struct {
	spec    MethodSpec
	javadoc *codeblock.Builder
	code    *codeblock.Builder
	err     error
}

// NewMethod starts a method named name. The return type defaults to void.
func NewMethod(name string) *MethodBuilder {
	b := &MethodBuilder{
		spec:    MethodSpec{name: name, returns: typename.Void},
		javadoc: codeblock.NewBuilder(),
		code:    codeblock.NewBuilder(),
	}
	if err := typename.CheckName("method", name); err != nil {
		b.err = err
	}
	return b
}

// NewConstructor starts a constructor.
func NewConstructor() *MethodBuilder {
	return &MethodBuilder{
		spec:    MethodSpec{name: constructorName},
		javadoc: codeblock.NewBuilder(),
		code:    codeblock.NewBuilder(),
	}
}

func (b *MethodBuilder) fail(err error) *MethodBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// AddJavadoc appends to the method's javadoc.
func (b *MethodBuilder) AddJavadoc(format string, args ...interface{}) *MethodBuilder {
	b.javadoc.Add(format, args...)
	return b
}

// AddAnnotation adds an annotation.
func (b *MethodBuilder) AddAnnotation(a AnnotationSpec) *MethodBuilder {
	b.spec.annotations = append(b.spec.annotations, a)
	return b
}

// AddModifiers adds modifiers.
func (b *MethodBuilder) AddModifiers(mods ...Modifier) *MethodBuilder {
	b.spec.modifiers = b.spec.modifiers.with(mods...)
	return b
}

// AddTypeVariable declares a type parameter.
func (b *MethodBuilder) AddTypeVariable(v typename.TypeVariableName) *MethodBuilder {
	b.spec.typeVariables = append(b.spec.typeVariables, v)
	return b
}

// Returns sets the return type.
func (b *MethodBuilder) Returns(t typename.TypeName) *MethodBuilder {
	if b.spec.IsConstructor() {
		return b.fail(errors.NewWriterMisuseError("constructor cannot have a return type"))
	}
	if t == nil {
		return b.fail(errors.NewArgumentTypeError("method %s: nil return type", b.spec.name))
	}
	b.spec.returns = t
	return b
}

// AddParameter appends a parameter.
func (b *MethodBuilder) AddParameter(p ParameterSpec) *MethodBuilder {
	b.spec.parameters = append(b.spec.parameters, p)
	return b
}

// AddParam appends a parameter built from a type and a name.
func (b *MethodBuilder) AddParam(t typename.TypeName, name string, mods ...Modifier) *MethodBuilder {
	p, err := NewParameter(t, name, mods...).Build()
	if err != nil {
		return b.fail(err)
	}
	return b.AddParameter(p)
}

// Varargs makes the last parameter variadic. It must be an array.
func (b *MethodBuilder) Varargs(varargs bool) *MethodBuilder {
	b.spec.varargs = varargs
	return b
}

// AddException declares a thrown type.
func (b *MethodBuilder) AddException(t typename.TypeName) *MethodBuilder {
	b.spec.exceptions = append(b.spec.exceptions, t)
	return b
}

// DefaultValue sets the default of an annotation type element.
func (b *MethodBuilder) DefaultValue(format string, args ...interface{}) *MethodBuilder {
	v, err := block(format, args)
	if err != nil {
		return b.fail(err)
	}
	b.spec.defaultValue = v
	return b
}

// AddCode appends format to the body.
func (b *MethodBuilder) AddCode(format string, args ...interface{}) *MethodBuilder {
	b.code.Add(format, args...)
	return b
}

// AddNamedCode appends format with named arguments to the body.
func (b *MethodBuilder) AddNamedCode(format string, args map[string]interface{}) *MethodBuilder {
	b.code.AddNamed(format, args)
	return b
}

// AddBlock appends a block to the body.
func (b *MethodBuilder) AddBlock(c codeblock.Block) *MethodBuilder {
	b.code.AddBlock(c)
	return b
}

// AddStatement appends a statement to the body.
func (b *MethodBuilder) AddStatement(format string, args ...interface{}) *MethodBuilder {
	b.code.AddStatement(format, args...)
	return b
}

// AddComment appends a line comment to the body.
func (b *MethodBuilder) AddComment(format string, args ...interface{}) *MethodBuilder {
	b.code.AddComment(format, args...)
	return b
}

// BeginControlFlow opens a control flow block in the body.
func (b *MethodBuilder) BeginControlFlow(controlFlow string, args ...interface{}) *MethodBuilder {
	b.code.BeginControlFlow(controlFlow, args...)
	return b
}

// NextControlFlow continues a control flow block in the body.
func (b *MethodBuilder) NextControlFlow(controlFlow string, args ...interface{}) *MethodBuilder {
	b.code.NextControlFlow(controlFlow, args...)
	return b
}

// EndControlFlow closes a control flow block in the body.
func (b *MethodBuilder) EndControlFlow() *MethodBuilder {
	b.code.EndControlFlow()
	return b
}

// Build returns the method.
func (b *MethodBuilder) Build() (MethodSpec, error) {
	if b.err != nil {
		return MethodSpec{}, b.err
	}
	javadoc, err := b.javadoc.Build()
	if err != nil {
		return MethodSpec{}, err
	}
	code, err := b.code.Build()
	if err != nil {
		return MethodSpec{}, err
	}

	spec := b.spec
	if spec.modifiers.has(Abstract) && !code.IsEmpty() {
		return MethodSpec{}, errors.NewWriterMisuseError("abstract method %s cannot have code", spec.name)
	}
	if spec.varargs {
		if len(spec.parameters) == 0 {
			return MethodSpec{}, errors.NewArgumentTypeError("varargs method %s has no parameters", spec.name)
		}
		if _, ok := spec.parameters[len(spec.parameters)-1].typ.(typename.ArrayTypeName); !ok {
			return MethodSpec{}, errors.NewArgumentTypeError("last parameter of varargs method %s must be an array", spec.name)
		}
	}
	seen := make(map[string]bool, len(spec.parameters))
	for _, p := range spec.parameters {
		if seen[p.name] {
			return MethodSpec{}, errors.NewInvalidNameError("method %s: duplicate parameter %s", spec.name, p.name)
		}
		seen[p.name] = true
	}

	spec.javadoc = javadoc
	spec.code = code
	spec.annotations = append([]AnnotationSpec(nil), spec.annotations...)
	spec.typeVariables = append([]typename.TypeVariableName(nil), spec.typeVariables...)
	spec.parameters = append([]ParameterSpec(nil), spec.parameters...)
	spec.exceptions = append([]typename.TypeName(nil), spec.exceptions...)
	return spec, nil
}
