package model

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/jpoet/config"
	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/decl"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/logger"
)

// bareName matches a capitalized simple name that is not part of a dotted name.
var bareName = regexp.MustCompile(`(^|[^.\w$])([A-Z][\w$]*)`)

// builder converts one document.
type builder struct {
	doc    *Document
	local  map[string]typename.ClassName // simple name -> declared class
	logger *zap.SugaredLogger
}

// Build converts doc into one file per top-level type, configured by emit.
// A document file_comment replaces emit.FileComment.
func Build(doc *Document, emit config.EmitConfig) ([]decl.File, error) {
	b := &builder{
		doc:    doc,
		local:  make(map[string]typename.ClassName),
		logger: logger.ComponentLogger("model"),
	}
	for _, t := range doc.Types {
		b.declare(typename.Class(doc.Package, t.Name), t)
	}
	if doc.FileComment != "" {
		emit.FileComment = doc.FileComment
	}

	files := make([]decl.File, 0, len(doc.Types))
	for _, t := range doc.Types {
		spec, err := b.typeSpec(t, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "type %s", t.Name)
		}
		fb := decl.NewFile(doc.Package, spec).Configure(emit)
		for _, si := range doc.StaticImports {
			c, err := typename.ParseClassName(si.Class)
			if err != nil {
				return nil, errors.Wrap(err, "static import")
			}
			fb.AddStaticImport(c, si.Members...)
		}
		file, err := fb.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "file for %s", t.Name)
		}
		files = append(files, file)
	}

	b.logger.Debugw("built model",
		logger.FieldModel, doc.Source,
		logger.FieldPackage, doc.Package,
		logger.FieldCount, len(files))
	return files, nil
}

// declare records c and its nested types. The first declaration of a simple
// name wins.
func (b *builder) declare(c typename.ClassName, t Type) {
	if _, ok := b.local[t.Name]; !ok && t.Name != "" {
		b.local[t.Name] = c
	}
	for _, nested := range t.Types {
		b.declare(c.Nested(nested.Name), nested)
	}
}

// typeName parses expr, resolving bare names of declared types to their
// package. Names in vars are type variables.
func (b *builder) typeName(expr string, vars []string) (typename.TypeName, error) {
	isVar := make(map[string]bool, len(vars))
	for _, v := range vars {
		isVar[v] = true
	}

	var sb strings.Builder
	last := 0
	for _, m := range bareName.FindAllStringSubmatchIndex(expr, -1) {
		name := expr[m[4]:m[5]]
		c, ok := b.local[name]
		if !ok || isVar[name] {
			continue
		}
		sb.WriteString(expr[last:m[4]])
		sb.WriteString(c.CanonicalName())
		last = m[5]
	}
	sb.WriteString(expr[last:])
	return typename.Parse(sb.String(), vars...)
}

func (b *builder) className(expr string) (typename.ClassName, error) {
	t, err := b.typeName(expr, nil)
	if err != nil {
		return typename.ClassName{}, err
	}
	c, ok := t.(typename.ClassName)
	if !ok {
		return typename.ClassName{}, errors.NewArgumentTypeError("%s is not a class name", expr)
	}
	return c, nil
}

// typeVariables parses declarations such as "K extends Comparable<K> & Serializable".
func (b *builder) typeVariables(decls []string, outer []string) ([]typename.TypeVariableName, []string, error) {
	scope := append([]string(nil), outer...)
	for _, d := range decls {
		name, _, _ := strings.Cut(strings.TrimSpace(d), " ")
		scope = append(scope, name)
	}

	out := make([]typename.TypeVariableName, 0, len(decls))
	for _, d := range decls {
		name, rest, _ := strings.Cut(strings.TrimSpace(d), " ")
		if err := typename.CheckName("type variable", name); err != nil {
			return nil, nil, err
		}
		var bounds []typename.TypeName
		if rest = strings.TrimSpace(rest); rest != "" {
			after, ok := strings.CutPrefix(rest, "extends ")
			if !ok {
				return nil, nil, errors.NewTemplateSyntaxError("type variable %q: expected extends", d)
			}
			for _, bound := range strings.Split(after, "&") {
				t, err := b.typeName(strings.TrimSpace(bound), scope)
				if err != nil {
					return nil, nil, errors.Wrapf(err, "type variable %s", name)
				}
				bounds = append(bounds, t)
			}
		}
		out = append(out, typename.TypeVariable(name, bounds...))
	}
	return out, scope, nil
}

func (b *builder) annotations(list []Annotation) ([]decl.AnnotationSpec, error) {
	out := make([]decl.AnnotationSpec, 0, len(list))
	for _, a := range list {
		c, err := b.className(a.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "annotation %s", a.Type)
		}
		ab := decl.NewAnnotation(c)
		for _, member := range sortedKeys(a.Members) {
			for _, v := range a.Members[member] {
				ab.AddMember(member, "$L", v)
			}
		}
		spec, err := ab.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "annotation %s", a.Type)
		}
		out = append(out, spec)
	}
	return out, nil
}

func (b *builder) typeSpec(t Type, outer []string) (decl.TypeSpec, error) {
	kind, err := decl.ParseKind(t.Kind)
	if err != nil {
		return decl.TypeSpec{}, err
	}
	mods, err := decl.ParseModifiers(t.Modifiers)
	if err != nil {
		return decl.TypeSpec{}, err
	}

	tb := decl.NewKind(kind, t.Name).AddModifiers(mods...)
	if t.Javadoc != "" {
		tb.AddJavadoc("$L", paragraph(t.Javadoc))
	}

	// Static nested types do not see the enclosing type variables.
	scope := outer
	if kind != decl.KindClass || contains(t.Modifiers, "static") {
		scope = nil
	}
	vars, scope, err := b.typeVariables(t.TypeVariables, scope)
	if err != nil {
		return decl.TypeSpec{}, err
	}
	for _, v := range vars {
		tb.AddTypeVariable(v)
	}

	annotations, err := b.annotations(t.Annotations)
	if err != nil {
		return decl.TypeSpec{}, err
	}
	for _, a := range annotations {
		tb.AddAnnotation(a)
	}

	if t.Superclass != "" {
		super, err := b.typeName(t.Superclass, scope)
		if err != nil {
			return decl.TypeSpec{}, errors.Wrap(err, "superclass")
		}
		tb.Superclass(super)
	}
	for _, iface := range t.Interfaces {
		it, err := b.typeName(iface, scope)
		if err != nil {
			return decl.TypeSpec{}, errors.Wrap(err, "interface")
		}
		tb.AddSuperinterface(it)
	}

	for _, c := range t.Constants {
		if err := b.constant(tb, c, scope); err != nil {
			return decl.TypeSpec{}, errors.Wrapf(err, "constant %s", c.Name)
		}
	}
	for _, f := range t.Fields {
		field, err := b.field(f, scope)
		if err != nil {
			return decl.TypeSpec{}, errors.Wrapf(err, "field %s", f.Name)
		}
		tb.AddField(field)
	}
	for _, m := range t.Methods {
		method, err := b.method(m, scope)
		if err != nil {
			return decl.TypeSpec{}, errors.Wrapf(err, "method %s", methodName(m))
		}
		tb.AddMethod(method)
	}
	for _, nested := range t.Types {
		spec, err := b.typeSpec(nested, scope)
		if err != nil {
			return decl.TypeSpec{}, errors.Wrapf(err, "type %s", nested.Name)
		}
		tb.AddType(spec)
	}
	return tb.Build()
}

func (b *builder) constant(tb *decl.TypeBuilder, c Constant, scope []string) error {
	if c.Args == "" && c.Javadoc == "" && len(c.Methods) == 0 {
		tb.AddEnumConstant(c.Name)
		return nil
	}

	body := decl.NewAnonymousClass("")
	if c.Args != "" {
		body = decl.NewAnonymousClass("$L", c.Args)
	}
	if c.Javadoc != "" {
		body.AddJavadoc("$L", paragraph(c.Javadoc))
	}
	for _, m := range c.Methods {
		method, err := b.method(m, scope)
		if err != nil {
			return errors.Wrapf(err, "method %s", methodName(m))
		}
		body.AddMethod(method)
	}
	spec, err := body.Build()
	if err != nil {
		return err
	}
	tb.AddEnumConstantWith(c.Name, spec)
	return nil
}

func (b *builder) field(f Field, scope []string) (decl.FieldSpec, error) {
	t, err := b.typeName(f.Type, scope)
	if err != nil {
		return decl.FieldSpec{}, err
	}
	mods, err := decl.ParseModifiers(f.Modifiers)
	if err != nil {
		return decl.FieldSpec{}, err
	}
	fb := decl.NewField(t, f.Name, mods...)
	if f.Javadoc != "" {
		fb.AddJavadoc("$L", paragraph(f.Javadoc))
	}
	annotations, err := b.annotations(f.Annotations)
	if err != nil {
		return decl.FieldSpec{}, err
	}
	for _, a := range annotations {
		fb.AddAnnotation(a)
	}
	if f.Initializer != "" {
		fb.Initializer("$L", f.Initializer)
	}
	return fb.Build()
}

func (b *builder) method(m Method, outer []string) (decl.MethodSpec, error) {
	var mb *decl.MethodBuilder
	if m.Constructor {
		mb = decl.NewConstructor()
	} else {
		mb = decl.NewMethod(m.Name)
	}

	mods, err := decl.ParseModifiers(m.Modifiers)
	if err != nil {
		return decl.MethodSpec{}, err
	}
	mb.AddModifiers(mods...)
	if m.Javadoc != "" {
		mb.AddJavadoc("$L", paragraph(m.Javadoc))
	}

	vars, scope, err := b.typeVariables(m.TypeVariables, outer)
	if err != nil {
		return decl.MethodSpec{}, err
	}
	for _, v := range vars {
		mb.AddTypeVariable(v)
	}

	annotations, err := b.annotations(m.Annotations)
	if err != nil {
		return decl.MethodSpec{}, err
	}
	for _, a := range annotations {
		mb.AddAnnotation(a)
	}

	if m.Returns != "" {
		rt, err := b.typeName(m.Returns, scope)
		if err != nil {
			return decl.MethodSpec{}, errors.Wrap(err, "return type")
		}
		mb.Returns(rt)
	}

	for _, p := range m.Params {
		param, err := b.param(p, scope)
		if err != nil {
			return decl.MethodSpec{}, errors.Wrapf(err, "parameter %s", p.Name)
		}
		mb.AddParameter(param)
	}
	mb.Varargs(m.Varargs)

	for _, th := range m.Throws {
		et, err := b.typeName(th, scope)
		if err != nil {
			return decl.MethodSpec{}, errors.Wrap(err, "throws")
		}
		mb.AddException(et)
	}
	if m.Default != "" {
		mb.DefaultValue("$L", m.Default)
	}

	if len(m.Body) > 0 {
		body, err := b.body(m, scope)
		if err != nil {
			return decl.MethodSpec{}, err
		}
		mb.AddBlock(body)
	}
	return mb.Build()
}

func (b *builder) param(p Param, scope []string) (decl.ParameterSpec, error) {
	t, err := b.typeName(p.Type, scope)
	if err != nil {
		return decl.ParameterSpec{}, err
	}
	pb := decl.NewParameter(t, p.Name)
	if p.Final {
		pb.AddModifiers(decl.Final)
	}
	if p.Javadoc != "" {
		pb.AddJavadoc("$L", p.Javadoc)
	}
	annotations, err := b.annotations(p.Annotations)
	if err != nil {
		return decl.ParameterSpec{}, err
	}
	for _, a := range annotations {
		pb.AddAnnotation(a)
	}
	return pb.Build()
}

// body renders the statements of m with its named arguments bound.
func (b *builder) body(m Method, scope []string) (codeblock.Block, error) {
	args := make(map[string]interface{}, len(m.Args)+len(m.Types))
	for _, k := range sortedKeys(m.Args) {
		args[k] = m.Args[k]
	}
	for _, k := range sortedKeys(m.Types) {
		if _, dup := args[k]; dup {
			return codeblock.Block{}, errors.NewTemplateSyntaxError("argument %q is bound in both args and types", k)
		}
		t, err := b.typeName(m.Types[k], scope)
		if err != nil {
			return codeblock.Block{}, errors.Wrapf(err, "type argument %s", k)
		}
		args[k] = t
	}

	cb := codeblock.NewBuilder()
	for i, s := range m.Body {
		if s.count() != 1 {
			return codeblock.Block{}, errors.WithHint(
				errors.NewTemplateSyntaxError("body step %d sets %d kinds", i+1, s.count()),
				"use exactly one of statement, begin, next, end, comment or code")
		}
		switch {
		case s.Statement != "":
			cb.Add("$[").AddNamed(s.Statement, args).Add(";\n$]")
		case s.Begin != "":
			cb.AddNamed(s.Begin+" {\n", args).Indent()
		case s.Next != "":
			cb.Unindent().AddNamed("} "+s.Next+" {\n", args).Indent()
		case s.End:
			cb.EndControlFlow()
		case s.Comment != "":
			text, err := codeblock.NewBuilder().AddNamed(s.Comment, args).Build()
			if err != nil {
				return codeblock.Block{}, errors.Wrapf(err, "body step %d", i+1)
			}
			cb.AddComment("$L", text)
		default:
			code := s.Code
			if !strings.HasSuffix(code, "\n") {
				code += "\n"
			}
			cb.AddNamed(code, args)
		}
	}
	block, err := cb.Build()
	if err != nil {
		return codeblock.Block{}, errors.Wrap(err, "body")
	}
	return block, nil
}

func methodName(m Method) string {
	if m.Constructor {
		return "constructor"
	}
	return m.Name
}

// paragraph terminates text with a single newline.
func paragraph(text string) string {
	return strings.TrimRight(text, "\n") + "\n"
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
