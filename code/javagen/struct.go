package javagen

import (
	"go/types"

	"github.com/teranos/jpoet/emit/decl"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/errors"
	"github.com/teranos/jpoet/logger"
)

type javaField struct {
	name      string
	typ       typename.TypeName
	doc       string
	transient bool
}

// classType converts an exported struct.
func (c *conversion) classType(obj *types.TypeName, st *types.Struct) (decl.TypeSpec, error) {
	b := decl.NewClass(obj.Name()).AddModifiers(decl.Public)
	if c.g.opts.Getters {
		b.AddModifiers(decl.Final)
	}
	if doc := c.doc(obj, obj.Name()); doc != "" {
		b.AddJavadoc("$L", doc)
	}

	var typeVars []string
	if named, ok := obj.Type().(*types.Named); ok && named.TypeParams() != nil {
		for i := 0; i < named.TypeParams().Len(); i++ {
			t, err := c.conv.FromGoType(named.TypeParams().At(i))
			if err != nil {
				return decl.TypeSpec{}, err
			}
			tv := t.(typename.TypeVariableName)
			typeVars = append(typeVars, tv.Name())
			b.AddTypeVariable(tv)
		}
	}

	fields, err := c.fields(obj, st, typeVars)
	if err != nil {
		return decl.TypeSpec{}, err
	}

	ctor := decl.NewConstructor().AddModifiers(decl.Public)
	for _, f := range fields {
		fb := decl.NewField(f.typ, f.name)
		switch {
		case c.g.opts.Getters:
			fb.AddModifiers(decl.Private, decl.Final)
		default:
			fb.AddModifiers(decl.Public)
		}
		if f.transient {
			fb.AddModifiers(decl.Transient)
		}
		if f.doc != "" {
			fb.AddJavadoc("$L", f.doc)
		}
		field, err := fb.Build()
		if err != nil {
			return decl.TypeSpec{}, err
		}
		b.AddField(field)

		if c.g.opts.Getters {
			ctor.AddParam(f.typ, f.name).AddStatement("this.$N = $N", f.name, f.name)
		}
	}

	if !c.g.opts.Getters {
		return b.Build()
	}

	constructor, err := ctor.Build()
	if err != nil {
		return decl.TypeSpec{}, err
	}
	b.AddMethod(constructor)
	for _, f := range fields {
		getter, err := decl.NewMethod(accessor(f.name, f.typ)).
			AddModifiers(decl.Public).
			Returns(f.typ).
			AddStatement("return $N", f.name).
			Build()
		if err != nil {
			return decl.TypeSpec{}, err
		}
		b.AddMethod(getter)
	}
	return b.Build()
}

// fields converts the exported, untagged-away fields of st.
func (c *conversion) fields(obj *types.TypeName, st *types.Struct, typeVars []string) ([]javaField, error) {
	var out []javaField
	names := make(map[string]string)
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if !v.Exported() {
			continue
		}
		if v.Embedded() {
			c.g.logger.Debugw("skipping embedded field", logger.FieldType, qualified(obj), "field", v.Name())
			continue
		}
		tag := ParseFieldTag(st.Tag(i))
		if tag.Skip {
			continue
		}

		name := v.Name()
		if tag.Name != "" {
			name = tag.Name
		}
		name = memberName(name)
		if err := typename.CheckName("field", name); err != nil {
			return nil, errors.WithHintf(err, "set a java tag on %s.%s", obj.Name(), v.Name())
		}
		if prev, dup := names[name]; dup {
			return nil, errors.NewInvalidNameError("fields %s and %s of %s both map to %s", prev, v.Name(), obj.Name(), name)
		}
		names[name] = v.Name()

		var (
			t   typename.TypeName
			err error
		)
		if tag.JavaType != "" {
			t, err = typename.Parse(tag.JavaType, typeVars...)
		} else {
			t, err = c.conv.FromGoType(v.Type())
		}
		if err != nil {
			return nil, errors.Wrapf(err, "field %s.%s", obj.Name(), v.Name())
		}
		if tag.Boxed {
			t = typename.Box(t)
		}

		out = append(out, javaField{
			name:      name,
			typ:       t,
			doc:       c.doc(obj, obj.Name()+"."+v.Name()),
			transient: tag.Transient,
		})
	}
	return out, nil
}
