package javagen

import (
	"go/constant"
	"go/types"
	"sort"

	"github.com/teranos/jpoet/emit/decl"
	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/errors"
)

var illegalArgument = typename.Class("java.lang", "IllegalArgumentException")

// enumType converts a string type and its typed constants into an enum
// carrying the string values.
func (c *conversion) enumType(obj *types.TypeName) (decl.TypeSpec, error) {
	consts := append([]*types.Const(nil), c.enums[obj]...)
	sort.Slice(consts, func(i, j int) bool { return consts[i].Pos() < consts[j].Pos() })

	self := c.javaName(obj)
	b := decl.NewEnum(obj.Name()).AddModifiers(decl.Public)
	if doc := c.doc(obj, obj.Name()); doc != "" {
		b.AddJavadoc("$L", doc)
	}

	seen := make(map[string]string)
	for _, cnst := range consts {
		if cnst.Val().Kind() != constant.String {
			continue
		}
		value := constant.StringVal(cnst.Val())
		name := constantName(value)
		if prev, dup := seen[name]; dup {
			if prev == value {
				continue
			}
			return decl.TypeSpec{}, errors.NewInvalidNameError("values %q and %q of %s both map to %s", prev, value, obj.Name(), name)
		}
		seen[name] = value

		body := decl.NewAnonymousClass("$S", value)
		if doc := c.doc(cnst, cnst.Name()); doc != "" {
			body.AddJavadoc("$L", doc)
		}
		spec, err := body.Build()
		if err != nil {
			return decl.TypeSpec{}, err
		}
		b.AddEnumConstantWith(name, spec)
	}

	field, err := decl.NewField(typename.String, "value", decl.Private, decl.Final).Build()
	if err != nil {
		return decl.TypeSpec{}, err
	}
	ctor, err := decl.NewConstructor().
		AddParam(typename.String, "value").
		AddStatement("this.value = value").
		Build()
	if err != nil {
		return decl.TypeSpec{}, err
	}
	getter, err := decl.NewMethod("getValue").
		AddModifiers(decl.Public).
		Returns(typename.String).
		AddStatement("return value").
		Build()
	if err != nil {
		return decl.TypeSpec{}, err
	}
	fromValue, err := decl.NewMethod("fromValue").
		AddModifiers(decl.Public, decl.Static).
		Returns(self).
		AddParam(typename.String, "value").
		BeginControlFlow("for ($T constant : values())", self).
		BeginControlFlow("if (constant.value.equals(value))").
		AddStatement("return constant").
		EndControlFlow().
		EndControlFlow().
		AddStatement("throw new $T($S + value)", illegalArgument, "unknown "+obj.Name()+": ").
		Build()
	if err != nil {
		return decl.TypeSpec{}, err
	}

	return b.AddField(field).
		AddMethod(ctor).
		AddMethod(getter).
		AddMethod(fromValue).
		Build()
}
