package typename

import "strings"

// ParameterizedTypeName is a generic class applied to type arguments,
// e.g. java.util.List<java.lang.String>.
type ParameterizedTypeName struct {
	enclosing *ParameterizedTypeName
	raw       ClassName
	args      []TypeName
}

// Parameterized applies args to raw.
func Parameterized(raw ClassName, args ...TypeName) ParameterizedTypeName {
	return ParameterizedTypeName{raw: raw, args: append([]TypeName(nil), args...)}
}

// NestedClass returns the inner class name of p applied to args,
// e.g. Outer<T>.Inner<U>.
func (p ParameterizedTypeName) NestedClass(name string, args ...TypeName) ParameterizedTypeName {
	enclosing := p
	return ParameterizedTypeName{
		enclosing: &enclosing,
		raw:       p.raw.Nested(name),
		args:      append([]TypeName(nil), args...),
	}
}

// Raw returns the generic class.
func (p ParameterizedTypeName) Raw() ClassName { return p.raw }

// Args returns the type arguments.
func (p ParameterizedTypeName) Args() []TypeName { return append([]TypeName(nil), p.args...) }

func (p ParameterizedTypeName) Render(q Qualifier) string {
	var sb strings.Builder
	if p.enclosing != nil {
		sb.WriteString(p.enclosing.Render(q))
		sb.WriteByte('.')
		sb.WriteString(p.raw.SimpleName())
	} else {
		sb.WriteString(q.LookupName(p.raw))
	}
	if len(p.args) > 0 {
		sb.WriteByte('<')
		sb.WriteString(renderList(q, p.args, ", "))
		sb.WriteByte('>')
	}
	return sb.String()
}

func (p ParameterizedTypeName) String() string { return p.Render(Canonical) }
func (ParameterizedTypeName) IsPrimitive() bool { return false }
func (ParameterizedTypeName) isTypeName() {}

// ArrayTypeName is an array of a component type.
type ArrayTypeName struct {
	component TypeName
}

// ArrayOf returns component[].
func ArrayOf(component TypeName) ArrayTypeName {
	return ArrayTypeName{component: component}
}

// Component returns the element type.
func (a ArrayTypeName) Component() TypeName { return a.component }

func (a ArrayTypeName) Render(q Qualifier) string { return a.component.Render(q) + "[]" }
func (a ArrayTypeName) String() string { return a.Render(Canonical) }
func (ArrayTypeName) IsPrimitive() bool { return false }
func (ArrayTypeName) isTypeName() {}

// TypeVariableName is a type parameter such as T or T extends Comparable<T>.
type TypeVariableName struct {
	name   string
	bounds []TypeName
}

// TypeVariable returns a type variable. java.lang.Object bounds are dropped.
func TypeVariable(name string, bounds ...TypeName) TypeVariableName {
	var kept []TypeName
	for _, b := range bounds {
		if !Equal(b, Object) {
			kept = append(kept, b)
		}
	}
	return TypeVariableName{name: name, bounds: kept}
}

// Name returns the variable's name.
func (v TypeVariableName) Name() string { return v.name }

// Bounds returns the upper bounds.
func (v TypeVariableName) Bounds() []TypeName { return append([]TypeName(nil), v.bounds...) }

// Declaration renders the variable with its bounds, as written in a
// type-parameter list: T extends Number & Comparable<T>.
func (v TypeVariableName) Declaration(q Qualifier) string {
	if len(v.bounds) == 0 {
		return v.name
	}
	return v.name + " extends " + renderList(q, v.bounds, " & ")
}

func (v TypeVariableName) Render(Qualifier) string { return v.name }
func (v TypeVariableName) String() string { return v.name }
func (TypeVariableName) IsPrimitive() bool { return false }
func (TypeVariableName) isTypeName() {}

// WildcardTypeName is ?, ? extends T or ? super T.
type WildcardTypeName struct {
	upper TypeName
	lower TypeName
}

// SubtypeOf returns ? extends upper, or ? when upper is java.lang.Object.
func SubtypeOf(upper TypeName) WildcardTypeName {
	if Equal(upper, Object) {
		return WildcardTypeName{}
	}
	return WildcardTypeName{upper: upper}
}

// SupertypeOf returns ? super lower.
func SupertypeOf(lower TypeName) WildcardTypeName {
	return WildcardTypeName{lower: lower}
}

// Unbounded returns ?.
func Unbounded() WildcardTypeName {
	return WildcardTypeName{}
}

func (w WildcardTypeName) Render(q Qualifier) string {
	switch {
	case w.lower != nil:
		return "? super " + w.lower.Render(q)
	case w.upper != nil:
		return "? extends " + w.upper.Render(q)
	default:
		return "?"
	}
}

func (w WildcardTypeName) String() string { return w.Render(Canonical) }
func (WildcardTypeName) IsPrimitive() bool { return false }
func (WildcardTypeName) isTypeName() {}
