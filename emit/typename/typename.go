// Package typename holds immutable references to Java types: classes,
// primitives, parameterized types, arrays, wildcards and type variables.
//
// A TypeName renders itself through a Qualifier, which decides for every
// class reference whether the simple name, a shorter suffix, or the canonical
// name is written. The names package provides the import-aware Qualifier used
// by the document writer; Canonical renders every class fully qualified.
package typename

import "strings"

// TypeName is a reference to a Java type.
type TypeName interface {
	// Render returns the Java source text of the type, resolving class
	// references through q.
	Render(q Qualifier) string

	// String returns the type with every class fully qualified.
	String() string

	// IsPrimitive reports whether the type is a primitive or void.
	IsPrimitive() bool

	isTypeName()
}

// Qualifier decides how a class reference is written.
type Qualifier interface {
	LookupName(c ClassName) string
}

type canonicalQualifier struct{}

func (canonicalQualifier) LookupName(c ClassName) string { return c.CanonicalName() }

// Canonical renders every class by its canonical name.
var Canonical Qualifier = canonicalQualifier{}

// Equal reports whether a and b denote the same type.
func Equal(a, b TypeName) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}

// Box returns the boxed class of a primitive, or t unchanged.
func Box(t TypeName) TypeName {
	if p, ok := t.(Primitive); ok && p.keyword != Void.keyword {
		return p.Box()
	}
	return t
}

// Unbox returns the primitive of a boxed class, or t unchanged.
func Unbox(t TypeName) TypeName {
	if c, ok := t.(ClassName); ok {
		if p, ok := c.Unbox(); ok {
			return p
		}
	}
	return t
}

func renderList(q Qualifier, types []TypeName, sep string) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.Render(q)
	}
	return strings.Join(parts, sep)
}
