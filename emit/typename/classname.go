package typename

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/teranos/jpoet/errors"
)

// ClassName is a fully-qualified class or interface name.
type ClassName struct {
	pkg   string
	names []string // simple names, outermost first
}

// Class returns the class pkg.simple, or pkg.simple.nested[0]... for a nested class.
// Names are not validated; see Validate.
func Class(pkg, simple string, nested ...string) ClassName {
	names := make([]string, 0, 1+len(nested))
	names = append(names, simple)
	names = append(names, nested...)
	return ClassName{pkg: pkg, names: names}
}

// Well-known classes.
var (
	Object       = Class("java.lang", "Object")
	String       = Class("java.lang", "String")
	Override     = Class("java.lang", "Override")
	Deprecated   = Class("java.lang", "Deprecated")
	Suppress     = Class("java.lang", "SuppressWarnings")
	Functional   = Class("java.lang", "FunctionalInterface")
	List         = Class("java.util", "List")
	Map          = Class("java.util", "Map")
	Objects      = Class("java.util", "Objects")
	Generated    = Class("javax.annotation.processing", "Generated")
	boxedBoolean = Class("java.lang", "Boolean")
	boxedByte    = Class("java.lang", "Byte")
	boxedShort   = Class("java.lang", "Short")
	boxedInt     = Class("java.lang", "Integer")
	boxedLong    = Class("java.lang", "Long")
	boxedChar    = Class("java.lang", "Character")
	boxedFloat   = Class("java.lang", "Float")
	boxedDouble  = Class("java.lang", "Double")
	boxedVoid    = Class("java.lang", "Void")
)

// ParseClassName guesses a ClassName from its canonical string. Leading
// lowercase segments form the package; the first capitalized segment is the
// top-level class and any further segments are nested classes.
//
//	ParseClassName("java.util.Map.Entry") // package java.util, names Map, Entry
func ParseClassName(s string) (ClassName, error) {
	p := 0
	for p < len(s) {
		r, _ := utf8.DecodeRuneInString(s[p:])
		if !unicode.IsLower(r) {
			break
		}
		dot := strings.IndexByte(s[p:], '.')
		if dot == -1 {
			return ClassName{}, errors.WithHint(
				errors.NewInvalidNameError("couldn't make a guess for %q", s),
				"class names start with an uppercase letter",
			)
		}
		p += dot + 1
	}

	pkg := ""
	if p > 0 {
		pkg = s[:p-1]
	}
	if p >= len(s) {
		return ClassName{}, errors.NewInvalidNameError("couldn't make a guess for %q", s)
	}

	names := strings.Split(s[p:], ".")
	for _, name := range names {
		r, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsUpper(r) {
			return ClassName{}, errors.NewInvalidNameError("couldn't make a guess for %q", s)
		}
	}

	c := ClassName{pkg: pkg, names: names}
	if err := c.Validate(); err != nil {
		return ClassName{}, err
	}
	return c, nil
}

// MustParseClassName is like ParseClassName but panics on error.
func MustParseClassName(s string) ClassName {
	c, err := ParseClassName(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the package and every simple name.
func (c ClassName) Validate() error {
	if len(c.names) == 0 {
		return errors.NewInvalidNameError("empty class name")
	}
	if c.pkg != "" {
		for _, part := range strings.Split(c.pkg, ".") {
			if !IsName(part) {
				return errors.NewInvalidNameError("invalid package name %q", c.pkg)
			}
		}
	}
	for _, name := range c.names {
		if !IsName(name) {
			return errors.NewInvalidNameError("invalid class name %q in %s", name, c.CanonicalName())
		}
	}
	return nil
}

// IsZero reports whether c is the zero ClassName.
func (c ClassName) IsZero() bool {
	return len(c.names) == 0
}

// PackageName returns the package, "" for the default package.
func (c ClassName) PackageName() string {
	return c.pkg
}

// SimpleName returns the innermost simple name.
func (c ClassName) SimpleName() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[len(c.names)-1]
}

// SimpleNames returns the simple names, outermost first.
func (c ClassName) SimpleNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// EnclosingClass returns the class c is nested in.
func (c ClassName) EnclosingClass() (ClassName, bool) {
	if len(c.names) < 2 {
		return ClassName{}, false
	}
	return ClassName{pkg: c.pkg, names: c.names[:len(c.names)-1:len(c.names)-1]}, true
}

// TopLevel returns the outermost class of c.
func (c ClassName) TopLevel() ClassName {
	if len(c.names) == 0 {
		return c
	}
	return ClassName{pkg: c.pkg, names: c.names[:1:1]}
}

// Nested returns the class name nested in c.
func (c ClassName) Nested(name string) ClassName {
	names := make([]string, len(c.names)+1)
	copy(names, c.names)
	names[len(c.names)] = name
	return ClassName{pkg: c.pkg, names: names}
}

// Peer returns the class named name that shares c's enclosing scope.
func (c ClassName) Peer(name string) ClassName {
	if enclosing, ok := c.EnclosingClass(); ok {
		return enclosing.Nested(name)
	}
	return Class(c.pkg, name)
}

// CanonicalName returns the dotted name, e.g. java.util.Map.Entry.
func (c ClassName) CanonicalName() string {
	joined := strings.Join(c.names, ".")
	if c.pkg == "" {
		return joined
	}
	return c.pkg + "." + joined
}

// ReflectionName returns the binary name, e.g. java.util.Map$Entry.
func (c ClassName) ReflectionName() string {
	joined := strings.Join(c.names, "$")
	if c.pkg == "" {
		return joined
	}
	return c.pkg + "." + joined
}

// Equal reports whether c and o name the same class.
func (c ClassName) Equal(o ClassName) bool {
	return c.CanonicalName() == o.CanonicalName()
}

// Unbox returns the primitive c boxes, if any.
func (c ClassName) Unbox() (Primitive, bool) {
	for _, p := range primitives {
		if p.boxed.Equal(c) {
			return p, true
		}
	}
	return Primitive{}, false
}

func (c ClassName) Render(q Qualifier) string { return q.LookupName(c) }
func (c ClassName) String() string { return c.CanonicalName() }
func (c ClassName) IsPrimitive() bool { return false }
func (ClassName) isTypeName() {}
