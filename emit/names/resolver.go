// Package names decides how class references are written in a Java file.
//
// A file is rendered twice. In the first pass a Resolver records every class
// that could be imported; Freeze turns those observations into a Table in which
// each simple name belongs to at most one class. The second pass resolves
// against that Table: classes that own their simple name are written short,
// every other class is written fully qualified.
package names

import (
	"strings"

	"github.com/teranos/jpoet/emit/typename"
	"github.com/teranos/jpoet/errors"
)

// Options configures a Resolver.
type Options struct {
	// AlwaysQualify lists simple names that are never imported.
	AlwaysQualify []string

	// StaticImports lists "pkg.Class.member" or "pkg.Class.*" entries.
	StaticImports []string

	// Imports is the table frozen by a previous pass. Nil during pass one.
	Imports *Table
}

type typeFrame struct {
	name   string
	nested map[string]bool
}

// Resolver tracks the scope of the declaration being written and implements
// typename.Qualifier. It is not safe for concurrent use.
type Resolver struct {
	pkg    string
	hasPkg bool

	types    []typeFrame
	typeVars []map[string]bool
	javadoc  bool

	alwaysQualify map[string]bool
	staticImports map[string]bool
	staticClasses map[string]bool
	imported      map[string]typename.ClassName

	importable []typename.ClassName // first observer of each simple name, in order
	claimed    map[string]bool
	referenced map[string]bool
	declared   map[string]bool // top-level types declared in this file
}

// New returns a Resolver for one render pass.
func New(opts Options) *Resolver {
	r := &Resolver{
		alwaysQualify: make(map[string]bool),
		staticImports: make(map[string]bool),
		staticClasses: make(map[string]bool),
		imported:      make(map[string]typename.ClassName),
		claimed:       make(map[string]bool),
		referenced:    make(map[string]bool),
		declared:      make(map[string]bool),
	}
	for _, name := range opts.AlwaysQualify {
		r.alwaysQualify[name] = true
	}
	for _, sig := range opts.StaticImports {
		r.staticImports[sig] = true
		if dot := strings.LastIndexByte(sig, '.'); dot > 0 {
			r.staticClasses[sig[:dot]] = true
		}
	}
	if opts.Imports != nil {
		for simple, c := range opts.Imports.byName {
			r.imported[simple] = c
		}
	}
	return r
}

// PushPackage sets the package of the file being written.
func (r *Resolver) PushPackage(pkg string) error {
	if r.hasPkg {
		return errors.NewWriterMisuseError("package already set to %q", r.pkg)
	}
	r.pkg = pkg
	r.hasPkg = true
	return nil
}

// PopPackage clears the package.
func (r *Resolver) PopPackage() error {
	if !r.hasPkg {
		return errors.NewWriterMisuseError("package not set")
	}
	r.pkg = ""
	r.hasPkg = false
	return nil
}

// Package returns the current package.
func (r *Resolver) Package() string {
	return r.pkg
}

// PushType enters the body of a type declaration. nested lists the simple
// names of the types declared directly inside it.
func (r *Resolver) PushType(simpleName string, nested []string) {
	frame := typeFrame{name: simpleName, nested: make(map[string]bool, len(nested))}
	for _, n := range nested {
		frame.nested[n] = true
	}
	if len(r.types) == 0 {
		r.declared[simpleName] = true
	}
	r.types = append(r.types, frame)
}

// PopType leaves the innermost type declaration.
func (r *Resolver) PopType() error {
	if len(r.types) == 0 {
		return errors.NewWriterMisuseError("type stack is empty")
	}
	r.types = r.types[:len(r.types)-1]
	return nil
}

// CurrentType returns the class of the innermost type being written.
func (r *Resolver) CurrentType() (typename.ClassName, bool) {
	if len(r.types) == 0 {
		return typename.ClassName{}, false
	}
	return r.stackClass(len(r.types)-1, ""), true
}

// PushTypeVariables brings type variables into scope. Their names mask
// classes with the same simple name.
func (r *Resolver) PushTypeVariables(names []string) {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	r.typeVars = append(r.typeVars, set)
}

// PopTypeVariables removes the innermost set of type variables.
func (r *Resolver) PopTypeVariables() error {
	if len(r.typeVars) == 0 {
		return errors.NewWriterMisuseError("type variable stack is empty")
	}
	r.typeVars = r.typeVars[:len(r.typeVars)-1]
	return nil
}

// SetJavadoc toggles javadoc mode. References inside javadoc never cause imports.
func (r *Resolver) SetJavadoc(on bool) {
	r.javadoc = on
}

func (r *Resolver) isTypeVariable(name string) bool {
	for _, set := range r.typeVars {
		if set[name] {
			return true
		}
	}
	return false
}

// LookupName returns the shortest text that refers to c from the current
// scope, recording c as importable when it has to be written qualified.
func (r *Resolver) LookupName(c typename.ClassName) string {
	topSimple := c.TopLevel().SimpleName()
	if r.isTypeVariable(topSimple) {
		return c.CanonicalName()
	}

	// Shortest suffix of c that resolves to c: nested names of enclosing
	// declarations, then the top-level declaration, then imports.
	simpleNames := c.SimpleNames()
	nameResolved := false
	for i := len(simpleNames) - 1; i >= 0; i-- {
		candidate := typename.Class(c.PackageName(), simpleNames[0], simpleNames[1:i+1]...)
		resolved, ok := r.resolve(simpleNames[i])
		nameResolved = ok
		if ok && resolved.Equal(candidate) {
			return strings.Join(simpleNames[i:], ".")
		}
	}

	// The simple name means something else here.
	if nameResolved {
		return c.CanonicalName()
	}

	if r.hasPkg && c.PackageName() == r.pkg {
		r.referenced[topSimple] = true
		return strings.Join(simpleNames, ".")
	}

	if !r.javadoc {
		r.Observe(c)
	}
	return c.CanonicalName()
}

// resolve returns the class simpleName refers to in the current scope.
func (r *Resolver) resolve(simpleName string) (typename.ClassName, bool) {
	for i := len(r.types) - 1; i >= 0; i-- {
		if r.types[i].nested[simpleName] {
			return r.stackClass(i, simpleName), true
		}
	}
	if len(r.types) > 0 && r.types[0].name == simpleName {
		return typename.Class(r.pkg, simpleName), true
	}
	if c, ok := r.imported[simpleName]; ok {
		return c, true
	}
	return typename.ClassName{}, false
}

// stackClass returns the class of frame depth, or of simpleName nested in it.
func (r *Resolver) stackClass(depth int, simpleName string) typename.ClassName {
	c := typename.Class(r.pkg, r.types[0].name)
	for i := 1; i <= depth; i++ {
		c = c.Nested(r.types[i].name)
	}
	if simpleName != "" {
		c = c.Nested(simpleName)
	}
	return c
}

// Observe records the top-level class of c as an import candidate. The first
// class observed with a given simple name keeps it.
func (r *Resolver) Observe(c typename.ClassName) {
	top := c.TopLevel()
	simple := top.SimpleName()
	if c.PackageName() == "" || r.alwaysQualify[c.SimpleName()] || r.alwaysQualify[simple] {
		return
	}
	if r.claimed[simple] {
		return
	}
	r.claimed[simple] = true
	r.importable = append(r.importable, top)
}

// Freeze returns the import table built from this pass's observations.
// Simple names referenced from the same package, or naming a top-level type
// declared in the file, are left out since importing them would shadow.
func (r *Resolver) Freeze() *Table {
	t := &Table{byName: make(map[string]typename.ClassName)}
	for _, c := range r.importable {
		simple := c.SimpleName()
		if r.referenced[simple] || r.declared[simple] {
			continue
		}
		t.byName[simple] = c
	}
	return t
}

// IsStaticImportClass reports whether some member of c is statically imported.
func (r *Resolver) IsStaticImportClass(c typename.ClassName) bool {
	return r.staticClasses[c.CanonicalName()]
}

// StaticMember reports whether part, the text following a reference to c,
// starts with ".member" for a statically imported member of c. It returns
// part without the leading dot.
func (r *Resolver) StaticMember(c typename.ClassName, part string) (string, bool) {
	if !strings.HasPrefix(part, ".") {
		return "", false
	}
	rest := part[1:]
	member := memberName(rest)
	if member == "" {
		return "", false
	}
	canonical := c.CanonicalName()
	if r.staticImports[canonical+"."+member] || r.staticImports[canonical+".*"] {
		return rest, true
	}
	return "", false
}

// memberName returns the leading identifier of s.
func memberName(s string) string {
	for i, ch := range s {
		if ch == '_' || ch == '$' || isLetter(ch) || (i > 0 && isDigit(ch)) {
			continue
		}
		return s[:i]
	}
	return s
}

func isLetter(ch rune) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= 0x80
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
