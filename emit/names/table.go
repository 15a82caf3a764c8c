package names

import (
	"sort"

	"github.com/teranos/jpoet/emit/typename"
)

// Table maps simple names to the single class allowed to use them unqualified.
// A Table is immutable once built by Resolver.Freeze.
type Table struct {
	byName map[string]typename.ClassName
}

// Lookup returns the class that owns simpleName.
func (t *Table) Lookup(simpleName string) (typename.ClassName, bool) {
	if t == nil {
		return typename.ClassName{}, false
	}
	c, ok := t.byName[simpleName]
	return c, ok
}

// Len returns the number of simple names in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}

// Classes returns the owning classes sorted by canonical name.
func (t *Table) Classes() []typename.ClassName {
	if t == nil {
		return nil
	}
	out := make([]typename.ClassName, 0, len(t.byName))
	for _, c := range t.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CanonicalName() < out[j].CanonicalName()
	})
	return out
}

// Imports returns the sorted canonical names to write as import lines. With
// skipJavaLang, classes in java.lang are left out. Always-qualified names
// never reach the table.
func (t *Table) Imports(skipJavaLang bool) []string {
	var out []string
	for _, c := range t.Classes() {
		if skipJavaLang && c.PackageName() == "java.lang" {
			continue
		}
		out = append(out, c.CanonicalName())
	}
	return out
}
