package decl

import (
	"fmt"

	"github.com/teranos/jpoet/errors"
)

// Modifier is a Java declaration modifier. Modifiers are emitted in the
// order of their constants.
type Modifier int

const (
	Public Modifier = iota
	Protected
	Private
	Abstract
	Default
	Static
	Final
	Transient
	Volatile
	Synchronized
	Native
	Strictfp
)

var modifierNames = [...]string{
	Public:       "public",
	Protected:    "protected",
	Private:      "private",
	Abstract:     "abstract",
	Default:      "default",
	Static:       "static",
	Final:        "final",
	Transient:    "transient",
	Volatile:     "volatile",
	Synchronized: "synchronized",
	Native:       "native",
	Strictfp:     "strictfp",
}

func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return fmt.Sprintf("Modifier(%d)", int(m))
	}
	return modifierNames[m]
}

// ParseModifier returns the modifier spelled s.
func ParseModifier(s string) (Modifier, error) {
	for i, name := range modifierNames {
		if name == s {
			return Modifier(i), nil
		}
	}
	return 0, errors.WithHint(
		errors.NewInvalidNameError("unknown modifier %q", s),
		"modifiers are lower case Java keywords such as public, static or final")
}

// ParseModifiers parses each of names.
func ParseModifiers(names []string) ([]Modifier, error) {
	mods := make([]Modifier, 0, len(names))
	for _, n := range names {
		m, err := ParseModifier(n)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// modifierSet is a small ordered set of modifiers.
type modifierSet uint16

func setOf(mods ...Modifier) modifierSet {
	var s modifierSet
	for _, m := range mods {
		s |= 1 << uint(m)
	}
	return s
}

func (s modifierSet) has(m Modifier) bool { return s&(1<<uint(m)) != 0 }

func (s modifierSet) with(mods ...Modifier) modifierSet { return s | setOf(mods...) }

func (s modifierSet) union(o modifierSet) modifierSet { return s | o }

func (s modifierSet) list() []Modifier {
	var out []Modifier
	for m := Public; m <= Strictfp; m++ {
		if s.has(m) {
			out = append(out, m)
		}
	}
	return out
}

// strings returns the modifiers in s that are not implied by implicit.
func (s modifierSet) strings(implicit modifierSet) []string {
	var out []string
	for _, m := range s.list() {
		if !implicit.has(m) {
			out = append(out, m.String())
		}
	}
	return out
}
