package typename

import (
	"unicode"

	"github.com/teranos/jpoet/errors"
)

var keywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "_": true,
}

// IsKeyword reports whether s is a reserved word or literal.
func IsKeyword(s string) bool {
	return keywords[s]
}

// IsIdentifier reports whether s is lexically a Java identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)) {
			continue
		}
		return false
	}
	return true
}

// IsName reports whether s can name a declaration: an identifier that is not a keyword.
func IsName(s string) bool {
	return IsIdentifier(s) && !IsKeyword(s)
}

// CheckName returns ErrInvalidName when s cannot name a declaration of the given kind.
func CheckName(kind, s string) error {
	if IsName(s) {
		return nil
	}
	err := errors.NewInvalidNameError("not a valid %s name: %q", kind, s)
	if IsKeyword(s) {
		err = errors.WithHintf(err, "%q is a reserved word", s)
	}
	return err
}
