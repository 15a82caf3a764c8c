package codeblock

import (
	"fmt"
	"strings"
	"unicode"
)

// Quote returns value as a Java string literal. A value spanning several
// lines is split after each newline into concatenated literals, continued
// with two indent units.
func Quote(value, indent string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	runes := []rune(value)
	for i, r := range runes {
		switch r {
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteString(escapeRune(r))
		}
		if r == '\n' && i+1 < len(runes) {
			b.WriteString("\"\n")
			b.WriteString(indent)
			b.WriteString(indent)
			b.WriteString("+ \"")
		}
	}
	b.WriteByte('"')
	return b.String()
}

// CharLiteral returns r as a Java char literal.
func CharLiteral(r rune) string {
	if r == '"' {
		return `'"'`
	}
	return "'" + escapeRune(r) + "'"
}

func escapeRune(r rune) string {
	switch r {
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	}
	if unicode.IsControl(r) {
		return fmt.Sprintf(`\u%04x`, r)
	}
	return string(r)
}
