package typename

import (
	"strings"
	"unicode"

	"github.com/teranos/jpoet/errors"
)

// javaLang lists java.lang classes that may be written by simple name in Parse.
var javaLang = map[string]bool{
	"Object": true, "String": true, "CharSequence": true, "StringBuilder": true,
	"Boolean": true, "Byte": true, "Short": true, "Integer": true, "Long": true,
	"Character": true, "Float": true, "Double": true, "Void": true, "Number": true,
	"Math": true, "System": true, "Thread": true, "Runnable": true, "Iterable": true,
	"Comparable": true, "Class": true, "Enum": true, "Record": true, "AutoCloseable": true,
	"Throwable": true, "Exception": true, "RuntimeException": true, "Error": true,
	"IllegalArgumentException": true, "IllegalStateException": true,
	"NullPointerException": true, "UnsupportedOperationException": true,
	"Override": true, "Deprecated": true, "SuppressWarnings": true,
	"FunctionalInterface": true, "SafeVarargs": true,
}

// Parse reads a Java type expression such as "java.util.Map<String, ? extends T>[]".
// Names listed in typeVars parse as type variables; bare java.lang class names
// (String, Integer, Override, ...) resolve to java.lang.
func Parse(expr string, typeVars ...string) (TypeName, error) {
	p := &exprParser{src: expr, vars: map[string]bool{}}
	for _, v := range typeVars {
		p.vars[v] = true
	}
	p.tokenize()
	if p.err != nil {
		return nil, p.err
	}

	t, err := p.parseType(true)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, p.errorf("unexpected %q", p.toks[p.pos])
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(expr string, typeVars ...string) TypeName {
	t, err := Parse(expr, typeVars...)
	if err != nil {
		panic(err)
	}
	return t
}

type exprParser struct {
	src  string
	toks []string
	pos  int
	vars map[string]bool
	err  error
}

func (p *exprParser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.NewInvalidNameError(format, args...), "parsing type %q", p.src)
}

func (p *exprParser) tokenize() {
	s := p.src
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case strings.IndexByte("<>,[]?.&", c) != -1:
			p.toks = append(p.toks, string(c))
			i++
		default:
			j := i
			for j < len(s) {
				r := rune(s[j])
				if r < 0x80 && !(r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
					break
				}
				j++
			}
			if j == i {
				p.err = p.errorf("unexpected character %q at %d", c, i)
				return
			}
			p.toks = append(p.toks, s[i:j])
			i = j
		}
	}
}

func (p *exprParser) peek() string {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return ""
}

func (p *exprParser) next() string {
	t := p.peek()
	if t != "" {
		p.pos++
	}
	return t
}

func (p *exprParser) expect(tok string) error {
	if got := p.next(); got != tok {
		if got == "" {
			return p.errorf("expected %q at end", tok)
		}
		return p.errorf("expected %q, got %q", tok, got)
	}
	return nil
}

// parseType reads a type; wildcards are only legal as type arguments.
func (p *exprParser) parseType(top bool) (TypeName, error) {
	if p.peek() == "?" {
		if top {
			return nil, p.errorf("wildcard outside type arguments")
		}
		p.next()
		switch p.peek() {
		case "extends":
			p.next()
			bound, err := p.parseType(true)
			if err != nil {
				return nil, err
			}
			return SubtypeOf(bound), nil
		case "super":
			p.next()
			bound, err := p.parseType(true)
			if err != nil {
				return nil, err
			}
			return SupertypeOf(bound), nil
		}
		return Unbounded(), nil
	}

	t, err := p.parseBase()
	if err != nil {
		return nil, err
	}
	for p.peek() == "[" {
		p.next()
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		t = ArrayOf(t)
	}
	return t, nil
}

func (p *exprParser) parseBase() (TypeName, error) {
	first := p.next()
	if first == "" {
		return nil, p.errorf("missing type")
	}
	if !IsIdentifier(first) {
		return nil, p.errorf("unexpected %q", first)
	}

	if prim, ok := PrimitiveByKeyword(first); ok {
		return prim, nil
	}
	if p.vars[first] && p.peek() != "." {
		return TypeVariable(first), nil
	}

	parts := []string{first}
	for p.peek() == "." {
		p.next()
		part := p.next()
		if !IsIdentifier(part) {
			return nil, p.errorf("expected name after '.'")
		}
		parts = append(parts, part)
	}

	raw, err := p.className(parts)
	if err != nil {
		return nil, err
	}
	if p.peek() != "<" {
		return raw, nil
	}

	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	result := Parameterized(raw, args...)

	// Outer<T>.Inner<U>
	for p.peek() == "." {
		p.next()
		name := p.next()
		if !IsIdentifier(name) {
			return nil, p.errorf("expected name after '.'")
		}
		var inner []TypeName
		if p.peek() == "<" {
			if inner, err = p.parseArgs(); err != nil {
				return nil, err
			}
		}
		result = result.NestedClass(name, inner...)
	}
	return result, nil
}

func (p *exprParser) parseArgs() ([]TypeName, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	var args []TypeName
	for {
		arg, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		if arg.IsPrimitive() {
			return nil, p.errorf("primitive %s cannot be a type argument", arg)
		}
		args = append(args, arg)
		if p.peek() == "," {
			p.next()
			continue
		}
		if err := p.expect(">"); err != nil {
			return nil, err
		}
		return args, nil
	}
}

func (p *exprParser) className(parts []string) (ClassName, error) {
	if len(parts) == 1 && javaLang[parts[0]] {
		return Class("java.lang", parts[0]), nil
	}
	c, err := ParseClassName(strings.Join(parts, "."))
	if err != nil {
		return ClassName{}, errors.Wrapf(err, "parsing type %q", p.src)
	}
	return c, nil
}
