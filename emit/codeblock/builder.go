package codeblock

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/teranos/jpoet/errors"
)

var (
	namedArgument = regexp.MustCompile(`^\$([A-Za-z0-9_]+):([A-Za-z0-9_])`)
	lowercaseKey  = regexp.MustCompile(`^[a-z][A-Za-z0-9_]*$`)
)

// Builder accumulates format parts and arguments. The first error is kept
// and returned by Build; later calls are ignored.
type Builder struct {
	parts []string
	args  []Arg
	err   error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns the accumulated block or the first error.
func (b *Builder) Build() (Block, error) {
	if b.err != nil {
		return Block{}, b.err
	}
	return Block{
		parts: append([]string(nil), b.parts...),
		args:  append([]Arg(nil), b.args...),
	}, nil
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// IsEmpty reports whether nothing has been added.
func (b *Builder) IsEmpty() bool {
	return len(b.parts) == 0
}

// Add appends format, consuming args positionally ($L) or by index ($1L).
func (b *Builder) Add(format string, args ...interface{}) *Builder {
	if b.err != nil {
		return b
	}
	parts, converted, err := parse(format, args)
	if err != nil {
		b.err = err
		return b
	}
	b.parts = append(b.parts, parts...)
	b.args = append(b.args, converted...)
	return b
}

// AddNamed appends format, consuming arguments by name ($key:T).
func (b *Builder) AddNamed(format string, args map[string]interface{}) *Builder {
	if b.err != nil {
		return b
	}
	parts, converted, err := parseNamed(format, args)
	if err != nil {
		b.err = err
		return b
	}
	b.parts = append(b.parts, parts...)
	b.args = append(b.args, converted...)
	return b
}

// AddBlock appends the contents of another block.
func (b *Builder) AddBlock(other Block) *Builder {
	if b.err != nil {
		return b
	}
	b.parts = append(b.parts, other.parts...)
	b.args = append(b.args, other.args...)
	return b
}

// AddStatement appends format as one statement terminated by a semicolon.
func (b *Builder) AddStatement(format string, args ...interface{}) *Builder {
	b.Add("$[")
	b.Add(format, args...)
	return b.Add(";\n$]")
}

// AddComment appends a line comment. A document writer reflows it to the
// column limit.
func (b *Builder) AddComment(format string, args ...interface{}) *Builder {
	if b.err != nil {
		return b
	}
	text, err := Of(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	return b.Add("$L", lineComment{text: text})
}

// BeginControlFlow opens a block such as "if (x)" and indents its body.
func (b *Builder) BeginControlFlow(controlFlow string, args ...interface{}) *Builder {
	b.Add(controlFlow+" {\n", args...)
	return b.Indent()
}

// NextControlFlow closes the current block and opens the next, as in
// "else if (y)".
func (b *Builder) NextControlFlow(controlFlow string, args ...interface{}) *Builder {
	b.Unindent()
	b.Add("} "+controlFlow+" {\n", args...)
	return b.Indent()
}

// EndControlFlow closes the current block.
func (b *Builder) EndControlFlow() *Builder {
	b.Unindent()
	return b.Add("}\n")
}

// EndControlFlowWith closes the current block with a trailer such as
// "while (more)".
func (b *Builder) EndControlFlowWith(controlFlow string, args ...interface{}) *Builder {
	b.Unindent()
	return b.Add("} "+controlFlow+";\n", args...)
}

// Indent increases the indentation level.
func (b *Builder) Indent() *Builder {
	if b.err == nil {
		b.parts = append(b.parts, "$>")
	}
	return b
}

// Unindent decreases the indentation level.
func (b *Builder) Unindent() *Builder {
	if b.err == nil {
		b.parts = append(b.parts, "$<")
	}
	return b
}

func parse(format string, args []interface{}) ([]string, []Arg, error) {
	var (
		parts       []string
		converted   []Arg
		hasRelative bool
		hasIndexed  bool
		relative    int
		used        = make([]int, len(args))
	)

	for p := 0; p < len(format); {
		if format[p] != '$' {
			next := strings.IndexByte(format[p+1:], '$')
			if next < 0 {
				next = len(format)
			} else {
				next += p + 1
			}
			parts = append(parts, format[p:next])
			p = next
			continue
		}

		start := p
		p++
		indexStart := p
		for p < len(format) && format[p] >= '0' && format[p] <= '9' {
			p++
		}
		if p >= len(format) {
			return nil, nil, errors.NewTemplateSyntaxError("dangling format characters at position %d in %q", start, format)
		}
		c := format[p]
		indexEnd := p
		p++

		if isNoArg(c) {
			if indexStart != indexEnd {
				return nil, nil, errors.NewTemplateSyntaxError("$$, $>, $<, $[, $], $W, and $Z may not have an index (%q at position %d)", format[start:p], start)
			}
			parts = append(parts, "$"+string(c))
			continue
		}
		if !isArg(c) {
			return nil, nil, errors.NewTemplateSyntaxError("unknown placeholder %q at position %d in %q", format[start:p], start, format)
		}

		var index int
		if indexStart < indexEnd {
			digits := format[indexStart:indexEnd]
			n, err := strconv.Atoi(digits)
			if err != nil || n < 1 || n > len(args) {
				return nil, nil, errors.NewTemplateSyntaxError("index %s for %q not in range (received %d arguments)", digits, format[start:p], len(args))
			}
			index = n - 1
			hasIndexed = true
		} else {
			index = relative
			relative++
			hasRelative = true
		}
		if index < 0 || index >= len(args) {
			return nil, nil, errors.NewTemplateSyntaxError("index %d for %q not in range (received %d arguments)", index+1, format[start:p], len(args))
		}
		if hasIndexed && hasRelative {
			return nil, nil, errors.NewTemplateSyntaxError("cannot mix indexed and positional parameters")
		}
		used[index]++

		arg, err := newArg(c, args[index])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%q at position %d", format[start:p], start)
		}
		converted = append(converted, arg)
		parts = append(parts, "$"+string(c))
	}

	var unused []string
	for i, n := range used {
		if n == 0 {
			unused = append(unused, "$"+strconv.Itoa(i+1))
		}
	}
	if len(unused) > 0 {
		plural := ""
		if len(unused) > 1 {
			plural = "s"
		}
		return nil, nil, errors.WithHintf(
			errors.NewTemplateSyntaxError("unused argument%s: %s", plural, strings.Join(unused, ", ")),
			"%q consumes %d of %d arguments", format, len(args)-len(unused), len(args))
	}
	return parts, converted, nil
}

func parseNamed(format string, args map[string]interface{}) ([]string, []Arg, error) {
	for key := range args {
		if !lowercaseKey.MatchString(key) {
			return nil, nil, errors.NewTemplateSyntaxError("argument %q must start with a lowercase character", key)
		}
	}

	var (
		parts     []string
		converted []Arg
	)
	for p := 0; p < len(format); {
		next := strings.IndexByte(format[p:], '$')
		if next < 0 {
			parts = append(parts, format[p:])
			break
		}
		if next > 0 {
			parts = append(parts, format[p:p+next])
			p += next
		}

		if m := namedArgument.FindStringSubmatch(format[p:]); m != nil {
			name, c := m[1], m[2][0]
			value, ok := args[name]
			if !ok {
				return nil, nil, errors.NewTemplateSyntaxError("missing named argument for $%s", name)
			}
			if !isArg(c) {
				return nil, nil, errors.NewTemplateSyntaxError("unknown placeholder %q at position %d in %q", m[0], p, format)
			}
			arg, err := newArg(c, value)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "%q at position %d", m[0], p)
			}
			converted = append(converted, arg)
			parts = append(parts, "$"+string(c))
			p += len(m[0])
			continue
		}

		if p+1 >= len(format) {
			return nil, nil, errors.NewTemplateSyntaxError("dangling $ at end of %q", format)
		}
		c := format[p+1]
		if !isNoArg(c) {
			return nil, nil, errors.NewTemplateSyntaxError("unknown placeholder %q at position %d in %q", format[p:p+2], p, format)
		}
		parts = append(parts, format[p:p+2])
		p += 2
	}
	return parts, converted, nil
}
