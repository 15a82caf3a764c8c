// Package codeblock parses format strings with $-placeholders into immutable
// blocks of Java code.
//
// Placeholders that take an argument:
//
//	$N  a name: a string or anything with Name() string
//	$L  a literal: a nested Block, a Node, or any value printed with %v
//	$S  a string literal with Java escaping, nil renders as null
//	$T  a type: typename.TypeName, reflect.Type, go/types.Type or go/types.Object
//
// Placeholders without one:
//
//	$$  a literal dollar sign
//	$>  increase the indentation level
//	$<  decrease the indentation level
//	$[  begin a statement
//	$]  end a statement
//	$W  a space, or a newline if the line is too long
//	$Z  a zero-width wrap point
//
// Arguments are positional ($L), indexed ($2L, 1-based) or, with AddNamed,
// named ($value:L). Positional and indexed styles cannot be mixed.
package codeblock

import (
	"strings"
)

// Block is an immutable fragment of code: format parts and the arguments
// they consume, kept separate until a writer renders them.
type Block struct {
	parts []string
	args  []Arg
}

// Of parses format with args into a Block.
func Of(format string, args ...interface{}) (Block, error) {
	return NewBuilder().Add(format, args...).Build()
}

// Must returns b, panicking if err is not nil. It is meant for package-level
// blocks built from constant formats.
func Must(b Block, err error) Block {
	if err != nil {
		panic(err)
	}
	return b
}

// Parts returns the format parts. Literal text is stored as is; placeholders
// are stored as their two-character form such as "$T".
func (b Block) Parts() []string {
	return append([]string(nil), b.parts...)
}

// Args returns the arguments in the order the parts consume them.
func (b Block) Args() []Arg {
	return append([]Arg(nil), b.args...)
}

// IsEmpty reports whether b produces no output.
func (b Block) IsEmpty() bool {
	return len(b.parts) == 0
}

// ToBuilder returns a Builder initialized with the contents of b.
func (b Block) ToBuilder() *Builder {
	return &Builder{parts: b.Parts(), args: b.Args()}
}

// Equal reports whether a and b render the same text.
func (b Block) Equal(o Block) bool {
	return b.String() == o.String()
}

// Join concatenates blocks, separating them with sep. Empty blocks are kept.
func Join(blocks []Block, sep string) (Block, error) {
	builder := NewBuilder()
	for i, b := range blocks {
		if i > 0 {
			builder.Add(sep)
		}
		builder.AddBlock(b)
	}
	return builder.Build()
}

// String renders b on its own, with types fully qualified, two-space
// indentation and no line wrapping.
func (b Block) String() string {
	var r renderer
	r.block(b)
	return r.out.String()
}

// isNoArg reports whether the placeholder character takes no argument.
func isNoArg(c byte) bool {
	return strings.IndexByte("$><[]WZ", c) >= 0
}

// isArg reports whether the placeholder character takes an argument.
func isArg(c byte) bool {
	return strings.IndexByte("NLST", c) >= 0
}
