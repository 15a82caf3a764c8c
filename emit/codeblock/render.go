package codeblock

import (
	"fmt"
	"strings"

	"github.com/teranos/jpoet/emit/typename"
)

const standaloneIndent = "  "

// renderer is the writer behind Block.String. It follows the document
// writer's indentation and statement rules but never wraps, never imports
// and does not report misuse.
type renderer struct {
	out             strings.Builder
	level           int
	inStatement     bool
	statementLine   int
	statementLevel  int
	trailingNewline bool
}

func (r *renderer) block(b Block) {
	a := 0
	for _, part := range b.parts {
		switch part {
		case "$L":
			arg := b.args[a]
			a++
			if sub, ok := arg.Block(); ok {
				r.block(sub)
			} else if node, ok := arg.Node(); ok {
				r.emit(fmt.Sprint(node))
			} else {
				r.emit(arg.Text())
			}
		case "$N":
			r.emit(b.args[a].Text())
			a++
		case "$S":
			arg := b.args[a]
			a++
			if arg.IsNull() {
				r.emit("null")
			} else {
				r.emit(Quote(arg.Text(), standaloneIndent))
			}
		case "$T":
			r.emit(b.args[a].Type().Render(typename.Canonical))
			a++
		case "$$":
			r.emit("$")
		case "$>":
			r.level++
		case "$<":
			if r.level > 0 {
				r.level--
			}
		case "$[":
			r.inStatement = true
			r.statementLine = 0
			r.statementLevel = r.level
		case "$]":
			if r.inStatement {
				r.level = r.statementLevel
			}
			r.inStatement = false
		case "$W":
			r.emit(" ")
		case "$Z":
		default:
			r.emit(part)
		}
	}
}

func (r *renderer) emit(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			r.out.WriteByte('\n')
			r.trailingNewline = true
			if r.inStatement {
				if r.statementLine == 0 {
					r.level++
				}
				r.statementLine++
			}
		}
		if line == "" {
			continue
		}
		if r.trailingNewline {
			r.out.WriteString(strings.Repeat(standaloneIndent, r.level))
		}
		r.out.WriteString(line)
		r.trailingNewline = false
	}
}
