package codeblock

import "strings"

// CommentTarget is a Target that writes line comments itself.
type CommentTarget interface {
	Target
	EmitComment(b Block) error
}

type lineComment struct {
	text Block
}

func (c lineComment) EmitNode(t Target) error {
	if ct, ok := t.(CommentTarget); ok {
		return ct.EmitComment(c.text)
	}
	return t.EmitBlock(Block{parts: []string{c.String()}})
}

func (c lineComment) String() string {
	lines := strings.Split(strings.TrimSuffix(c.text.String(), "\n"), "\n")
	return "// " + strings.Join(lines, "\n// ") + "\n"
}
