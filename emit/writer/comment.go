package writer

import (
	"strings"

	"github.com/teranos/jpoet/emit/codeblock"
	"github.com/teranos/jpoet/emit/linewrap"
)

// EmitComment emits b as line comments, reflowed to the column limit.
func (w *Writer) EmitComment(b codeblock.Block) error {
	text, err := w.captureText(b)
	if err != nil {
		return err
	}
	text = strings.TrimSuffix(text, "\n")

	w.trailingNewline = true
	w.comment = true
	defer func() { w.comment = false }()
	if err := w.emitAndIndent(w.reflow(text, "// ")); err != nil {
		return err
	}
	return w.emitAndIndent("\n")
}

// EmitJavadoc emits b as a javadoc comment. Types referenced only from
// javadoc are never imported.
func (w *Writer) EmitJavadoc(b codeblock.Block) error {
	if b.IsEmpty() {
		return nil
	}
	if err := w.emitAndIndent("/**\n"); err != nil {
		return err
	}

	w.resolver.SetJavadoc(true)
	text, err := w.captureText(b)
	w.resolver.SetJavadoc(false)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	w.javadoc = true
	err = w.emitAndIndent(w.reflow(text, " * "))
	w.javadoc = false
	if err != nil {
		return err
	}
	return w.emitAndIndent(" */\n")
}

// captureText renders b to a string with the writer's resolver, without
// indentation or wrapping.
func (w *Writer) captureText(b codeblock.Block) (string, error) {
	prev := w.capture
	var sb strings.Builder
	w.capture = &sb
	err := w.EmitBlock(b)
	w.capture = prev
	return sb.String(), err
}

// reflow breaks lines of text that would overflow the column limit once
// indented and prefixed. Lines break at spaces only; a word longer than the
// available width keeps a line of its own.
func (w *Writer) reflow(text, prefix string) string {
	width := w.out.ColumnLimit() - linewrap.Width(w.indent)*w.level - linewrap.Width(prefix)
	if width <= 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if linewrap.Width(line) <= width {
			out = append(out, line)
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := lead + words[0]
		for _, word := range words[1:] {
			if linewrap.Width(current)+1+linewrap.Width(word) <= width {
				current += " " + word
				continue
			}
			out = append(out, current)
			current = lead + word
		}
		out = append(out, current)
	}
	return strings.Join(out, "\n")
}
