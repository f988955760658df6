// Package textutil formats plain text for terminal help output.
package textutil

import "strings"

// Wrap splits text into lines of at most width bytes, breaking on whitespace. Runs of whitespace
// collapse to a single space, and a word longer than width is placed on a line of its own.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Paragraphs wraps each blank-line separated paragraph of text to width, prefixing every line with
// indent spaces. The indent counts toward width. Paragraphs are separated by a single empty line
// and the result has no trailing newline.
func Paragraphs(text string, width, indent int) string {
	prefix := strings.Repeat(" ", indent)
	var blocks []string
	for _, para := range strings.Split(text, "\n\n") {
		lines := Wrap(para, width-indent)
		if len(lines) == 0 {
			continue
		}
		for i, line := range lines {
			lines[i] = prefix + line
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
