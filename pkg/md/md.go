// Package md converts a constrained dialect of Markdown to HTML that is
// safe to embed in a web page without further sanitization.
//
// The dialect supports ATX headings, paragraphs, fenced code blocks,
// nested ordered and unordered lists, and the inline spans code, strong,
// emphasis and link. Everything else is literal text: raw HTML in the
// input is always escaped, never passed through, and link destinations
// using the javascript: scheme are dropped. Malformed markup does not
// fail; it degrades to escaped text, so conversion never returns an
// error.
//
// Conversion is a pure function of its input. A Converter holds no state
// across calls and may be used from multiple goroutines.
package md

import (
	"strconv"
	"strings"
)

// DefaultMaxInline is the cap applied by a zero Converter.MaxInline.
const DefaultMaxInline = 100000

// A Converter converts Markdown to HTML. The zero value is ready to use.
type Converter struct {
	// MaxInline caps the length in bytes of a single text run (a merged
	// paragraph, a heading, or a list item) that gets inline span
	// recognition. Runs over the cap are emitted escaped but unformatted,
	// which bounds the cost of adversarial delimiter sequences. Zero or
	// negative means DefaultMaxInline.
	MaxInline int
}

// Convert renders src as a sequence of HTML blocks joined by newlines.
// It returns the empty string if src is empty or only whitespace.
func (cv Converter) Convert(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	c := conversion{lines: splitLines(src), maxInline: cv.MaxInline}
	if c.maxInline <= 0 {
		c.maxInline = DefaultMaxInline
	}
	c.run()
	return strings.Join(c.blocks, "\n")
}

// Convert renders src with a zero-value Converter.
func Convert(src string) string { return Converter{}.Convert(src) }

// A conversion carries the state of a single Convert call: the input
// lines and the output blocks generated so far.
type conversion struct {
	lines     []string
	blocks    []string
	maxInline int
}

// run dispatches each line to a block handler. Handlers consume one or
// more lines and append one block, except for blank lines, which are
// skipped. Classification only happens here; once a handler starts
// consuming, lines that would have classified differently may be
// absorbed (a paragraph absorbs any following non-blank line).
func (c *conversion) run() {
	for i := 0; i < len(c.lines); {
		line := c.lines[i]

		if opener := strings.TrimLeft(line, " "); strings.HasPrefix(opener, "```") {
			i = c.fencedCode(i, opener)
			continue
		}
		if h, ok := c.heading(line); ok {
			c.blocks = append(c.blocks, h)
			i++
			continue
		}
		if _, rest := indentOf(line); isListItem(rest) {
			block, next := c.list(i)
			c.blocks = append(c.blocks, block)
			i = next
			continue
		}
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}
		i = c.paragraph(i)
	}
}

// fencedCode handles the fenced code block whose opening line is line i;
// opener is that line with its indentation stripped. It returns the index
// of the first line after the block.
func (c *conversion) fencedCode(i int, opener string) int {
	closer := -1
	for j := i + 1; j < len(c.lines); j++ {
		if strings.HasPrefix(strings.TrimLeft(c.lines[j], " "), "```") {
			closer = j
			break
		}
	}
	if closer < 0 {
		// No closing fence below. The opening line becomes a literal
		// paragraph and the lines after it are dispatched normally.
		c.blocks = append(c.blocks, "<p>"+escapeText(c.lines[i])+"</p>")
		return i + 1
	}
	var sb strings.Builder
	sb.WriteString("<pre><code")
	if lang := strings.TrimSpace(opener[3:]); lang != "" {
		sb.WriteString(` class="language-`)
		sb.WriteString(escapeAttr(lang))
		sb.WriteString(`"`)
	}
	sb.WriteString(">\n")
	// Body lines are kept verbatim, including indentation and blank
	// lines; the only transformation is escaping.
	for k, l := range c.lines[i+1 : closer] {
		if k > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(escapeText(l))
	}
	sb.WriteString("\n</code></pre>")
	c.blocks = append(c.blocks, sb.String())
	return closer + 1
}

// heading renders line as an ATX heading if it is one: after any leading
// whitespace, one to six # characters followed by exactly one space.
// Trailing # and space characters do not belong to the heading text.
func (c *conversion) heading(line string) (string, bool) {
	h := strings.TrimLeft(line, " \t")
	level := 0
	for level < len(h) && h[level] == '#' {
		level++
	}
	if level < 1 || level > 6 || level >= len(h) || h[level] != ' ' {
		return "", false
	}
	text := strings.TrimSpace(strings.TrimRight(h[level+1:], "# "))
	tag := "h" + strconv.Itoa(level)
	return "<" + tag + ">" + c.inline(text) + "</" + tag + ">", true
}

// paragraph merges the run of non-blank lines starting at i into a
// single paragraph and returns the index of the line that ended the run.
// Each line is trimmed and the lines are joined with single spaces; the
// joined text is formatted as one inline run.
func (c *conversion) paragraph(i int) int {
	var parts []string
	for i < len(c.lines) {
		part := strings.TrimSpace(c.lines[i])
		if part == "" {
			break
		}
		parts = append(parts, part)
		i++
	}
	c.blocks = append(c.blocks, "<p>"+c.inline(strings.Join(parts, " "))+"</p>")
	return i
}

// splitLines splits src on \n, \r\n or \r terminators. A trailing
// terminator does not produce a final empty line.
func splitLines(src string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			lines = append(lines, src[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, src[start:i])
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(src) {
		lines = append(lines, src[start:])
	}
	return lines
}

// indentOf splits a line into its indentation width and the rest. Only
// spaces count as indentation.
func indentOf(line string) (int, string) {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i, line[i:]
}
