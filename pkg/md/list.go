package md

import "strings"

// listKind distinguishes bullet lists from ordered ones.
type listKind uint8

const (
	bulletList listKind = iota
	orderedList
)

func (k listKind) openTag() string {
	if k == orderedList {
		return "<ol>"
	}
	return "<ul>"
}

func (k listKind) closeTag() string {
	if k == orderedList {
		return "</ol>"
	}
	return "</ul>"
}

// A listLevel is one open list element, identified by its kind and the
// indentation of the items that belong to it.
type listLevel struct {
	kind   listKind
	indent int
}

// listItem splits an indentation-stripped line into list item kind and
// content. Bullet items start with "- ", "* " or "+ "; ordered items
// with one or more digits, a dot and a space.
func listItem(s string) (kind listKind, content string, ok bool) {
	if len(s) >= 2 && (s[0] == '-' || s[0] == '*' || s[0] == '+') && s[1] == ' ' {
		return bulletList, s[2:], true
	}
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(s) && s[i] == '.' && s[i+1] == ' ' {
		return orderedList, s[i+2:], true
	}
	return 0, "", false
}

func isListItem(s string) bool {
	_, _, ok := listItem(s)
	return ok
}

// list assembles the list region starting at line start into one HTML
// fragment and returns it with the index of the first line it did not
// consume. The region ends at the first blank or non-list line.
func (c *conversion) list(start int) (string, int) {
	var sb strings.Builder
	var open []listLevel
	i := start
	for i < len(c.lines) {
		indent, rest := indentOf(c.lines[i])
		kind, content, ok := listItem(rest)
		if !ok {
			break
		}

		// Close every level this item does not continue: levels indented
		// more deeply, and a same-indent level of the other kind.
		for len(open) > 0 {
			top := open[len(open)-1]
			if indent < top.indent || (indent == top.indent && kind != top.kind) {
				sb.WriteString(top.kind.closeTag())
				open = open[:len(open)-1]
			} else {
				break
			}
		}
		if len(open) == 0 || kind != open[len(open)-1].kind || indent > open[len(open)-1].indent {
			sb.WriteString(kind.openTag())
			open = append(open, listLevel{kind, indent})
		}

		content = strings.TrimRight(content, " \t")
		// An immediately following item with deeper indentation starts a
		// sublist inside this item, so the nested markup lands within the
		// parent <li>, never as its sibling.
		if j := i + 1; j < len(c.lines) {
			if nestedIndent, nestedRest := indentOf(c.lines[j]); nestedIndent > indent && isListItem(nestedRest) {
				sb.WriteString("<li>")
				sb.WriteString(c.inline(content))
				sb.WriteByte(' ')
				frag, next := c.list(j)
				sb.WriteString(frag)
				sb.WriteString("</li>")
				i = next
				continue
			}
		}
		sb.WriteString("<li>")
		sb.WriteString(c.inline(content))
		sb.WriteString("</li>")
		i++
	}
	for len(open) > 0 {
		sb.WriteString(open[len(open)-1].kind.closeTag())
		open = open[:len(open)-1]
	}
	return sb.String(), i
}
