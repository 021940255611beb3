package md

import "strings"

// inline formats one text run. Spans are recognized left to right with a
// fixed priority at each position: code span, strong, emphasis, link.
// A delimiter with no closer is literal text. Runs longer than the cap
// get no span recognition at all, only escaping.
func (c *conversion) inline(text string) string {
	if len(text) > c.maxInline {
		return escapeText(text)
	}
	var sb strings.Builder
	for i := 0; i < len(text); {
		switch b := text[i]; b {
		case '`':
			if end := strings.IndexByte(text[i+1:], '`'); end >= 0 {
				end += i + 1
				// Code span content is escaped, never formatted.
				sb.WriteString("<code>")
				sb.WriteString(escapeText(text[i+1 : end]))
				sb.WriteString("</code>")
				i = end + 1
			} else {
				sb.WriteByte('`')
				i++
			}
		case '*', '_':
			if i+1 < len(text) && text[i+1] == b {
				// A doubled delimiter opens strong or is wholly literal.
				// It is never two nested single emphases.
				delim := text[i : i+2]
				if end := strings.Index(text[i+2:], delim); end >= 0 {
					end += i + 2
					sb.WriteString("<strong>")
					sb.WriteString(c.inline(text[i+2 : end]))
					sb.WriteString("</strong>")
					i = end + 2
				} else {
					sb.WriteString(delim)
					i += 2
				}
				continue
			}
			if end := emphasisCloser(text, i); end >= 0 {
				sb.WriteString("<em>")
				sb.WriteString(c.inline(text[i+1 : end]))
				sb.WriteString("</em>")
				i = end + 1
			} else {
				sb.WriteByte(b)
				i++
			}
		case '[':
			if closeBracket := strings.IndexByte(text[i+1:], ']'); closeBracket >= 0 {
				closeBracket += i + 1
				if closeBracket+1 < len(text) && text[closeBracket+1] == '(' {
					if end := strings.IndexByte(text[closeBracket+2:], ')'); end >= 0 {
						end += closeBracket + 2
						label := c.inline(text[i+1 : closeBracket])
						url := strings.TrimSpace(text[closeBracket+2 : end])
						if dangerousURL(url) {
							// Drop the link, keep the label.
							sb.WriteString(label)
						} else {
							sb.WriteString(`<a href="`)
							sb.WriteString(escapeAttr(url))
							sb.WriteString(`">`)
							sb.WriteString(label)
							sb.WriteString(`</a>`)
						}
						i = end + 1
						continue
					}
				}
			}
			// Not a complete [label](url); the bracket is literal.
			sb.WriteByte('[')
			i++
		default:
			// Consume literal text up to the next delimiter character.
			j := i + 1
			for j < len(text) && !isInlineMeta(text[j]) {
				j++
			}
			sb.WriteString(escapeText(text[i:j]))
			i = j
		}
	}
	return sb.String()
}

func isInlineMeta(b byte) bool {
	return b == '`' || b == '*' || b == '_' || b == '['
}

// emphasisCloser returns the position of the delimiter closing the
// emphasis opened at start, or -1. Doubled occurrences of the delimiter
// character belong to strong spans inside the emphasis, so the scan
// skips past them.
func emphasisCloser(text string, start int) int {
	b := text[start]
	for j := start + 1; j < len(text); {
		k := strings.IndexByte(text[j:], b)
		if k < 0 {
			break
		}
		k += j
		if k+1 >= len(text) || text[k+1] != b {
			return k
		}
		j = k + 2
	}
	return -1
}
