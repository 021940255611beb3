package md

import "strings"

// There are different ways to escape HTML. The two schemes below match
// where the output puts input text: text positions escape the three
// characters that can alter document structure, attribute values
// additionally escape quotes so they cannot terminate the enclosing
// quoted string.
var (
	escapeText = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;",
	).Replace
	escapeAttr = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;",
		`"`, "&quot;", "'", "&#39;",
	).Replace
)

// dangerousURL reports whether a link destination must not become an
// href. The check is case-insensitive and expects surrounding whitespace
// to have been trimmed already.
func dangerousURL(url string) bool {
	const scheme = "javascript:"
	return len(url) >= len(scheme) && strings.EqualFold(url[:len(scheme)], scheme)
}
