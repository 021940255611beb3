package md

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var escapeTests = []struct {
	in       string
	wantText string
	wantAttr string
}{
	{"", "", ""},
	{"plain", "plain", "plain"},
	{"a & b", "a &amp; b", "a &amp; b"},
	{"<b>x</b>", "&lt;b&gt;x&lt;/b&gt;", "&lt;b&gt;x&lt;/b&gt;"},
	{`say "hi"`, `say "hi"`, "say &quot;hi&quot;"},
	{"it's", "it's", "it&#39;s"},
	{`<a href="x">&`, `&lt;a href="x"&gt;&amp;`, "&lt;a href=&quot;x&quot;&gt;&amp;"},
	{"&amp;", "&amp;amp;", "&amp;amp;"},
	{"héllo 世界", "héllo 世界", "héllo 世界"},
}

func TestEscape(t *testing.T) {
	for _, test := range escapeTests {
		if got := escapeText(test.in); got != test.wantText {
			t.Errorf("escapeText(%q) = %q, want %q", test.in, got, test.wantText)
		}
		if got := escapeAttr(test.in); got != test.wantAttr {
			t.Errorf("escapeAttr(%q) = %q, want %q", test.in, got, test.wantAttr)
		}
	}
}

var dangerousURLTests = []struct {
	url  string
	want bool
}{
	{"javascript:alert(1)", true},
	{"JAVASCRIPT:alert(1)", true},
	{"JavaScript:void(0)", true},
	{"javascript:", true},
	{"javascript", false},
	{"java script:x", false},
	// Callers trim before calling; the check itself does not.
	{" javascript:x", false},
	{"https://example.com", false},
	{"/relative/path", false},
	{"mailto:x@example.com", false},
	{"", false},
}

func TestDangerousURL(t *testing.T) {
	for _, test := range dangerousURLTests {
		if got := dangerousURL(test.url); got != test.want {
			t.Errorf("dangerousURL(%q) = %v, want %v", test.url, got, test.want)
		}
	}
}

var splitLinesTests = []struct {
	in   string
	want []string
}{
	{"", nil},
	{"a", []string{"a"}},
	{"a\n", []string{"a"}},
	{"a\nb", []string{"a", "b"}},
	{"a\n\nb", []string{"a", "", "b"}},
	{"a\r\nb", []string{"a", "b"}},
	{"a\rb", []string{"a", "b"}},
	{"a\r\n", []string{"a"}},
	{"\n", []string{""}},
	{"\r\n\r\n", []string{"", ""}},
	{"a\rb\r\nc\nd", []string{"a", "b", "c", "d"}},
}

func TestSplitLines(t *testing.T) {
	for _, test := range splitLinesTests {
		if diff := cmp.Diff(test.want, splitLines(test.in)); diff != "" {
			t.Errorf("splitLines(%q) diff (-want +got):\n%s", test.in, diff)
		}
	}
}

var listItemTests = []struct {
	in          string
	wantKind    listKind
	wantContent string
	wantOK      bool
}{
	{"- a", bulletList, "a", true},
	{"* b", bulletList, "b", true},
	{"+ c", bulletList, "c", true},
	{"- ", bulletList, "", true},
	{"-a", 0, "", false},
	{"-", 0, "", false},
	{"1. x", orderedList, "x", true},
	{"10. ten", orderedList, "ten", true},
	{"0. zero", orderedList, "zero", true},
	{"1.x", 0, "", false},
	{"1.", 0, "", false},
	{". x", 0, "", false},
	{"", 0, "", false},
	{"\t- a", 0, "", false},
}

func TestListItem(t *testing.T) {
	for _, test := range listItemTests {
		kind, content, ok := listItem(test.in)
		if kind != test.wantKind || content != test.wantContent || ok != test.wantOK {
			t.Errorf("listItem(%q) = (%v, %q, %v), want (%v, %q, %v)",
				test.in, kind, content, ok, test.wantKind, test.wantContent, test.wantOK)
		}
	}
}
