package markup_test

import (
	"testing"

	"github.com/hexwood/xmltree/markup"
)

func TestEncoder(t *testing.T) {
	tests := []struct {
		name string
		in   func(*markup.Encoder)
		want string
	}{
		{
			"raw text",
			func(e *markup.Encoder) {
				e.Raw("<not & checked>")
			},
			`<not & checked>`,
		},

		{
			"attribute",
			func(e *markup.Encoder) {
				e.Attr("id", "42")
			},
			`id="42"`,
		},

		{
			"attribute escaping",
			func(e *markup.Encoder) {
				e.Attr("v", `a&b<c"d>e`)
			},
			`v="a&amp;b&lt;c&quot;d>e"`,
		},

		{
			"text escaping",
			func(e *markup.Encoder) {
				e.Text(`a&b<c"d>e`)
			},
			`a&amp;b&lt;c"d&gt;e`,
		},

		{
			"comment",
			func(e *markup.Encoder) {
				e.Comment(" note ")
			},
			`<!-- note -->`,
		},

		{
			"cdata",
			func(e *markup.Encoder) {
				e.CDATA("a < b")
			},
			`<![CDATA[a < b]]>`,
		},

		{
			"cdata with embedded terminator",
			func(e *markup.Encoder) {
				e.CDATA("a]]>b")
			},
			`<![CDATA[a]]]]><![CDATA[>b]]>`,
		},

		{
			"processing instruction",
			func(e *markup.Encoder) {
				e.ProcInst("pi", "data")
			},
			`<?pi data?>`,
		},

		{
			"processing instruction without text",
			func(e *markup.Encoder) {
				e.ProcInst("pi", "")
			},
			`<?pi?>`,
		},

		{
			"fragments concatenate",
			func(e *markup.Encoder) {
				e.Raw("<a ")
				e.Attr("v", "1")
				e.Raw(">")
				e.Text("x")
				e.Raw("</a>")
			},
			`<a v="1">x</a>`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var e markup.Encoder
			tc.in(&e)
			if got := string(e.Out); got != tc.want {
				t.Errorf("incorrect encode:\n  got: %s\n want: %s", got, tc.want)
			}
		})
	}
}
