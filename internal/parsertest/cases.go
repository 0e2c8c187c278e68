// Package parsertest holds the conformance cases shared by the parser and
// fastparser test suites.
package parsertest

import (
	"github.com/shapestone/shape-esv/internal/parser"
)

// Case is one conformance input. Exactly one of Want and Err is set.
type Case struct {
	Name  string
	Input string
	Opts  parser.Options
	Want  *parser.Result
	Err   *parser.Error
}

func records(rs ...[]string) *parser.Result {
	return &parser.Result{Records: rs}
}

func withHeaders(h []string, rs ...[]string) *parser.Result {
	return &parser.Result{Headers: h, HasHeaders: true, Records: rs}
}

func opts(sep rune, headers, strict bool) parser.Options {
	return parser.Options{Separator: sep, Headers: headers, Strict: strict}
}

const fire = '🔥'

var (
	plain   = opts(fire, false, false)
	header  = opts(fire, true, false)
	strict  = opts(fire, false, true)
	strictH = opts(fire, true, true)
)

// Cases returns the conformance table. Each call returns fresh values.
func Cases() []Case {
	return []Case{
		{Name: "empty input", Input: "", Opts: plain, Want: records()},
		{Name: "single field", Input: "single", Opts: plain, Want: records([]string{"single"})},
		{
			Name:  "two records",
			Input: "aaa🔥bbb🔥ccc\nzzz🔥yyy🔥xxx",
			Opts:  plain,
			Want:  records([]string{"aaa", "bbb", "ccc"}, []string{"zzz", "yyy", "xxx"}),
		},
		{
			Name:  "trailing line break",
			Input: "aaa🔥bbb🔥ccc\n",
			Opts:  plain,
			Want:  records([]string{"aaa", "bbb", "ccc"}),
		},
		{
			Name:  "trailing CRLF",
			Input: "a🔥b\r\nc🔥d\r\n",
			Opts:  plain,
			Want:  records([]string{"a", "b"}, []string{"c", "d"}),
		},
		{
			Name:  "CRLF line breaks",
			Input: "aaa🔥bbb\r\nccc🔥ddd",
			Opts:  plain,
			Want:  records([]string{"aaa", "bbb"}, []string{"ccc", "ddd"}),
		},
		{
			Name:  "mixed line breaks",
			Input: "a\r\nb\nc\rd",
			Opts:  plain,
			Want:  records([]string{"a"}, []string{"b"}, []string{"c"}, []string{"d"}),
		},
		{Name: "empty fields", Input: "🔥🔥", Opts: plain, Want: records([]string{"", "", ""})},
		{Name: "trailing separator", Input: "a🔥", Opts: plain, Want: records([]string{"a", ""})},
		{Name: "lone line break", Input: "\n", Opts: plain, Want: records([]string{""})},
		{Name: "blank line kept", Input: "a\n\n", Opts: plain, Want: records([]string{"a"}, []string{""})},
		{
			Name:  "quoted fields",
			Input: `"aaa"🔥"bbb"🔥"ccc"`,
			Opts:  plain,
			Want:  records([]string{"aaa", "bbb", "ccc"}),
		},
		{
			Name:  "quoted separator",
			Input: `"a🔥a"🔥bbb`,
			Opts:  plain,
			Want:  records([]string{"a🔥a", "bbb"}),
		},
		{
			Name:  "quoted LF",
			Input: "\"a\nb\"🔥ccc",
			Opts:  plain,
			Want:  records([]string{"a\nb", "ccc"}),
		},
		{
			Name:  "quoted CRLF kept verbatim",
			Input: "\"a\r\nb\"\r\nc",
			Opts:  plain,
			Want:  records([]string{"a\r\nb"}, []string{"c"}),
		},
		{
			Name:  "escaped quote",
			Input: `"a""b"🔥ccc`,
			Opts:  plain,
			Want:  records([]string{`a"b`, "ccc"}),
		},
		{
			Name:  "escaped quotes at the edges",
			Input: `"Charlie ""Chuck"""`,
			Opts:  plain,
			Want:  records([]string{`Charlie "Chuck"`}),
		},
		{Name: "empty quoted field", Input: `""`, Opts: plain, Want: records([]string{""})},
		{Name: "only an escaped quote", Input: `""""`, Opts: plain, Want: records([]string{`"`})},
		{
			Name:  "mixed quoted and unquoted",
			Input: `"quoted"🔥unquoted🔥"also quoted"`,
			Opts:  plain,
			Want:  records([]string{"quoted", "unquoted", "also quoted"}),
		},
		{
			Name:  "unicode content",
			Input: "héllo🔥wörld🔥日本語",
			Opts:  plain,
			Want:  records([]string{"héllo", "wörld", "日本語"}),
		},
		{
			Name:  "comma is data",
			Input: "a,b🔥c",
			Opts:  plain,
			Want:  records([]string{"a,b", "c"}),
		},
		{
			Name:  "custom emoji separator",
			Input: "aaa😀bbb😀c🔥c",
			Opts:  opts('😀', false, false),
			Want:  records([]string{"aaa", "bbb", "c🔥c"}),
		},
		{
			Name:  "ascii separator",
			Input: "a;\"b;c\"\nd;e",
			Opts:  opts(';', false, false),
			Want:  records([]string{"a", "b;c"}, []string{"d", "e"}),
		},
		{
			Name:  "headers",
			Input: "name🔥age\nAlice🔥30",
			Opts:  header,
			Want:  withHeaders([]string{"name", "age"}, []string{"Alice", "30"}),
		},
		{Name: "headers on empty input", Input: "", Opts: header, Want: records()},
		{
			Name:  "headers only",
			Input: "name🔥age\n",
			Opts:  header,
			Want:  withHeaders([]string{"name", "age"}),
		},
		{
			Name: "name age city with escaped quotes",
			Input: "name🔥age🔥city\n" +
				"Alice🔥30🔥New York\n" +
				"Bob🔥25🔥\"Los Angeles\"\n" +
				"\"Charlie \"\"Chuck\"\"\"🔥35🔥\"San Francisco\"\n",
			Opts: strictH,
			Want: withHeaders(
				[]string{"name", "age", "city"},
				[]string{"Alice", "30", "New York"},
				[]string{"Bob", "25", "Los Angeles"},
				[]string{`Charlie "Chuck"`, "35", "San Francisco"},
			),
		},
		{
			Name:  "strict with trailing line break",
			Input: "a🔥b\nc🔥d\n",
			Opts:  strict,
			Want:  records([]string{"a", "b"}, []string{"c", "d"}),
		},
		{
			Name:  "ragged records without strict",
			Input: "a🔥b🔥c\nd🔥e",
			Opts:  plain,
			Want:  records([]string{"a", "b", "c"}, []string{"d", "e"}),
		},

		// Errors
		{
			Name:  "unclosed quote",
			Input: `"unclosed`,
			Opts:  plain,
			Err:   &parser.Error{Kind: parser.KindUnclosedQuote, Line: 1, Column: 1},
		},
		{
			Name:  "unclosed quote reported at the opening quote",
			Input: "\"open\nunterminated",
			Opts:  plain,
			Err:   &parser.Error{Kind: parser.KindUnclosedQuote, Line: 1, Column: 1},
		},
		{
			Name:  "unclosed quote in a later field",
			Input: "x\ny🔥\"a\nb\nc",
			Opts:  plain,
			Err:   &parser.Error{Kind: parser.KindUnclosedQuote, Line: 2, Column: 3},
		},
		{
			Name:  "bare quote",
			Input: `ab"c`,
			Opts:  plain,
			Err:   &parser.Error{Kind: parser.KindBareQuote, Line: 1, Column: 3},
		},
		{
			Name:  "bare quote columns count scalar values",
			Input: `🔥🔥a"`,
			Opts:  plain,
			Err:   &parser.Error{Kind: parser.KindBareQuote, Line: 1, Column: 4},
		},
		{
			Name:  "malformed closing quote",
			Input: `"field"x🔥other`,
			Opts:  plain,
			Err:   &parser.Error{Kind: parser.KindMalformedQuote, Line: 1, Column: 8, Char: 'x'},
		},
		{
			Name:  "malformed closing quote after a quoted line break",
			Input: "\"a\nb\"c",
			Opts:  plain,
			Err:   &parser.Error{Kind: parser.KindMalformedQuote, Line: 2, Column: 3, Char: 'c'},
		},
		{
			Name:  "malformed closing quote after quoted CRLF",
			Input: "\"a\r\n\"😀",
			Opts:  plain,
			Err:   &parser.Error{Kind: parser.KindMalformedQuote, Line: 2, Column: 2, Char: '😀'},
		},
		{
			Name:  "strict field count",
			Input: "a🔥b\n1🔥2🔥3",
			Opts:  strict,
			Err: &parser.Error{
				Kind: parser.KindFieldCount, Line: 2, Column: 1,
				Record: 1, Expected: 2, Found: 3,
			},
		},
		{
			Name:  "strict field count against the header",
			Input: "h1🔥h2\n1🔥2\n3",
			Opts:  strictH,
			Err: &parser.Error{
				Kind: parser.KindFieldCount, Line: 3, Column: 1,
				Record: 2, Expected: 2, Found: 1,
			},
		},
		{
			Name:  "strict field count after a multi-line field",
			Input: "\"x\ny\"🔥b\nc",
			Opts:  strict,
			Err: &parser.Error{
				Kind: parser.KindFieldCount, Line: 3, Column: 1,
				Record: 1, Expected: 2, Found: 1,
			},
		},
	}
}
