// Package esv parses and serializes Emoji-Separated Values.
//
// ESV is CSV with a single configurable scalar value as the field separator,
// by default U+1F525 FIRE:
//
//	name🔥age🔥city
//	Alice🔥30🔥New York
//	"Charlie ""Chuck"""🔥35🔥"San Francisco"
//
// Quoting follows RFC 4180: a field may be wrapped in double quotes, inside
// which the separator, CR and LF are literal and "" stands for one quote.
// Records end with LF, CRLF or a lone CR.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Parser and Serializer values hold only their immutable options
// and may be shared.
//
// # Parsing
//
//	doc, err := esv.Parse("a🔥b\nc🔥d")
//	doc, err := esv.ParseWithHeaders(input)
//	doc, err := esv.ParseWithOptions(input, esv.DefaultParserOptions().WithStrict(true))
//
// Parse errors are *ParseError values carrying a closed ErrorKind and the
// 1-based line and column of the offending character:
//
//	var pe *esv.ParseError
//	if errors.As(err, &pe) && pe.Kind == esv.KindFieldCount {
//	    fmt.Printf("record %d has %d fields, want %d\n", pe.Record, pe.Found, pe.Expected)
//	}
//
// # Serializing
//
//	out := esv.Serialize(doc)
//	out, err := esv.SerializeWithOptions(doc, esv.DefaultSerializerOptions().WithLineEnding(esv.CRLF))
//
// A field is quoted only when it contains the separator, a double quote, CR
// or LF, unless AlwaysQuote is set.
package esv

import (
	"github.com/shapestone/shape-esv/internal/fastparser"
	"github.com/shapestone/shape-esv/internal/parser"
)

// Format returns the format identifier for this package.
func Format() string {
	return "ESV"
}

// Parse parses input with the default options. All records are data
// records; use ParseWithHeaders to lift the first one into the header slot.
//
// Example:
//
//	doc, err := esv.Parse("aaa🔥bbb🔥ccc\nzzz🔥yyy🔥xxx")
//	// doc.RecordCount() == 2
func Parse(input string) (*Document, error) {
	return parse(input, DefaultParserOptions())
}

// ParseWithHeaders parses input with the default separator and the first
// record taken as headers.
func ParseWithHeaders(input string) (*Document, error) {
	return parse(input, DefaultParserOptions().WithHeaders(true))
}

// ParseWithOptions parses input with custom options.
//
// Example:
//
//	opts := esv.DefaultParserOptions().WithSeparator('😀').WithStrict(true)
//	doc, err := esv.ParseWithOptions("a😀b\nc😀d", opts)
func ParseWithOptions(input string, opts ParserOptions) (*Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return parse(input, opts)
}

func parse(input string, opts ParserOptions) (*Document, error) {
	res, err := parser.NewParserWithOptions(input, opts.internal()).Parse()
	if err != nil {
		return nil, err
	}
	return &Document{
		headers:    res.Headers,
		hasHeaders: res.HasHeaders,
		records:    res.Records,
	}, nil
}

// Parser parses ESV text with a fixed configuration.
type Parser struct {
	opts ParserOptions
}

// NewParser creates a Parser. The options are validated here, before any
// input is read.
func NewParser(opts ParserOptions) (*Parser, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Parser{opts: opts}, nil
}

// Options returns the parser's configuration.
func (p *Parser) Options() ParserOptions {
	return p.opts
}

// Parse parses input into a new Document.
func (p *Parser) Parse(input string) (*Document, error) {
	return parse(input, p.opts)
}

// Validate checks the input without building a document.
func (p *Parser) Validate(input string) (Summary, error) {
	return fastparser.Validate([]byte(input), p.opts.internal())
}

// Summary describes the shape of well-formed input.
type Summary = fastparser.Summary

// Validate reports whether input is well-formed ESV under the default
// options. It runs a table-driven scanner that builds no fields and reports
// the same errors as Parse.
//
//	if err := esv.Validate(input); err != nil {
//	    fmt.Println("Invalid ESV:", err)
//	}
func Validate(input string) error {
	_, err := fastparser.Validate([]byte(input), DefaultParserOptions().internal())
	return err
}

// ValidateWithOptions checks input under custom options and returns its
// record and field counts.
func ValidateWithOptions(input string, opts ParserOptions) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}
	return fastparser.Validate([]byte(input), opts.internal())
}
