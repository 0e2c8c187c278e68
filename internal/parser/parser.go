// Package parser implements the ESV scanning state machine.
//
// The parser consumes tokens from internal/tokenizer and drives an explicit
// enumerated state through every token:
//
//	fieldStart -> unquoted        text
//	fieldStart -> quoted          "
//	quoted     -> quoteInQuoted   "
//	quoteInQuoted -> quoted       "   (escaped quote)
//	any non-quoted state, on separator  -> fieldStart (end field)
//	any non-quoted state, on line break -> fieldStart (end record)
//
// Position tracking is applied to each token before the state is consulted,
// so line and column are accurate inside multi-line quoted fields too.
package parser

import (
	"strings"
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-esv/internal/tokenizer"
)

// Options configures the parser behavior. Separator validity is checked by
// the caller before a Parser is built.
type Options struct {
	// Separator is the field delimiter. Default: '🔥'
	Separator rune
	// Headers lifts the first record into Result.Headers.
	Headers bool
	// Strict requires every record to have the first record's field count.
	Strict bool
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Separator: tokenizer.DefaultSeparator,
	}
}

// Result is the outcome of a successful parse.
type Result struct {
	Headers    []string
	HasHeaders bool
	Records    [][]string
}

type state uint8

const (
	stateFieldStart state = iota
	stateUnquoted
	stateQuoted
	stateQuoteInQuoted
)

// Parser scans one input. It is single-use: build a new Parser per input.
type Parser struct {
	tokenizer *shapetokenizer.Tokenizer
	opts      Options

	state  state
	line   int
	column int

	// opening quote of the current quoted field
	quoteLine   int
	quoteColumn int

	field   strings.Builder
	record  []string
	records [][]string

	// recordLine is the line the current record started on.
	recordLine int
	// dirty is set once any token has been consumed for the current record.
	dirty bool
	// expected is the reference field count in strict mode, -1 until known.
	expected int
}

// NewParser creates a parser for input using default options.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a parser for input with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	stream := shapetokenizer.NewStream(input)
	tok := tokenizer.NewTokenizerWithStreamAndOptions(stream, tokenizer.Options{
		Separator: opts.Separator,
	})

	return &Parser{
		tokenizer:  &tok,
		opts:       opts,
		state:      stateFieldStart,
		line:       1,
		column:     1,
		recordLine: 1,
		expected:   -1,
		records:    make([][]string, 0, 16),
	}
}

// Parse scans the whole input. On error no partial result is returned.
func (p *Parser) Parse() (*Result, error) {
	for {
		token, ok := p.tokenizer.NextToken()
		if !ok {
			break
		}
		if err := p.step(token.Kind(), token.ValueString()); err != nil {
			return nil, err
		}
	}

	if err := p.finish(); err != nil {
		return nil, err
	}

	res := &Result{Records: p.records}
	if p.opts.Headers && len(p.records) > 0 {
		res.Headers = p.records[0]
		res.HasHeaders = true
		res.Records = p.records[1:]
	}
	return res, nil
}

// step applies one token to the state machine.
func (p *Parser) step(kind, value string) error {
	line, column := p.line, p.column
	p.advance(kind, value)
	p.dirty = true

	switch p.state {
	case stateFieldStart:
		switch kind {
		case tokenizer.TokenDQuote:
			p.quoteLine, p.quoteColumn = line, column
			p.state = stateQuoted
		case tokenizer.TokenSeparator:
			p.endField()
		case tokenizer.TokenNewline:
			return p.endRecord()
		default:
			p.field.WriteString(value)
			p.state = stateUnquoted
		}

	case stateUnquoted:
		switch kind {
		case tokenizer.TokenDQuote:
			return NewError(KindBareQuote, line, column)
		case tokenizer.TokenSeparator:
			p.endField()
		case tokenizer.TokenNewline:
			return p.endRecord()
		default:
			p.field.WriteString(value)
		}

	case stateQuoted:
		if kind == tokenizer.TokenDQuote {
			p.state = stateQuoteInQuoted
			return nil
		}
		// Separators and line breaks are literal here, kept verbatim.
		p.field.WriteString(value)

	case stateQuoteInQuoted:
		switch kind {
		case tokenizer.TokenDQuote:
			p.field.WriteByte('"')
			p.state = stateQuoted
		case tokenizer.TokenSeparator:
			p.endField()
		case tokenizer.TokenNewline:
			return p.endRecord()
		default:
			r, _ := utf8.DecodeRuneInString(value)
			e := NewError(KindMalformedQuote, line, column)
			e.Char = r
			return e
		}
	}
	return nil
}

// advance moves the position past a token.
func (p *Parser) advance(kind, value string) {
	if kind == tokenizer.TokenNewline {
		p.line++
		p.column = 1
		return
	}
	p.column += utf8.RuneCountInString(value)
}

func (p *Parser) endField() {
	p.record = append(p.record, p.field.String())
	p.field.Reset()
	p.state = stateFieldStart
}

func (p *Parser) endRecord() error {
	p.endField()
	if err := p.checkFieldCount(); err != nil {
		return err
	}
	p.records = append(p.records, p.record)
	p.record = nil
	p.dirty = false
	p.recordLine = p.line
	return nil
}

// finish handles end of input.
func (p *Parser) finish() error {
	if p.state == stateQuoted {
		return NewError(KindUnclosedQuote, p.quoteLine, p.quoteColumn)
	}
	// Nothing consumed since the last line break: the input ended with a
	// line break, which terminates the previous record instead of opening one.
	if !p.dirty {
		return nil
	}
	return p.endRecord()
}

func (p *Parser) checkFieldCount() error {
	if !p.opts.Strict {
		return nil
	}
	n := len(p.record)
	if p.expected < 0 {
		p.expected = n
		return nil
	}
	if n != p.expected {
		return NewFieldCountError(p.recordLine, len(p.records), p.expected, n)
	}
	return nil
}
