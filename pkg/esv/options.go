package esv

import (
	"fmt"
	"unicode/utf8"

	"github.com/shapestone/shape-esv/internal/parser"
	"github.com/shapestone/shape-esv/internal/tokenizer"
)

// DefaultSeparator is the field separator used when none is configured:
// U+1F525 FIRE.
const DefaultSeparator = tokenizer.DefaultSeparator

// LineEnding is the record terminator written by a Serializer.
type LineEnding string

// Supported line endings.
const (
	LF   LineEnding = "\n"
	CRLF LineEnding = "\r\n"
)

// String returns the name of the line ending ("lf" or "crlf").
func (l LineEnding) String() string {
	switch l {
	case LF:
		return "lf"
	case CRLF:
		return "crlf"
	default:
		return fmt.Sprintf("LineEnding(%q)", string(l))
	}
}

// ParseLineEnding maps "lf" or "crlf" to a LineEnding.
func ParseLineEnding(name string) (LineEnding, error) {
	switch name {
	case "lf", "LF":
		return LF, nil
	case "crlf", "CRLF":
		return CRLF, nil
	default:
		return "", &OptionsError{Field: "LineEnding", Message: fmt.Sprintf("unknown line ending %q", name)}
	}
}

// ParserOptions configures parsing. It is a value type: the With methods
// return a modified copy and never touch the receiver.
type ParserOptions struct {
	// Separator is the field delimiter. It must be a valid scalar value and
	// not ", \r, \n, NUL or U+FFFD.
	// Default: DefaultSeparator
	Separator rune

	// Headers moves the first record into the document's header slot.
	// Default: false
	Headers bool

	// Strict requires every record, header included, to have the first
	// record's field count.
	// Default: false
	Strict bool
}

// DefaultParserOptions returns the default parser configuration.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		Separator: DefaultSeparator,
	}
}

// WithSeparator returns a copy of o using sep as the field delimiter.
func (o ParserOptions) WithSeparator(sep rune) ParserOptions {
	o.Separator = sep
	return o
}

// WithHeaders returns a copy of o with header mode set.
func (o ParserOptions) WithHeaders(headers bool) ParserOptions {
	o.Headers = headers
	return o
}

// WithStrict returns a copy of o with strict field counting set.
func (o ParserOptions) WithStrict(strict bool) ParserOptions {
	o.Strict = strict
	return o
}

// Validate checks if the options are valid.
func (o ParserOptions) Validate() error {
	if !validSeparator(o.Separator) {
		return separatorError(o.Separator)
	}
	return nil
}

func (o ParserOptions) internal() parser.Options {
	return parser.Options{
		Separator: o.Separator,
		Headers:   o.Headers,
		Strict:    o.Strict,
	}
}

// SerializerOptions configures serialization. Like ParserOptions it is a
// value type with copying With methods.
type SerializerOptions struct {
	// Separator is the field delimiter.
	// Default: DefaultSeparator
	Separator rune

	// AlwaysQuote quotes every field, not only the ones that need it.
	// Default: false
	AlwaysQuote bool

	// LineEnding terminates every record, the last one included.
	// Default: LF
	LineEnding LineEnding
}

// DefaultSerializerOptions returns the default serializer configuration.
func DefaultSerializerOptions() SerializerOptions {
	return SerializerOptions{
		Separator:  DefaultSeparator,
		LineEnding: LF,
	}
}

// WithSeparator returns a copy of o using sep as the field delimiter.
func (o SerializerOptions) WithSeparator(sep rune) SerializerOptions {
	o.Separator = sep
	return o
}

// WithAlwaysQuote returns a copy of o with unconditional quoting set.
func (o SerializerOptions) WithAlwaysQuote(always bool) SerializerOptions {
	o.AlwaysQuote = always
	return o
}

// WithLineEnding returns a copy of o terminating records with le.
func (o SerializerOptions) WithLineEnding(le LineEnding) SerializerOptions {
	o.LineEnding = le
	return o
}

// Validate checks if the serializer options are valid.
func (o SerializerOptions) Validate() error {
	if !validSeparator(o.Separator) {
		return separatorError(o.Separator)
	}
	if o.LineEnding != LF && o.LineEnding != CRLF {
		return &OptionsError{Field: "LineEnding", Message: fmt.Sprintf("unsupported line ending %q", string(o.LineEnding))}
	}
	return nil
}

// validSeparator reports whether r is a valid field separator.
func validSeparator(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

func separatorError(r rune) error {
	return &OptionsError{Field: "Separator", Message: fmt.Sprintf("%U cannot separate fields", r)}
}
