package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// DefaultSeparator is U+1F525 FIRE.
const DefaultSeparator = '\U0001F525'

// Options configures the tokenizer behavior.
type Options struct {
	// Separator is the field delimiter. Default: '🔥'
	Separator rune
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Separator: DefaultSeparator,
	}
}

// NewTokenizer creates a tokenizer for ESV format with the default separator.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer with custom options.
//
// Matchers are tried in order of specificity:
//  1. Line breaks (CRLF before LF and CR so the longer sequence wins)
//  2. Separator
//  3. Double quote
//  4. Text runs (everything else)
//
// Every scalar value is covered by exactly one matcher, so the tokenizer
// only stops at end of input.
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, "\r\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\r"),

		tokenizer.StringMatcherFunc(TokenSeparator, string(opts.Separator)),
		tokenizer.StringMatcherFunc(TokenDQuote, `"`),

		TextMatcherWithSeparator(opts.Separator),
	)
}

// NewTokenizerWithStreamAndOptions creates a tokenizer from a stream with custom options.
func NewTokenizerWithStreamAndOptions(stream tokenizer.Stream, opts Options) tokenizer.Tokenizer {
	tok := NewTokenizerWithOptions(opts)
	tok.InitializeFromStream(stream)
	return tok
}

// TextMatcherWithSeparator creates a matcher for text runs.
// Matches runs of scalar values that are not the separator, quote, CR, or LF.
//
// Grammar:
//
//	Text = TextData+ ;
//	TextData = <any scalar value except separator, quote, CR, LF> ;
func TextMatcherWithSeparator(sep rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		// ASCII separators can use the ByteStream path; an emoji separator
		// spans several bytes and needs rune decoding.
		if sep < 128 {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return textMatcherByte(byteStream, byte(sep))
			}
		}
		return textMatcherRune(stream, sep)
	}
}

func textMatcherByte(stream tokenizer.ByteStream, sep byte) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok {
			break
		}
		if b == sep || b == '"' || b == '\n' || b == '\r' {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenText, []rune(string(value)))
}

func textMatcherRune(stream tokenizer.Stream, sep rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		if r == sep || r == '"' || r == '\n' || r == '\r' {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenText, value)
}
