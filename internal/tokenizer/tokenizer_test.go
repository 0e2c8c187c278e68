package tokenizer

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

type tokenWant struct {
	kind  string
	value string
}

func TestTokenTypes(t *testing.T) {
	kinds := []string{TokenSeparator, TokenDQuote, TokenNewline, TokenText}
	seen := make(map[string]bool)
	for _, k := range kinds {
		if k == "" {
			t.Fatal("empty token kind")
		}
		if seen[k] {
			t.Errorf("duplicate token kind %q", k)
		}
		seen[k] = true
	}
}

func TestNewTokenizer_BasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenWant
	}{
		{
			name:     "single separator",
			input:    "🔥",
			expected: []tokenWant{{TokenSeparator, "🔥"}},
		},
		{
			name:     "single text run",
			input:    "abc",
			expected: []tokenWant{{TokenText, "abc"}},
		},
		{
			name:  "simple record",
			input: "a🔥b🔥c",
			expected: []tokenWant{
				{TokenText, "a"},
				{TokenSeparator, "🔥"},
				{TokenText, "b"},
				{TokenSeparator, "🔥"},
				{TokenText, "c"},
			},
		},
		{
			name:  "LF, CRLF and lone CR",
			input: "a\nb\r\nc\rd",
			expected: []tokenWant{
				{TokenText, "a"},
				{TokenNewline, "\n"},
				{TokenText, "b"},
				{TokenNewline, "\r\n"},
				{TokenText, "c"},
				{TokenNewline, "\r"},
				{TokenText, "d"},
			},
		},
		{
			name:  "quoted field with escaped quote",
			input: `"a""b"`,
			expected: []tokenWant{
				{TokenDQuote, `"`},
				{TokenText, "a"},
				{TokenDQuote, `"`},
				{TokenDQuote, `"`},
				{TokenText, "b"},
				{TokenDQuote, `"`},
			},
		},
		{
			name:  "other emoji is text",
			input: "a😀b🔥c",
			expected: []tokenWant{
				{TokenText, "a😀b"},
				{TokenSeparator, "🔥"},
				{TokenText, "c"},
			},
		},
		{
			name:  "comma is text under the default separator",
			input: "a,b",
			expected: []tokenWant{
				{TokenText, "a,b"},
			},
		},
		{
			name:  "unicode text",
			input: "héllo🔥日本語",
			expected: []tokenWant{
				{TokenText, "héllo"},
				{TokenSeparator, "🔥"},
				{TokenText, "日本語"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer()
			tok.Initialize(tt.input)
			assertTokens(t, &tok, tt.expected)
		})
	}
}

func TestNewTokenizerWithOptions_CustomSeparator(t *testing.T) {
	tests := []struct {
		name     string
		sep      rune
		input    string
		expected []tokenWant
	}{
		{
			name:  "emoji separator",
			sep:   '😀',
			input: "a😀b🔥c",
			expected: []tokenWant{
				{TokenText, "a"},
				{TokenSeparator, "😀"},
				{TokenText, "b🔥c"},
			},
		},
		{
			name:  "ascii separator",
			sep:   ';',
			input: "a;b\n",
			expected: []tokenWant{
				{TokenText, "a"},
				{TokenSeparator, ";"},
				{TokenText, "b"},
				{TokenNewline, "\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizerWithOptions(Options{Separator: tt.sep})
			tok.Initialize(tt.input)
			assertTokens(t, &tok, tt.expected)
		})
	}
}

func TestTokenizer_FromStream(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString(`"field1"🔥"field2"🔥"field3"`)
		sb.WriteString("\n")
	}

	stream := tokenizer.NewStreamFromReader(strings.NewReader(sb.String()))
	tok := NewTokenizerWithStreamAndOptions(stream, DefaultOptions())

	count := 0
	for {
		_, ok := tok.NextToken()
		if !ok {
			if !stream.IsEos() {
				t.Fatalf("tokenization stopped after %d tokens before end of stream", count)
			}
			break
		}
		count++
	}

	// " field " 🔥 " field " 🔥 " field " \n = 12 tokens per row
	if want := 100 * 12; count != want {
		t.Errorf("got %d tokens, want %d", count, want)
	}
}

func assertTokens(t *testing.T, tok *tokenizer.Tokenizer, expected []tokenWant) {
	t.Helper()
	for i, exp := range expected {
		token, ok := tok.NextToken()
		if !ok {
			t.Fatalf("token %d: expected %s %q, got none", i, exp.kind, exp.value)
		}
		if token.Kind() != exp.kind {
			t.Errorf("token %d: kind = %s, want %s (value %q)", i, token.Kind(), exp.kind, token.ValueString())
		}
		if token.ValueString() != exp.value {
			t.Errorf("token %d: value = %q, want %q", i, token.ValueString(), exp.value)
		}
	}
	if token, ok := tok.NextToken(); ok {
		t.Errorf("unexpected extra token %s %q", token.Kind(), token.ValueString())
	}
}
