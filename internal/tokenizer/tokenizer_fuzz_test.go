//go:build go1.18
// +build go1.18

package tokenizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzTokenizer checks that tokens cover the whole input.
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./internal/tokenizer
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"🔥",
		"\n",
		"\r\n",
		"\r",
		"\"",
		"\"\"",
		"a🔥b🔥c",
		"\"quoted\"",
		"\"with🔥separator\"",
		"\"with\"\"quote\"",
		"a\nb\r\nc",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip()
		}
		tok := NewTokenizer()
		tok.Initialize(input)

		var sb strings.Builder
		for {
			token, ok := tok.NextToken()
			if !ok {
				break
			}
			sb.WriteString(token.ValueString())
		}
		if sb.String() != input {
			t.Errorf("tokens reassemble to %q, want %q", sb.String(), input)
		}
	})
}
