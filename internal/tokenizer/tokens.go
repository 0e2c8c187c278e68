// Package tokenizer provides ESV tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for ESV format.
// These correspond to the terminals of the ESV grammar.
//
// The tokenizer emits context-free tokens. Whether a separator or a line
// break is structural or literal depends on quoting, which is decided by
// the parser's state machine.
const (
	// Structural tokens
	TokenSeparator = "Separator" // the configured separator scalar value
	TokenDQuote    = "DQuote"    // "
	TokenNewline   = "Newline"   // \r\n, \n or a lone \r

	// Text run: one or more scalar values that are none of the above
	TokenText = "Text"
)
