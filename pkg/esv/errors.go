package esv

import (
	"github.com/shapestone/shape-esv/internal/parser"
)

// ParseError is a positioned structural failure. Line and Column are
// 1-based and count scalar values. Record, Expected and Found are set for
// KindFieldCount only; Char is set for KindMalformedQuote only.
//
//	var pe *esv.ParseError
//	if errors.As(err, &pe) {
//	    fmt.Println(pe.Kind, pe.Line, pe.Column)
//	}
type ParseError = parser.Error

// ErrorKind classifies a ParseError. The set is closed.
type ErrorKind = parser.ErrorKind

// Error kinds.
const (
	KindUnclosedQuote  = parser.KindUnclosedQuote
	KindBareQuote      = parser.KindBareQuote
	KindMalformedQuote = parser.KindMalformedQuote
	KindFieldCount     = parser.KindFieldCount
)

// Sentinels matched by errors.Is against any ParseError of the same kind.
var (
	// ErrUnclosedQuote indicates end of input inside a quoted field.
	ErrUnclosedQuote = parser.ErrUnclosedQuote
	// ErrBareQuote indicates a quote inside an unquoted field.
	ErrBareQuote = parser.ErrBareQuote
	// ErrMalformedQuote indicates a closing quote followed by a stray character.
	ErrMalformedQuote = parser.ErrMalformedQuote
	// ErrFieldCount indicates a record has the wrong number of fields.
	ErrFieldCount = parser.ErrFieldCount
	// ErrQuote matches both ErrBareQuote and ErrMalformedQuote.
	ErrQuote = parser.ErrQuote
)

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "esv: invalid " + e.Field + ": " + e.Message
}
