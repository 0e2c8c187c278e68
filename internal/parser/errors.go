package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure. The set is closed.
type ErrorKind int

const (
	// KindUnclosedQuote: end of input inside a quoted field.
	KindUnclosedQuote ErrorKind = iota + 1
	// KindBareQuote: a double quote inside an unquoted field.
	KindBareQuote
	// KindMalformedQuote: a closing quote followed by something other than
	// a quote, the separator, a line break or end of input.
	KindMalformedQuote
	// KindFieldCount: a record whose field count differs from the first
	// record's, in strict mode.
	KindFieldCount
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnclosedQuote:
		return "unclosed quote"
	case KindBareQuote:
		return "bare quote"
	case KindMalformedQuote:
		return "malformed quote"
	case KindFieldCount:
		return "inconsistent field count"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel errors, one per kind. ErrQuote matches both quote placement kinds.
var (
	ErrUnclosedQuote  = errors.New("unclosed quoted field")
	ErrBareQuote      = errors.New("bare \" in non-quoted field")
	ErrMalformedQuote = errors.New("extraneous character after closing quote")
	ErrFieldCount     = errors.New("wrong number of fields")

	ErrQuote = errors.New("misplaced quote")
)

// Error is a positioned parse failure. Line and Column are 1-based and
// count scalar values, not bytes.
type Error struct {
	Kind   ErrorKind
	Line   int
	Column int

	// Char is the offending character for KindMalformedQuote.
	Char rune

	// Record is the zero-based index of the offending record, header
	// included, for KindFieldCount.
	Record   int
	Expected int
	Found    int
}

// Error returns a formatted error message with position information.
func (e *Error) Error() string {
	switch e.Kind {
	case KindMalformedQuote:
		return fmt.Sprintf("esv: parse error on line %d, column %d: %v (found %q)",
			e.Line, e.Column, e.Unwrap(), e.Char)
	case KindFieldCount:
		return fmt.Sprintf("esv: parse error on line %d, column %d: %v (expected %d, found %d)",
			e.Line, e.Column, e.Unwrap(), e.Expected, e.Found)
	default:
		return fmt.Sprintf("esv: parse error on line %d, column %d: %v", e.Line, e.Column, e.Unwrap())
	}
}

// Unwrap returns the sentinel for the error's kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindUnclosedQuote:
		return ErrUnclosedQuote
	case KindBareQuote:
		return ErrBareQuote
	case KindMalformedQuote:
		return ErrMalformedQuote
	case KindFieldCount:
		return ErrFieldCount
	default:
		return nil
	}
}

// Is reports whether target is ErrQuote and e is a quote placement error.
func (e *Error) Is(target error) bool {
	return target == ErrQuote && (e.Kind == KindBareQuote || e.Kind == KindMalformedQuote)
}

// NewError creates a structural error at the given position.
func NewError(kind ErrorKind, line, column int) *Error {
	return &Error{Kind: kind, Line: line, Column: column}
}

// NewFieldCountError creates a KindFieldCount error for the record starting on line.
func NewFieldCountError(line, record, expected, found int) *Error {
	return &Error{
		Kind:     KindFieldCount,
		Line:     line,
		Column:   1,
		Record:   record,
		Expected: expected,
		Found:    found,
	}
}
