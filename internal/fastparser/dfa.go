// Package fastparser validates ESV input with a table-driven DFA.
//
// The validator walks the input one scalar value at a time and reports the
// same errors, at the same positions, as internal/parser, but it never
// materializes a field. It is used where only well-formedness and shape are
// wanted: esv.Validate and the validate command.
//
// Scalar values below utf8.RuneSelf are classified through a 128-entry
// table built per separator; everything else is decoded and compared to the
// separator directly.
package fastparser

import (
	"unicode/utf8"

	"github.com/shapestone/shape-esv/internal/parser"
)

// charClass represents character classes for the DFA
type charClass uint8

const (
	classQuote charClass = iota // "
	classSep                    // the configured separator
	classCR                     // \r
	classLF                     // \n
	classOther                  // everything else
	numCharClasses
)

// dfaState mirrors the parser's state enum.
type dfaState uint8

const (
	stateFieldStart dfaState = iota
	stateUnquoted
	stateQuoted
	stateQuoteInQuoted
	numStates
)

// dfaAction represents actions to perform during state transitions
type dfaAction uint8

const (
	actionNone dfaAction = iota
	actionOpenQuote
	actionEndField
	actionEndRecord
	actionBareQuote
	actionMalformedQuote
)

type transition struct {
	nextState dfaState
	action    dfaAction
}

// dfaTransitions is [currentState][charClass] -> (nextState, action).
var dfaTransitions [numStates][numCharClasses]transition

func init() {
	t := &dfaTransitions

	t[stateFieldStart][classQuote] = transition{stateQuoted, actionOpenQuote}
	t[stateFieldStart][classSep] = transition{stateFieldStart, actionEndField}
	t[stateFieldStart][classCR] = transition{stateFieldStart, actionEndRecord}
	t[stateFieldStart][classLF] = transition{stateFieldStart, actionEndRecord}
	t[stateFieldStart][classOther] = transition{stateUnquoted, actionNone}

	t[stateUnquoted][classQuote] = transition{stateUnquoted, actionBareQuote}
	t[stateUnquoted][classSep] = transition{stateFieldStart, actionEndField}
	t[stateUnquoted][classCR] = transition{stateFieldStart, actionEndRecord}
	t[stateUnquoted][classLF] = transition{stateFieldStart, actionEndRecord}
	t[stateUnquoted][classOther] = transition{stateUnquoted, actionNone}

	// Separators and line breaks are content inside quotes.
	t[stateQuoted][classQuote] = transition{stateQuoteInQuoted, actionNone}
	t[stateQuoted][classSep] = transition{stateQuoted, actionNone}
	t[stateQuoted][classCR] = transition{stateQuoted, actionNone}
	t[stateQuoted][classLF] = transition{stateQuoted, actionNone}
	t[stateQuoted][classOther] = transition{stateQuoted, actionNone}

	t[stateQuoteInQuoted][classQuote] = transition{stateQuoted, actionNone}
	t[stateQuoteInQuoted][classSep] = transition{stateFieldStart, actionEndField}
	t[stateQuoteInQuoted][classCR] = transition{stateFieldStart, actionEndRecord}
	t[stateQuoteInQuoted][classLF] = transition{stateFieldStart, actionEndRecord}
	t[stateQuoteInQuoted][classOther] = transition{stateQuoteInQuoted, actionMalformedQuote}
}

// Summary describes a well-formed input.
type Summary struct {
	// Records is the number of data records, header excluded.
	Records int
	// Fields is the first record's field count, header included.
	Fields int
	// Uniform reports whether every record has Fields fields.
	Uniform bool
	// HasHeaders is set when a header record was lifted.
	HasHeaders bool
}

type validator struct {
	opts    parser.Options
	classes [utf8.RuneSelf]charClass

	state  dfaState
	line   int
	column int
	prevCR bool

	quoteLine   int
	quoteColumn int

	fields     int
	records    int
	recordLine int
	dirty      bool

	first   int
	uniform bool
}

// Validate checks data against the ESV grammar without building records.
// The returned error, if any, is a *parser.Error identical to the one
// internal/parser reports for the same input and options.
func Validate(data []byte, opts parser.Options) (Summary, error) {
	v := newValidator(opts)
	if err := v.run(data); err != nil {
		return Summary{}, err
	}

	s := Summary{Records: v.records, Fields: v.first, Uniform: v.uniform}
	if opts.Headers && s.Records > 0 {
		s.Records--
		s.HasHeaders = true
	}
	return s, nil
}

func newValidator(opts parser.Options) *validator {
	v := &validator{
		opts:       opts,
		line:       1,
		column:     1,
		recordLine: 1,
		uniform:    true,
	}
	for i := range v.classes {
		v.classes[i] = classOther
	}
	v.classes['"'] = classQuote
	v.classes['\r'] = classCR
	v.classes['\n'] = classLF
	if opts.Separator < utf8.RuneSelf {
		v.classes[opts.Separator] = classSep
	}
	return v
}

func (v *validator) run(data []byte) error {
	pos := 0
	for pos < len(data) {
		r, size := rune(data[pos]), 1
		var class charClass
		if r < utf8.RuneSelf {
			class = v.classes[r]
		} else {
			r, size = utf8.DecodeRune(data[pos:])
			class = classOther
			if r == v.opts.Separator {
				class = classSep
			}
		}

		line, column := v.line, v.column
		v.advance(r)
		v.dirty = true
		pos += size

		trans := dfaTransitions[v.state][class]
		switch trans.action {
		case actionOpenQuote:
			v.quoteLine, v.quoteColumn = line, column
		case actionEndField:
			v.fields++
		case actionEndRecord:
			// CRLF outside quotes is a single line break.
			if r == '\r' && pos < len(data) && data[pos] == '\n' {
				v.advance('\n')
				pos++
			}
			if err := v.endRecord(); err != nil {
				return err
			}
		case actionBareQuote:
			return parser.NewError(parser.KindBareQuote, line, column)
		case actionMalformedQuote:
			e := parser.NewError(parser.KindMalformedQuote, line, column)
			e.Char = r
			return e
		}
		v.state = trans.nextState
	}

	if v.state == stateQuoted {
		return parser.NewError(parser.KindUnclosedQuote, v.quoteLine, v.quoteColumn)
	}
	if !v.dirty {
		return nil
	}
	return v.endRecord()
}

// advance moves the position past r. The LF of a CRLF pair does not start
// another line.
func (v *validator) advance(r rune) {
	switch {
	case r == '\n' && v.prevCR:
		v.prevCR = false
	case r == '\n' || r == '\r':
		v.line++
		v.column = 1
		v.prevCR = r == '\r'
	default:
		v.column++
		v.prevCR = false
	}
}

func (v *validator) endRecord() error {
	n := v.fields + 1
	if v.records == 0 {
		v.first = n
	} else if n != v.first {
		if v.opts.Strict {
			return parser.NewFieldCountError(v.recordLine, v.records, v.first, n)
		}
		v.uniform = false
	}
	v.records++
	v.fields = 0
	v.dirty = false
	v.recordLine = v.line
	return nil
}
