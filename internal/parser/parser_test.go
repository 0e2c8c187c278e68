package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/shapestone/shape-esv/internal/parser"
	"github.com/shapestone/shape-esv/internal/parsertest"
)

func TestParse_Conformance(t *testing.T) {
	for _, tc := range parsertest.Cases() {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := parser.NewParserWithOptions(tc.Input, tc.Opts).Parse()

			if tc.Err != nil {
				if got != nil {
					t.Errorf("Parse() returned a result alongside an error: %+v", got)
				}
				var pe *parser.Error
				if !errors.As(err, &pe) {
					t.Fatalf("Parse() error = %v, want *parser.Error", err)
				}
				if diff := cmp.Diff(tc.Err, pe); diff != "" {
					t.Errorf("Parse() error mismatch (-want +got):\n%s", diff)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.Want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_DefaultOptions(t *testing.T) {
	got, err := parser.NewParser("a🔥b").Parse()
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	want := [][]string{{"a", "b"}}
	if diff := cmp.Diff(want, got.Records); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
	if got.HasHeaders {
		t.Error("default options should not lift headers")
	}
}

func TestParse_TrailingLineBreakEquivalence(t *testing.T) {
	a, err := parser.NewParser("a🔥b\nc🔥d").Parse()
	if err != nil {
		t.Fatal(err)
	}
	b, err := parser.NewParser("a🔥b\nc🔥d\n").Parse()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("trailing line break changed the result (-without +with):\n%s", diff)
	}
}

func TestParse_RecordsOwnTheirStrings(t *testing.T) {
	got, err := parser.NewParser("ab🔥cd\nef").Parse()
	if err != nil {
		t.Fatal(err)
	}
	got.Records[0][0] = "changed"
	if got.Records[1][0] != "ef" {
		t.Errorf("records share storage: %q", got.Records[1][0])
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind parser.ErrorKind
		want string
	}{
		{parser.KindUnclosedQuote, "unclosed quote"},
		{parser.KindBareQuote, "bare quote"},
		{parser.KindMalformedQuote, "malformed quote"},
		{parser.KindFieldCount, "inconsistent field count"},
		{parser.ErrorKind(42), "ErrorKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *parser.Error
		want string
	}{
		{
			name: "unclosed quote",
			err:  parser.NewError(parser.KindUnclosedQuote, 3, 7),
			want: "esv: parse error on line 3, column 7: unclosed quoted field",
		},
		{
			name: "malformed quote names the character",
			err:  &parser.Error{Kind: parser.KindMalformedQuote, Line: 1, Column: 8, Char: 'x'},
			want: `esv: parse error on line 1, column 8: extraneous character after closing quote (found 'x')`,
		},
		{
			name: "field count names both counts",
			err:  parser.NewFieldCountError(2, 1, 2, 3),
			want: "esv: parse error on line 2, column 1: wrong number of fields (expected 2, found 3)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		kind     parser.ErrorKind
		sentinel error
		quote    bool
	}{
		{parser.KindUnclosedQuote, parser.ErrUnclosedQuote, false},
		{parser.KindBareQuote, parser.ErrBareQuote, true},
		{parser.KindMalformedQuote, parser.ErrMalformedQuote, true},
		{parser.KindFieldCount, parser.ErrFieldCount, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := error(parser.NewError(tt.kind, 1, 1))
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
			if got := errors.Is(err, parser.ErrQuote); got != tt.quote {
				t.Errorf("errors.Is(%v, ErrQuote) = %v, want %v", err, got, tt.quote)
			}
		})
	}
}
