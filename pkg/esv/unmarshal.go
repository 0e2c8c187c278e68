package esv

import (
	"io"

	"github.com/jszwec/csvutil"
)

// Unmarshal parses header-mode ESV data and stores the records in the
// slice or array pointed to by v. Header names are matched against the
// "csv" struct tags the way github.com/jszwec/csvutil matches them; columns
// without a matching field are ignored.
//
// Data is parsed strictly, so a ragged record fails with a positioned
// *ParseError before any decoding happens. Empty input leaves v untouched.
//
//	type Person struct {
//	    Name string `csv:"name"`
//	    Age  int    `csv:"age"`
//	}
//	var people []Person
//	err := esv.Unmarshal([]byte("name🔥age\nAlice🔥30"), &people)
func Unmarshal(data []byte, v interface{}) error {
	return UnmarshalWithOptions(data, v, DefaultParserOptions())
}

// UnmarshalWithOptions is Unmarshal with a custom separator. Header and
// strict mode are always on.
func UnmarshalWithOptions(data []byte, v interface{}, opts ParserOptions) error {
	opts = opts.WithHeaders(true).WithStrict(true)
	doc, err := ParseWithOptions(string(data), opts)
	if err != nil {
		return err
	}
	if !doc.HasHeaders() {
		return nil
	}
	return doc.Decode(v)
}

// Decode stores the document's records in the struct slice or array
// pointed to by v, mapping columns by header name.
func (d *Document) Decode(v interface{}) error {
	dec, err := csvutil.NewDecoder(&documentReader{doc: d})
	if err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// documentReader adapts a Document to csvutil.Reader. It yields the header
// first, then each record, then io.EOF.
type documentReader struct {
	doc  *Document
	next int
}

func (r *documentReader) Read() ([]string, error) {
	if r.next == 0 {
		r.next++
		if r.doc.hasHeaders {
			return copyFields(r.doc.headers), nil
		}
	}
	i := r.next - 1
	if i >= len(r.doc.records) {
		return nil, io.EOF
	}
	r.next++
	return copyFields(r.doc.records[i]), nil
}
