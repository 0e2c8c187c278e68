package esv

import (
	"fmt"
	"reflect"

	"github.com/jszwec/csvutil"
)

// Marshal returns the ESV encoding of v, which must be a slice or array of
// structs (or pointers to structs). The first line is the header built
// from the struct fields; each element becomes one record.
//
// Field names and options come from the "csv" struct tag, as in
// github.com/jszwec/csvutil:
//
//	type Person struct {
//	    Name string `csv:"name"`
//	    Age  int    `csv:"age,omitempty"`
//	    Skip string `csv:"-"`
//	}
//	out, err := esv.Marshal([]Person{{Name: "Alice", Age: 30}})
//	// name🔥age\nAlice🔥30\n
//
// The header is written even for an empty slice.
func Marshal(v interface{}) ([]byte, error) {
	return MarshalWithOptions(v, DefaultSerializerOptions())
}

// MarshalWithOptions is Marshal with custom serializer options.
func MarshalWithOptions(v interface{}, opts SerializerOptions) ([]byte, error) {
	s, err := NewSerializer(opts)
	if err != nil {
		return nil, err
	}
	doc, err := documentOf(v)
	if err != nil {
		return nil, err
	}
	return []byte(s.Serialize(doc)), nil
}

// documentOf encodes a struct slice into a Document.
func documentOf(v interface{}) (*Document, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("esv: Marshal expects a slice or array of structs, got %T", v)
	}

	elem := val.Type().Elem()
	for elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("esv: Marshal expects a slice or array of structs, got %T", v)
	}

	header, err := csvutil.Header(reflect.New(elem).Interface(), "")
	if err != nil {
		return nil, err
	}

	w := &documentWriter{doc: NewDocument()}
	if val.Len() > 0 {
		if err := csvutil.NewEncoder(w).Encode(val.Interface()); err != nil {
			return nil, err
		}
	}
	w.doc.SetHeaders(header)
	return w.doc, nil
}

// documentWriter adapts a Document to csvutil.Writer. The encoder writes
// the header first; it is dropped here because documentOf sets it from
// csvutil.Header so that empty input still gets one.
type documentWriter struct {
	doc         *Document
	wroteHeader bool
}

// Write copies record: the encoder reuses its slice between calls.
func (w *documentWriter) Write(record []string) error {
	if !w.wroteHeader {
		w.wroteHeader = true
		return nil
	}
	w.doc.AddRecord(record)
	return nil
}
