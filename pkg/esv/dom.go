package esv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Document is a parsed or hand-built ESV table: an optional header record
// and an ordered list of data records. All setter methods return *Document
// to enable method chaining.
//
// Header presence is tracked apart from header content: a document whose
// header was set to an empty slice has headers, with zero fields.
//
//	doc := esv.NewDocument().
//		SetHeaders([]string{"name", "age"}).
//		AddRecord([]string{"Alice", "30"}).
//		AddRecord([]string{"Bob", "25"})
type Document struct {
	headers    []string
	hasHeaders bool
	records    [][]string
}

// Record is a single data row with access by index or by header name.
type Record struct {
	fields  []string
	headers []string
}

// NewDocument creates a new empty Document without headers.
func NewDocument() *Document {
	return &Document{
		records: make([][]string, 0),
	}
}

// SetHeaders sets the header record. The slice is copied.
func (d *Document) SetHeaders(headers []string) *Document {
	d.headers = copyFields(headers)
	d.hasHeaders = true
	return d
}

// ClearHeaders removes the header record.
func (d *Document) ClearHeaders() *Document {
	d.headers = nil
	d.hasHeaders = false
	return d
}

// AddRecord appends a data record. The slice is copied.
func (d *Document) AddRecord(fields []string) *Document {
	d.records = append(d.records, copyFields(fields))
	return d
}

// HasHeaders reports whether a header record is present.
func (d *Document) HasHeaders() bool {
	return d.hasHeaders
}

// Headers returns a copy of the header record, or nil when absent.
func (d *Document) Headers() []string {
	if !d.hasHeaders {
		return nil
	}
	return copyFields(d.headers)
}

// Records returns all data records.
func (d *Document) Records() []Record {
	records := make([]Record, len(d.records))
	for i, fields := range d.records {
		records[i] = Record{fields: fields, headers: d.headers}
	}
	return records
}

// Rows returns a copy of the data records as plain slices.
func (d *Document) Rows() [][]string {
	rows := make([][]string, len(d.records))
	for i, fields := range d.records {
		rows[i] = copyFields(fields)
	}
	return rows
}

// RecordCount returns the number of data records, header excluded.
func (d *Document) RecordCount() int {
	return len(d.records)
}

// IsEmpty reports whether the document has no data records.
func (d *Document) IsEmpty() bool {
	return len(d.records) == 0
}

// GetRecord returns the data record at index (0 = first record after the
// header). Returns (Record{}, false) if the index is out of bounds.
func (d *Document) GetRecord(index int) (Record, bool) {
	if index < 0 || index >= len(d.records) {
		return Record{}, false
	}
	return Record{fields: d.records[index], headers: d.headers}, true
}

// FieldCount returns the field count shared by the header and every
// record. The header's count is the reference when present, else the first
// record's. ok is false when the document has neither, or when any record
// disagrees; use Record.Len for per-record counts then.
func (d *Document) FieldCount() (n int, ok bool) {
	switch {
	case d.hasHeaders:
		n = len(d.headers)
	case len(d.records) > 0:
		n = len(d.records[0])
	default:
		return 0, false
	}
	for _, r := range d.records {
		if len(r) != n {
			return 0, false
		}
	}
	return n, true
}

// Equal reports whether d and other hold the same headers and records.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.hasHeaders != other.hasHeaders || !equalFields(d.headers, other.headers) {
		return false
	}
	if len(d.records) != len(other.records) {
		return false
	}
	for i := range d.records {
		if !equalFields(d.records[i], other.records[i]) {
			return false
		}
	}
	return true
}

// ESV renders the document with the default serializer options.
func (d *Document) ESV() string {
	return Serialize(d)
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	n, ok := d.FieldCount()
	if !ok {
		return fmt.Sprintf("esv.Document{headers: %v, records: %d, fields: ragged}", d.hasHeaders, len(d.records))
	}
	return fmt.Sprintf("esv.Document{headers: %v, records: %d, fields: %d}", d.hasHeaders, len(d.records), n)
}

// Get gets the field value at index. Returns ("", false) if out of bounds.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName gets the field under the named header column.
// Returns ("", false) if the name is unknown or no headers are set.
func (r Record) GetByName(name string) (string, bool) {
	for i, header := range r.headers {
		if header == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Fields returns a copy of the record's fields.
func (r Record) Fields() []string {
	return copyFields(r.fields)
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

func copyFields(fields []string) []string {
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ToAST converts the Document to an AST ArrayDataNode of records, each an
// ArrayDataNode of string LiteralNodes. The header, when present, is the
// first element.
func (d *Document) ToAST() *ast.ArrayDataNode {
	all := make([]ast.SchemaNode, 0, len(d.records)+1)
	if d.hasHeaders {
		all = append(all, recordNode(d.headers))
	}
	for _, r := range d.records {
		all = append(all, recordNode(r))
	}
	return ast.NewArrayDataNode(all, ast.ZeroPosition())
}

func recordNode(fields []string) *ast.ArrayDataNode {
	nodes := make([]ast.SchemaNode, len(fields))
	for i, f := range fields {
		nodes[i] = ast.NewLiteralNode(f, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(nodes, ast.ZeroPosition())
}

// FromAST creates a Document from an AST built like ToAST's output. With
// headers set, the first record becomes the header, as in header-mode
// parsing. Every field must be a string literal.
func FromAST(node ast.SchemaNode, headers bool) (*Document, error) {
	rows, err := rowsFromAST(node, false)
	if err != nil {
		return nil, err
	}
	return documentFromRows(rows, headers), nil
}

func documentFromRows(rows [][]string, headers bool) *Document {
	doc := &Document{records: rows}
	if headers && len(rows) > 0 {
		doc.headers = rows[0]
		doc.hasHeaders = true
		doc.records = rows[1:]
	}
	return doc
}

// rowsFromAST walks a file node. When lenient is set, nil literals render
// empty and non-string literals render with %v.
func rowsFromAST(node ast.SchemaNode, lenient bool) ([][]string, error) {
	file, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	rows := make([][]string, 0, file.Len())
	for _, elem := range file.Elements() {
		rec, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		fields := make([]string, 0, rec.Len())
		for _, fieldNode := range rec.Elements() {
			lit, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}
			switch v := lit.Value().(type) {
			case string:
				fields = append(fields, v)
			case nil:
				if !lenient {
					return nil, fmt.Errorf("expected field value to be string, got nil")
				}
				fields = append(fields, "")
			default:
				if !lenient {
					return nil, fmt.Errorf("expected field value to be string, got %T", v)
				}
				fields = append(fields, fmt.Sprintf("%v", v))
			}
		}
		rows = append(rows, fields)
	}
	return rows, nil
}
