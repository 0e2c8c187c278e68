package esv

import (
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Serializer writes Documents as ESV text with a fixed configuration.
// Serialization cannot fail once the options have been validated.
type Serializer struct {
	opts SerializerOptions
}

// NewSerializer creates a Serializer, validating opts.
func NewSerializer(opts SerializerOptions) (*Serializer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Serializer{opts: opts}, nil
}

// Options returns the serializer's configuration.
func (s *Serializer) Options() SerializerOptions {
	return s.opts
}

// Serialize renders doc. The header, when present, is the first line. Every
// record, the last included, is followed by the line ending; a document with
// no header and no records renders as "".
//
// Example:
//
//	doc := esv.NewDocument().SetHeaders([]string{"name", "note"}).
//		AddRecord([]string{"Alice", `says "hi"`})
//	// name🔥note\nAlice🔥"says ""hi"""\n
func (s *Serializer) Serialize(doc *Document) string {
	if doc == nil {
		return ""
	}
	var sb strings.Builder
	if doc.hasHeaders {
		s.writeRecord(&sb, doc.headers)
	}
	for _, r := range doc.records {
		s.writeRecord(&sb, r)
	}
	return sb.String()
}

// SerializeRecords renders records with no header.
func (s *Serializer) SerializeRecords(records [][]string) string {
	var sb strings.Builder
	for _, r := range records {
		s.writeRecord(&sb, r)
	}
	return sb.String()
}

// writeRecord writes one record and its line ending.
func (s *Serializer) writeRecord(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteRune(s.opts.Separator)
		}
		s.writeField(sb, field)
	}
	sb.WriteString(string(s.opts.LineEnding))
}

// writeField writes value, quoted when needed. Quoting doubles every quote
// and escapes nothing else.
func (s *Serializer) writeField(sb *strings.Builder, value string) {
	if !s.needsQuoting(value) {
		sb.WriteString(value)
		return
	}
	sb.WriteByte('"')
	sb.WriteString(strings.ReplaceAll(value, `"`, `""`))
	sb.WriteByte('"')
}

func (s *Serializer) needsQuoting(value string) bool {
	return s.opts.AlwaysQuote ||
		strings.ContainsRune(value, s.opts.Separator) ||
		strings.ContainsAny(value, "\"\r\n")
}

var defaultSerializer = &Serializer{opts: DefaultSerializerOptions()}

// Serialize renders doc with the default options.
func Serialize(doc *Document) string {
	return defaultSerializer.Serialize(doc)
}

// SerializeWithOptions renders doc with custom options. The error is
// non-nil only for invalid options.
func SerializeWithOptions(doc *Document, opts SerializerOptions) (string, error) {
	s, err := NewSerializer(opts)
	if err != nil {
		return "", err
	}
	return s.Serialize(doc), nil
}

// SerializeRecords renders records with the default options and no header.
func SerializeRecords(records [][]string) string {
	return defaultSerializer.SerializeRecords(records)
}

// SerializeWithHeaders renders headers followed by records with the
// default options.
func SerializeWithHeaders(headers []string, records [][]string) string {
	var sb strings.Builder
	defaultSerializer.writeRecord(&sb, headers)
	for _, r := range records {
		defaultSerializer.writeRecord(&sb, r)
	}
	return sb.String()
}

// Render converts an AST node, shaped like Document.ToAST output, to ESV
// bytes with the default options. Nil literals render as empty fields and
// non-string literals with their %v form.
//
// Example:
//
//	doc, _ := esv.Parse("name🔥age\nAlice🔥30")
//	out, _ := esv.Render(doc.ToAST())
//	// out: name🔥age\nAlice🔥30\n
func Render(node ast.SchemaNode) ([]byte, error) {
	return render(node, defaultSerializer)
}

// RenderWithOptions converts an AST node to ESV bytes with custom options.
func RenderWithOptions(node ast.SchemaNode, opts SerializerOptions) ([]byte, error) {
	s, err := NewSerializer(opts)
	if err != nil {
		return nil, err
	}
	return render(node, s)
}

func render(node ast.SchemaNode, s *Serializer) ([]byte, error) {
	if node == nil {
		return []byte{}, nil
	}
	rows, err := rowsFromAST(node, true)
	if err != nil {
		return nil, err
	}
	return []byte(s.SerializeRecords(rows)), nil
}
