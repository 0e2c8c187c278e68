package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/shape-esv/pkg/esv"
)

const (
	formatJSON       = "json"
	formatJSONPretty = "json-pretty"
	formatYAML       = "yaml"
	formatText       = "text"
)

var outputFormats = []string{formatJSON, formatJSONPretty, formatYAML, formatText}

func formatDocument(doc *esv.Document, format string) (string, error) {
	switch format {
	case formatJSON, formatJSONPretty:
		data, err := doc.MarshalJSON()
		if err != nil {
			return "", errors.Wrap(err, "failed to serialize to JSON")
		}
		if format == formatJSONPretty {
			var buf bytes.Buffer
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return "", errors.Wrap(err, "failed to indent JSON")
			}
			data = buf.Bytes()
		}
		return string(data) + "\n", nil
	case formatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", errors.Wrap(err, "failed to serialize to YAML")
		}
		return string(data), nil
	case formatText:
		return renderText(doc), nil
	}
	return "", errors.Errorf("unknown output format %q (want one of %s)", format, strings.Join(outputFormats, ", "))
}

// renderText lists one field per line under "# Headers" and "# Record N"
// headings, with a blank line between blocks.
func renderText(doc *esv.Document) string {
	var sb strings.Builder
	if doc.HasHeaders() {
		sb.WriteString("# Headers\n")
		for _, h := range doc.Headers() {
			sb.WriteString(h)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	for i, r := range doc.Records() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "# Record %d\n", i+1)
		for _, f := range r.Fields() {
			sb.WriteString(f)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func codePoint(r rune) string {
	return fmt.Sprintf("%U", r)
}
