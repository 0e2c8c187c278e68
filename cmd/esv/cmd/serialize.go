package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/shapestone/shape-esv/pkg/esv"
)

const (
	fromJSON = "json"
	fromYAML = "yaml"
)

type serializeOptions struct {
	output      string
	separator   string
	alwaysQuote bool
	lineEnding  string
	from        string
}

func newSerializeCommand(root *rootOptions) *cobra.Command {
	o := &serializeOptions{}
	cmd := &cobra.Command{
		Use:   "serialize [input]",
		Short: "Serialize a JSON or YAML document to ESV",
		Long: `Read a document of the form {"headers": [...], "records": [[...]]}
as JSON (or YAML with --from yaml) and write it as ESV. "headers" is
optional; "records" is required.`,
		Example: `  esv serialize doc.json
  esv serialize --from yaml --line-ending crlf -o out.esv doc.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root, inputPath(args))
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&o.output, "output", "o", stdio, "output file (- for stdout)")
	fs.StringVarP(&o.separator, "separator", "s", "", "field separator: one character or U+XXXX (default 🔥)")
	fs.BoolVar(&o.alwaysQuote, "always-quote", false, "quote every field")
	fs.StringVar(&o.lineEnding, "line-ending", esv.LF.String(), "record terminator: lf or crlf")
	fs.StringVar(&o.from, "from", fromJSON, "input format: json or yaml")
	return cmd
}

func (o *serializeOptions) run(cmd *cobra.Command, root *rootOptions, path string) error {
	le, err := esv.ParseLineEnding(stringSetting(cmd, "line-ending", o.lineEnding, root.file.LineEnding))
	if err != nil {
		return err
	}
	if o.from != fromJSON && o.from != fromYAML {
		return errors.Errorf("unknown input format %q (want json or yaml)", o.from)
	}
	if o.separator == autoSeparator {
		return errors.New("--separator auto is only supported when reading ESV")
	}

	input, err := readInput(root.in, path)
	if err != nil {
		return err
	}
	doc, err := decodeDocument(input, o.from)
	if err != nil {
		return err
	}
	sep, err := root.separatorSetting(cmd, o.separator, "")
	if err != nil {
		return err
	}

	opts := esv.DefaultSerializerOptions().
		WithSeparator(sep).
		WithAlwaysQuote(boolSetting(cmd, "always-quote", o.alwaysQuote, root.file.AlwaysQuote)).
		WithLineEnding(le)
	klog.V(1).InfoS("Serializing document", "records", doc.RecordCount(), "hasHeaders", doc.HasHeaders(),
		"separator", string(opts.Separator), "alwaysQuote", opts.AlwaysQuote, "lineEnding", opts.LineEnding.String())

	content, err := esv.SerializeWithOptions(doc, opts)
	if err != nil {
		return err
	}
	return writeOutput(root.out, o.output, content)
}

func decodeDocument(input, from string) (*esv.Document, error) {
	doc := esv.NewDocument()
	if from == fromYAML {
		if strings.TrimSpace(input) == "" {
			return nil, errors.New("failed to parse YAML input: empty document")
		}
		if err := yaml.Unmarshal([]byte(input), doc); err != nil {
			return nil, errors.Wrap(err, "failed to parse YAML input")
		}
		return doc, nil
	}
	if err := doc.UnmarshalJSON([]byte(input)); err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON input")
	}
	return doc, nil
}
