package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/shapestone/shape-esv/pkg/esv"
)

type parseOptions struct {
	output    string
	headers   bool
	separator string
	strict    bool
	format    string
}

func newParseCommand(root *rootOptions) *cobra.Command {
	o := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [input]",
		Short: "Parse ESV and print it as JSON, YAML or text",
		Long: `Parse ESV input (a file, or stdin when omitted or "-") and print the
document as JSON, pretty JSON, YAML or plain text.`,
		Example: `  esv parse data.esv
  esv parse -H -f json-pretty data.esv
  cat data.esv | esv parse --separator auto -f yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root, inputPath(args))
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&o.output, "output", "o", stdio, "output file (- for stdout)")
	fs.BoolVarP(&o.headers, "headers", "H", false, "treat the first record as headers")
	fs.StringVarP(&o.separator, "separator", "s", "", `field separator: one character, U+XXXX, or "auto" (default 🔥)`)
	fs.BoolVar(&o.strict, "strict", false, "require every record to have the same number of fields")
	fs.StringVarP(&o.format, "format", "f", formatJSON, "output format: json, json-pretty, yaml or text")
	return cmd
}

func (o *parseOptions) run(cmd *cobra.Command, root *rootOptions, path string) error {
	format := stringSetting(cmd, "format", o.format, root.file.Format)

	input, err := readInput(root.in, path)
	if err != nil {
		return err
	}
	sep, err := root.separatorSetting(cmd, o.separator, input)
	if err != nil {
		return err
	}
	opts := esv.DefaultParserOptions().
		WithSeparator(sep).
		WithHeaders(boolSetting(cmd, "headers", o.headers, root.file.Headers)).
		WithStrict(boolSetting(cmd, "strict", o.strict, root.file.Strict))
	klog.V(1).InfoS("Parsing ESV", "input", path, "separator", string(opts.Separator),
		"headers", opts.Headers, "strict", opts.Strict, "format", format)

	doc, err := esv.ParseWithOptions(input, opts)
	if err != nil {
		return errors.Wrap(err, "failed to parse ESV input")
	}
	klog.V(1).InfoS("Parsed document", "records", doc.RecordCount(), "hasHeaders", doc.HasHeaders())

	content, err := formatDocument(doc, format)
	if err != nil {
		return err
	}
	return writeOutput(root.out, o.output, content)
}
