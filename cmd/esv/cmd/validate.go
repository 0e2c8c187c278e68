package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/shapestone/shape-esv/pkg/esv"
)

type validateOptions struct {
	separator string
	strict    bool
	headers   bool
}

func newValidateCommand(root *rootOptions) *cobra.Command {
	o := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [input]",
		Short: "Check that input is well-formed ESV",
		Long: `Check ESV input without building a document. Prints the record count,
the fields per record (0 when records disagree) and whether a header is
present. Exits 1 when the input is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root, inputPath(args))
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&o.separator, "separator", "s", "", `field separator: one character, U+XXXX, or "auto" (default 🔥)`)
	fs.BoolVar(&o.strict, "strict", false, "require every record to have the same number of fields")
	fs.BoolVarP(&o.headers, "headers", "H", false, "treat the first record as headers")
	return cmd
}

func (o *validateOptions) run(cmd *cobra.Command, root *rootOptions, path string) error {
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

	summary, err := esv.ValidateWithOptions(input, opts)
	if err != nil {
		klog.V(1).InfoS("Validation failed", "input", path, "err", err)
		s := newStyles(root.errOut)
		fmt.Fprintln(root.errOut, s.failure.Render("❌ Invalid ESV: "+err.Error()))
		return ErrSilent
	}

	fields := summary.Fields
	if !summary.Uniform {
		fields = 0
	}
	s := newStyles(root.out)
	fmt.Fprintln(root.out, s.success.Render("✅ Valid ESV"))
	fmt.Fprintln(root.out, s.detail.Render(fmt.Sprintf("   Records: %d", summary.Records)))
	fmt.Fprintln(root.out, s.detail.Render(fmt.Sprintf("   Fields per record: %d", fields)))
	fmt.Fprintln(root.out, s.detail.Render(fmt.Sprintf("   Has headers: %t", summary.HasHeaders)))
	return nil
}
