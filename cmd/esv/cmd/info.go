package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-esv/pkg/esv"
)

var formatRules = []string{
	"Each record is on a separate line, delimited by LF or CRLF.",
	"The last record may or may not have an ending line break.",
	"An optional header line may appear as the first line.",
	"Fields are separated by the emoji separator (default: " + string(esv.DefaultSeparator) + ").",
	"Fields may or may not be enclosed in double quotes.",
	"Fields containing line breaks, quotes, or the separator\n   should be enclosed in double quotes.",
	`Double quotes inside a field are escaped by doubling ("").`,
}

type infoOptions struct {
	separator bool
	spec      bool
}

func newInfoCommand(root *rootOptions) *cobra.Command {
	o := &infoOptions{}
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Describe the ESV format",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			o.run(root)
		},
	}
	cmd.Flags().BoolVar(&o.separator, "separator", false, "show the default separator")
	cmd.Flags().BoolVar(&o.spec, "spec", false, "show the format rules")
	return cmd
}

func (o *infoOptions) run(root *rootOptions) {
	s := newStyles(root.out)
	out := root.out
	sepLine := fmt.Sprintf("Default separator: %c (%s)", esv.DefaultSeparator, codePoint(esv.DefaultSeparator))

	switch {
	case o.separator:
		fmt.Fprintln(out, sepLine)
	case o.spec:
		fmt.Fprintln(out, s.title.Render("ESV (Emoji Separated Values) Format Specification"))
		fmt.Fprintln(out, "=================================================")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Based on RFC 4180 for CSV, adapted for emoji separators:")
		fmt.Fprintln(out)
		for i, rule := range formatRules {
			fmt.Fprintf(out, "%d. %s\n", i+1, rule)
		}
	default:
		fmt.Fprintln(out, s.title.Render("ESV (Emoji Separated Values)"))
		fmt.Fprintln(out, sepLine)
		fmt.Fprintln(out)
		fmt.Fprintln(out, s.hint.Render("Use --spec for format specification"))
		fmt.Fprintln(out, s.hint.Render("Use --help for available commands"))
	}
}
