// Package cmd implements the esv command tree.
package cmd

import (
	"flag"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/shapestone/shape-esv/internal/config"
	"github.com/shapestone/shape-esv/pkg/esv"
)

// ErrSilent is returned by commands that already reported the failure on
// stderr. The caller should exit non-zero without printing it again.
var ErrSilent = errors.New("silent failure")

// autoSeparator asks for the separator to be detected from the input.
const autoSeparator = "auto"

// rootOptions is shared by every subcommand.
type rootOptions struct {
	configPath string
	file       *config.File

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewESVCommand builds the esv root command reading from in and writing to
// out and errOut.
func NewESVCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{in: in, out: out, errOut: errOut, file: &config.File{}}

	root := &cobra.Command{
		Use:   "esv",
		Short: "Emoji-Separated Values tool",
		Long: `esv parses, serializes and validates Emoji-Separated Values.

ESV follows the CSV rules of RFC 4180 with an emoji field separator
(🔥 by default). Quoted fields may hold separators, quotes and line breaks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Resolve(o.configPath)
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			o.file = f
			if f.Path != "" {
				klog.V(1).InfoS("Loaded config file", "path", f.Path)
			}
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	fs := root.PersistentFlags()
	fs.StringVar(&o.configPath, "config", "", "config file (default: $"+config.EnvVar+" or ~/.config/esv/config.toml)")
	addKlogFlags(fs)

	root.AddCommand(
		newParseCommand(o),
		newSerializeCommand(o),
		newValidateCommand(o),
		newInfoCommand(o),
		newVersionCommand(o),
	)
	return root
}

func addKlogFlags(fs *pflag.FlagSet) {
	local := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(local)
	local.VisitAll(func(fl *flag.Flag) {
		fl.Name = strings.Replace(fl.Name, "_", "-", -1)
		fs.AddGoFlag(fl)
	})
}

// boolSetting returns the flag value when it was given on the command line,
// else the config file value when present, else the flag default.
func boolSetting(cmd *cobra.Command, name string, flagValue bool, fileValue *bool) bool {
	if cmd.Flags().Changed(name) || fileValue == nil {
		return flagValue
	}
	return *fileValue
}

// stringSetting is boolSetting for string flags; an empty file value counts
// as absent.
func stringSetting(cmd *cobra.Command, name, flagValue, fileValue string) string {
	if cmd.Flags().Changed(name) || fileValue == "" {
		return flagValue
	}
	return fileValue
}

// separatorSetting resolves the separator from the flag, the config file
// and, for "auto", the input itself.
func (o *rootOptions) separatorSetting(cmd *cobra.Command, flagValue, input string) (rune, error) {
	value := stringSetting(cmd, "separator", flagValue, o.file.Separator)
	switch value {
	case "":
		return esv.DefaultSeparator, nil
	case autoSeparator:
		sep := esv.DetectSeparator(input)
		klog.V(1).InfoS("Detected separator", "separator", string(sep), "code", codePoint(sep))
		return sep, nil
	}
	sep, err := config.ParseSeparator(value)
	if err != nil {
		return 0, errors.Wrap(err, "invalid --separator")
	}
	return sep, nil
}
