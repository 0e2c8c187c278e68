package cmd

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// stdio names standard input or output in place of a path.
const stdio = "-"

func readInput(in io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdio {
		data, err = io.ReadAll(in)
		if err != nil {
			return "", errors.Wrap(err, "failed to read from stdin")
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read file %s", path)
		}
	}
	if !utf8.Valid(data) {
		return "", errors.Errorf("input %s is not valid UTF-8", path)
	}
	klog.V(2).InfoS("Read input", "source", path, "bytes", len(data))
	return string(data), nil
}

func writeOutput(out io.Writer, path, content string) error {
	if path == stdio {
		if _, err := io.WriteString(out, content); err != nil {
			return errors.Wrap(err, "failed to write to stdout")
		}
	} else if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write file %s", path)
	}
	klog.V(2).InfoS("Wrote output", "destination", path, "bytes", len(content))
	return nil
}

// inputPath returns the positional input argument, stdin when absent.
func inputPath(args []string) string {
	if len(args) == 0 {
		return stdio
	}
	return args[0]
}
