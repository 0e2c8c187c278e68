package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/shapestone/shape-esv/cmd/esv/cmd"
)

func main() {
	command := cmd.NewESVCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := command.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrSilent) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
