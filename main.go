package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/tagdo/cmd"
	"github.com/thenoetrevino/tagdo/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.CodeFor(err))
	}
}
