package main

import (
	"fmt"
	"os"

	"github.com/jakecoffman/sweep/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sweepsim: %v\n", err)
		os.Exit(1)
	}
}
