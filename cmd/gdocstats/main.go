// Package main provides the entry point for the gdocstats CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/anastluc/gdocs-participation-statistics/internal/adapters/driving/cli"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
