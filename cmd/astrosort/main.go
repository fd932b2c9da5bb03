// Package main provides the CLI entry point for astrosort.
package main

import (
	"os"

	"astrosort/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
