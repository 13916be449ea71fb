// Package main is the entry point for the marketplace-pricing CLI.
package main

import (
	"os"

	"marketplace-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
