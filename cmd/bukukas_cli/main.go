// Package main is the entry point for the bukukas maintenance CLI.
package main

import (
	"os"

	"github.com/SscSPs/bukukas_app/cmd/bukukas_cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
