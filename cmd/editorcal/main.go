// Package main provides the entry point for the editorcal CLI.
package main

import (
	"os"

	"github.com/Eason-TWPlus/editor-calendar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
