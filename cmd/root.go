// Package cmd implements the CLI commands for docpress using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docpress",
	Short: "docpress — convert markdown into styled PDF and DOCX documents",
	Long: `docpress converts a markdown document (or an HTML page, local or remote)
into a styled PDF, a DOCX file, canonical Markdown, or structured JSON.

Usage:
  docpress render <file|url> [flags]
  docpress serve [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
