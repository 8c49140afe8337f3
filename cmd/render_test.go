package cmd

import (
	"bytes"
	"testing"
)

// execute runs the root command with args and returns the resulting error.
// Output is captured so validation failures do not print usage to the test
// log.
func execute(args ...string) error {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRenderRequiresOneFormat(t *testing.T) {
	// Flag state is process-global, so the no-flag case must run before
	// any case that marks a format flag as set.
	if err := execute("render", "input.md"); err == nil {
		t.Fatalf("render without a format flag succeeded, want error")
	}
}

func TestRenderFormatsMutuallyExclusive(t *testing.T) {
	if err := execute("render", "input.md", "--pdf", "--docx"); err == nil {
		t.Fatalf("render with --pdf and --docx succeeded, want error")
	}
}
