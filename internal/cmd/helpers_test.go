package cmd

import (
	"bytes"
	"testing"
)

// execute runs the root command with args and returns combined output.
// Global flag values are reset so tests do not leak into each other.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagAPIURL = ""
	flagOutput = ""
	flagVerbose = false
	loginEmail = ""
	loginPassword = ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(t.Context())
	return buf.String(), err
}
