// Package cmd contains testing utilities shared between the in-package
// command tests. The integration tree under test/integration has its own
// exported copies in the shared package.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	logger "github.com/abdushkur/dev-ops/internal/logging"
	"github.com/spf13/cobra"
)

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI creates a complete CLI instance for testing, wired to run
// the given argument list.
func createTestCLI(args []string, stdout, stderr io.Writer, verboseFlag, debugFlag bool) *cobra.Command {
	// Set global flags for the actual command (needed for the real command implementations)
	verbose = verboseFlag
	debug = debugFlag

	// Initialize the logger with the test flags
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	// Create a fresh root command for this test
	rootCmd := &cobra.Command{
		Use:   "devops",
		Short: "devops - A CLI for routine Google Cloud and GitHub administration.",
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(SecretsCmd)
	rootCmd.AddCommand(GcloudCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.AddCommand(DoctorCmd)
	rootCmd.AddCommand(LogCmd)

	// Set output streams
	if stdout != nil {
		rootCmd.SetOut(stdout)
		for _, group := range rootCmd.Commands() {
			group.SetOut(stdout)
			for _, subcmd := range group.Commands() {
				subcmd.SetOut(stdout)
			}
		}
	}
	if stderr != nil {
		rootCmd.SetErr(stderr)
		for _, group := range rootCmd.Commands() {
			group.SetErr(stderr)
			for _, subcmd := range group.Commands() {
				subcmd.SetErr(stderr)
			}
		}
	}

	rootCmd.SetArgs(args)

	// Set the flags on the secrets command
	if err := SecretsCmd.PersistentFlags().Set("verbose", fmt.Sprintf("%t", verboseFlag)); err != nil {
		log.Fatalf("Failed to set verbose flag for testing: %s", err)
	}
	if err := SecretsCmd.PersistentFlags().Set("debug", fmt.Sprintf("%t", debugFlag)); err != nil {
		log.Fatalf("Failed to set debug flag for testing: %s", err)
	}

	return rootCmd
}
