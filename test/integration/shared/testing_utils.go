// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments and
// capturing output.
package shared

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdushkur/dev-ops/cmd"
	"github.com/abdushkur/dev-ops/internal/configs"
	logger "github.com/abdushkur/dev-ops/internal/logging"
	"github.com/spf13/cobra"
)

// SetupTestEnvironment moves the test into a temporary working directory
// and points the user settings at a temporary config path.
func SetupTestEnvironment(t *testing.T, tempDir, tempUserDir, originalWd string, originalUserSettings *configs.UserSettings) {
	// Change to temp directory
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	// Cleanup function to restore original state
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.UserDevopsSettings = originalUserSettings
		cmd.ResetGlobalState()
	})

	// Override user settings to use temp directory
	configs.UserDevopsSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
		Username:        "testuser",
	}
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
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

// CreateTestCLI creates a complete CLI instance for testing, wired to run
// the given argument list.
func CreateTestCLI(args []string, stdout, stderr io.Writer, verboseFlag, debugFlag bool) *cobra.Command {
	// Set global flags for the actual command (needed for the real command implementations)
	cmd.SetVerbose(verboseFlag)
	cmd.SetDebug(debugFlag)

	// Initialize the logger with the test flags
	cmd.SetLogger(logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	})

	// Create a fresh root command for this test
	rootCmd := &cobra.Command{
		Use:   "devops",
		Short: "devops - A CLI for routine Google Cloud and GitHub administration.",
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Use the actual command groups but reset their state
	rootCmd.AddCommand(cmd.GetSecretsCmd())
	rootCmd.AddCommand(cmd.GcloudCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
	rootCmd.AddCommand(cmd.DoctorCmd)
	rootCmd.AddCommand(cmd.LogCmd)

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
	if err := cmd.GetSecretsCmd().PersistentFlags().Set("verbose", fmt.Sprintf("%t", verboseFlag)); err != nil {
		log.Fatalf("Failed to set verbose flag for testing: %s", err)
	}
	if err := cmd.GetSecretsCmd().PersistentFlags().Set("debug", fmt.Sprintf("%t", debugFlag)); err != nil {
		log.Fatalf("Failed to set debug flag for testing: %s", err)
	}

	return rootCmd
}

// WriteDotenv writes a .env file with the given content into dir.
func WriteDotenv(t *testing.T, dir, content string) string {
	t.Helper()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write .env file: %v", err)
	}
	return envPath
}
