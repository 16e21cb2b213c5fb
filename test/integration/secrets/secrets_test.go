package secrets

import (
	"os"
	"strings"
	"testing"

	"github.com/abdushkur/dev-ops/internal/configs"
	"github.com/abdushkur/dev-ops/test/integration/shared"
)

func setup(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	tempUserDir := t.TempDir()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	originalUserSettings := configs.UserDevopsSettings

	shared.SetupTestEnvironment(t, tempDir, tempUserDir, originalWd, originalUserSettings)

	// Make sure nothing leaks in from the real environment. t.Setenv
	// registers the restore; unset so the variables are truly absent.
	for _, key := range []string{configs.EnvGitHubToken, configs.EnvGitHubOwner, configs.EnvGitHubRepo} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	return tempDir
}

func TestListFailsWithoutToken(t *testing.T) {
	setup(t)

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"secrets", "list"}, nil, nil, false, false)
		return cli.Execute()
	})

	if err == nil {
		t.Fatal("expected an error with no GITHUB_TOKEN")
	}
	if !strings.Contains(err.Error(), configs.EnvGitHubToken) {
		t.Errorf("error %q does not name the missing token", err)
	}
	if !strings.Contains(output, "✗") {
		t.Errorf("output missing failure marker: %q", output)
	}
}

func TestCheckRejectsInvalidNameBeforeAnyAPICall(t *testing.T) {
	setup(t)

	_, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"secrets", "check", "not a name"}, nil, nil, false, false)
		return cli.Execute()
	})

	if err == nil || !strings.Contains(err.Error(), "invalid secret name") {
		t.Errorf("expected invalid name error, got %v", err)
	}
}

func TestAddRejectsReservedPrefix(t *testing.T) {
	setup(t)

	_, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"secrets", "add", "GITHUB_PAT", "value"}, nil, nil, false, false)
		return cli.Execute()
	})

	if err == nil || !strings.Contains(err.Error(), "reserved") {
		t.Errorf("expected reserved prefix error, got %v", err)
	}
}

func TestPushFailsWithoutDotenv(t *testing.T) {
	setup(t)

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"secrets", "push", "--all"}, nil, nil, false, false)
		return cli.Execute()
	})

	if err == nil {
		t.Fatal("expected an error with no .env file")
	}
	if !strings.Contains(output, "No .env file found") {
		t.Errorf("output missing .env hint: %q", output)
	}
}

func TestSealEncodesStdinWithoutKey(t *testing.T) {
	setup(t)

	// Replace stdin with a pipe carrying the plaintext.
	originalStdin := os.Stdin
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdin = reader
	t.Cleanup(func() { os.Stdin = originalStdin })

	if _, err := writer.Write([]byte("hunter2")); err != nil {
		t.Fatalf("Failed to write plaintext: %v", err)
	}
	writer.Close()

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"secrets", "seal"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}

	// base64("hunter2")
	if !strings.Contains(output, "aHVudGVyMg==") {
		t.Errorf("output missing base64 value: %q", output)
	}
}

func TestSealRejectsBadPublicKey(t *testing.T) {
	setup(t)

	originalStdin := os.Stdin
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdin = reader
	t.Cleanup(func() { os.Stdin = originalStdin })

	if _, err := writer.Write([]byte("hunter2")); err != nil {
		t.Fatalf("Failed to write plaintext: %v", err)
	}
	writer.Close()

	_, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"secrets", "seal", "--key", "not-base64!"}, nil, nil, false, false)
		return cli.Execute()
	})
	if err == nil {
		t.Error("expected an error for a malformed public key")
	}
}
