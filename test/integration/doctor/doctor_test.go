package doctor

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

	// t.Setenv registers the restore; unset so the variables are truly
	// absent and .env loading behaves as in a clean shell.
	for _, key := range []string{configs.EnvGitHubToken, configs.EnvGitHubOwner, configs.EnvGitHubRepo, configs.EnvProjectID} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	return tempDir
}

func TestDoctorReportsBrokenEnvironment(t *testing.T) {
	setup(t)

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"doctor"}, nil, nil, false, false)
		return cli.Execute()
	})

	if err == nil {
		t.Fatal("expected doctor to fail in an empty environment")
	}
	for _, check := range []string{".env file", "GitHub token", "repository"} {
		if !strings.Contains(output, check) {
			t.Errorf("output missing %q check: %q", check, output)
		}
	}
	if !strings.Contains(output, "check(s) failed") {
		t.Errorf("output missing failure summary: %q", output)
	}
}

func TestDoctorFindsDotenvAndRepo(t *testing.T) {
	tempDir := setup(t)
	envPath := shared.WriteDotenv(t, tempDir, "GITHUB_TOKEN=tok\nGITHUB_OWNER=acme\nGITHUB_REPO=rocket\n")

	output, _ := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI([]string{"doctor"}, nil, nil, false, false)
		return cli.Execute()
	})

	if !strings.Contains(output, envPath) {
		t.Errorf("output does not show the found .env path: %q", output)
	}
	if !strings.Contains(output, "acme/rocket") {
		t.Errorf("output does not show the resolved repository: %q", output)
	}
}
