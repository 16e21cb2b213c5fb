package utils

import (
	"strings"
	"testing"
	"time"
)

func TestSanitizeAccountID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "fastlane", "fastlane"},
		{"uppercase", "GitHub Actions", "github-actions"},
		{"underscores", "github_actions", "github-actions"},
		{"special characters", "deploy!@#key", "deploykey"},
		{"consecutive hyphens", "a--b---c", "a-b-c"},
		{"leading digits", "123deploy", "deploy"},
		{"empty input", "", "account"},
		{"only invalid characters", "!!!", "account"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeAccountID(tt.input); got != tt.want {
				t.Errorf("SanitizeAccountID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeAccountIDLength(t *testing.T) {
	long := strings.Repeat("abc-", 20)
	got := SanitizeAccountID(long)
	if len(got) > 30 {
		t.Errorf("sanitized ID exceeds 30 characters: %q (%d)", got, len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("sanitized ID ends with hyphen: %q", got)
	}
}

func TestTimestampedAccountID(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	got := TimestampedAccountID("github-actions", now)
	want := "github-actions-20240315103000"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if len(got) > 30 {
		t.Errorf("ID exceeds 30 characters: %q (%d)", got, len(got))
	}
}

func TestTimestampedAccountIDTruncatesLongBase(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	got := TimestampedAccountID("a-very-long-service-account-base-name", now)
	if len(got) > 30 {
		t.Errorf("ID exceeds 30 characters: %q (%d)", got, len(got))
	}
	if !strings.HasSuffix(got, "-20240315103000") {
		t.Errorf("ID missing timestamp suffix: %q", got)
	}
}
