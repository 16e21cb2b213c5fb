package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	// Ensure NO_COLOR is not set for this test.
	os.Unsetenv("NO_COLOR")
	// Force color output for testing.
	color.NoColor = false

	// Code formatter should not have backticks when color is enabled.
	result := Code.Sprint("devops secrets add")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}

	// Verify it contains ANSI escape codes (color output).
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	// Set NO_COLOR for this test.
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "devops secrets push", "`devops secrets push`"},
		{"Path has no decoration", Path, ".env", ".env"},
		{"Flag has no decoration", Flag, "--repo", "--repo"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "FIREBASE_TOKEN", "'FIREBASE_TOKEN'"},
		{"Muted adds parentheses", Muted, "not encrypted", "(not encrypted)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("done"); got != "done\n" {
		t.Errorf("expected trailing newline, got %q", got)
	}
	if got := EnsureNewline("done\n"); got != "done\n" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("expected single newline for empty input, got %q", got)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"short value fully starred", "abcd", "****"},
		{"empty value fully starred", "", "****"},
		{"long value keeps anchor", "ghp_supersecret", "gh****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskSecret(tt.value); got != tt.want {
				t.Errorf("MaskSecret(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
