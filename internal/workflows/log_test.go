package workflows

import (
	"context"
	"testing"

	"github.com/abdushkur/dev-ops/internal/audit"
	"github.com/abdushkur/dev-ops/internal/configs"
)

func TestLogReturnsNewestEntriesWithinLimit(t *testing.T) {
	configs.UserDevopsSettings.UserConfigsPath = t.TempDir()

	for _, op := range []string{"secret-add", "secret-push", "api-key-create"} {
		audit.Log(audit.Entry{Operation: op})
	}

	result, err := Log(context.Background(), LogOptions{Limit: 2})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(result.Entries))
	}
	if result.Entries[0].Operation != "secret-push" || result.Entries[1].Operation != "api-key-create" {
		t.Errorf("entries = %v, want the two newest", result.Entries)
	}
}

func TestLogEmptyHistory(t *testing.T) {
	configs.UserDevopsSettings.UserConfigsPath = t.TempDir()

	result, err := Log(context.Background(), LogOptions{})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("got %d entries from empty history", len(result.Entries))
	}
}
