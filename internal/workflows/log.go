package workflows

import (
	"context"

	"github.com/abdushkur/dev-ops/internal/audit"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit caps the number of entries returned, newest last. Zero means
	// no cap.
	Limit int
}

// LogResult contains the recorded operation entries.
type LogResult struct {
	Entries []audit.Entry
	Path    string
}

// Log reads the recorded operation history.
func Log(_ context.Context, opts LogOptions) (*LogResult, error) {
	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, err
	}

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[len(entries)-opts.Limit:]
	}

	return &LogResult{Entries: entries, Path: audit.LogPath()}, nil
}
