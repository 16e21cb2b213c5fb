package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/abdushkur/dev-ops/internal/configs"
	"github.com/google/uuid"
)

// Entry represents a single recorded operation.
type Entry struct {
	ID        string `json:"id"`   // UUID of this entry.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Local username performing the action.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	Repo      string   `json:"repo,omitempty"`       // For secret operations.
	Secret    string   `json:"secret,omitempty"`     // Secret name (never the value).
	Encrypted *bool    `json:"encrypted,omitempty"`  // Whether the value was sealed.
	Project   string   `json:"project,omitempty"`    // For gcloud operations.
	KeyType   string   `json:"key_type,omitempty"`   // For api-key create.
	Account   string   `json:"account,omitempty"`    // Service account email.
	Roles     []string `json:"roles,omitempty"`      // Bound IAM roles.
	SecretCnt int      `json:"secret_cnt,omitempty"` // For push.
}

// Log appends an entry to the operation log under the user config
// directory. Operations must not fail just because logging failed, so
// errors are swallowed.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.User == "" {
		entry.User = configs.UserDevopsSettings.Username
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the operation log file.
func LogPath() string {
	return filepath.Join(configs.UserDevopsSettings.UserConfigsPath, "operations.jsonl")
}

// ReadEntries reads all entries from the operation log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
