package utils

import (
	"os/user"
	"regexp"
	"strings"
	"time"
)

// accountIDMaxLen is the gcloud limit for service account IDs.
const accountIDMaxLen = 30

// GetUsername returns the current username.
func GetUsername() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// SanitizeAccountID sanitizes a string into a valid gcloud service account ID:
// lowercase letters, digits, and hyphens, starting with a letter.
func SanitizeAccountID(name string) string {
	// Trim whitespace.
	name = strings.TrimSpace(name)

	// Convert to lowercase.
	name = strings.ToLower(name)

	// Replace spaces and underscores with hyphens.
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")

	// Remove any characters that are not alphanumeric or hyphens.
	re := regexp.MustCompile(`[^a-z0-9\-]`)
	name = re.ReplaceAllString(name, "")

	// Remove consecutive hyphens.
	re = regexp.MustCompile(`-+`)
	name = re.ReplaceAllString(name, "-")

	// Trim leading digits and hyphens; the ID must start with a letter.
	name = strings.TrimLeft(name, "0123456789-")
	name = strings.TrimRight(name, "-")

	if name == "" {
		name = "account"
	}

	if len(name) > accountIDMaxLen {
		name = strings.TrimRight(name[:accountIDMaxLen], "-")
	}

	return name
}

// TimestampedAccountID generates a service account ID from a base name and
// the current UTC time, so repeated provisioning never collides.
func TimestampedAccountID(base string, now time.Time) string {
	stamp := now.UTC().Format("20060102150405")
	base = SanitizeAccountID(base)

	// Leave room for the hyphen and timestamp within the gcloud limit.
	maxBase := accountIDMaxLen - len(stamp) - 1
	if len(base) > maxBase {
		base = strings.TrimRight(base[:maxBase], "-")
	}

	return base + "-" + stamp
}
