package utils

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// githubRemoteRegex matches both SSH and HTTPS GitHub remote URLs:
//
//	git@github.com:owner/repo.git
//	https://github.com/owner/repo.git
//	https://github.com/owner/repo
var githubRemoteRegex = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// GitRemoteURL returns the URL of the origin remote for the repository
// containing the working directory.
func GitRemoteURL() (string, error) {
	cmd := exec.Command("git", "config", "--get", "remote.origin.url")
	output, err := cmd.Output()
	if err != nil {
		if strings.Contains(err.Error(), "executable file not found") {
			return "", fmt.Errorf("git command not found")
		}
		return "", fmt.Errorf("no origin remote configured: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// ParseGitHubRemote extracts the owner and repository name from a GitHub
// remote URL. Returns an error for non-GitHub or malformed URLs.
func ParseGitHubRemote(url string) (owner, repo string, err error) {
	matches := githubRemoteRegex.FindStringSubmatch(strings.TrimSpace(url))
	if matches == nil {
		return "", "", fmt.Errorf("not a GitHub remote URL: %q", url)
	}
	return matches[1], matches[2], nil
}
