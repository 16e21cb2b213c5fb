package configs

import (
	"fmt"
	"os"
	"strings"

	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
	"github.com/abdushkur/dev-ops/internal/utils"
)

// Repo identifies a GitHub repository.
type Repo struct {
	Owner string
	Name  string
}

// String returns the owner/name form.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// SplitRepo parses an owner/repo argument.
func SplitRepo(s string) (Repo, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, fmt.Errorf("%w: %q", devopserrors.ErrInvalidRepo, s)
	}
	return Repo{Owner: parts[0], Name: parts[1]}, nil
}

// ResolveRepo determines the target repository with strict precedence:
// the --repo flag, then GITHUB_OWNER/GITHUB_REPO from the environment,
// then the saved default, then the origin remote of the enclosing git
// repository. Returns ErrRepoNotResolved when every source comes up empty.
func ResolveRepo(flagValue string) (Repo, error) {
	// 1. Explicit flag.
	if flagValue != "" {
		return SplitRepo(flagValue)
	}

	// 2. Environment.
	owner := os.Getenv(EnvGitHubOwner)
	name := os.Getenv(EnvGitHubRepo)
	if owner != "" && name != "" {
		return Repo{Owner: owner, Name: name}, nil
	}

	// 3. Saved default.
	userConfig, err := LoadUserConfig()
	if err == nil && userConfig.Defaults.Repo != "" {
		if repo, err := SplitRepo(userConfig.Defaults.Repo); err == nil {
			return repo, nil
		}
	}

	// 4. Git remote.
	url, err := utils.GitRemoteURL()
	if err == nil {
		if owner, name, err := utils.ParseGitHubRemote(url); err == nil {
			return Repo{Owner: owner, Name: name}, nil
		}
	}

	return Repo{}, devopserrors.ErrRepoNotResolved
}

// ResolveProject determines the Google Cloud project ID: the --project
// flag, then PROJECT_ID from the environment, then the saved default.
func ResolveProject(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if project := os.Getenv(EnvProjectID); project != "" {
		return project, nil
	}

	userConfig, err := LoadUserConfig()
	if err == nil && userConfig.Defaults.Project != "" {
		return userConfig.Defaults.Project, nil
	}

	return "", devopserrors.ErrMissingProject
}
