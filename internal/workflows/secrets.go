package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abdushkur/dev-ops/internal/audit"
	"github.com/abdushkur/dev-ops/internal/configs"
	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
	"github.com/abdushkur/dev-ops/internal/github"
)

// secretClient returns the client from the options, or builds one from
// GITHUB_TOKEN. The nearest .env file is loaded first so the token can
// live there.
func secretClient(opts *github.Client) (*github.Client, error) {
	if opts != nil {
		return opts, nil
	}

	if _, err := configs.LoadEnvironment(configs.EnvGitHubToken); err != nil {
		return nil, fmt.Errorf("%w: %v", devopserrors.ErrMissingToken, err)
	}

	return github.NewClient(os.Getenv(configs.EnvGitHubToken)), nil
}

// ListOptions configures the list workflow.
type ListOptions struct {
	// RepoFlag is the raw --repo value; empty means resolve from the
	// environment, saved default, or git remote.
	RepoFlag string

	// Client overrides the GitHub client, for testing.
	Client *github.Client
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	Repo    configs.Repo
	Secrets []github.SecretInfo
}

// List fetches every Actions secret of the target repository.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	client, err := secretClient(opts.Client)
	if err != nil {
		return nil, err
	}

	repo, err := configs.ResolveRepo(opts.RepoFlag)
	if err != nil {
		return nil, err
	}

	secrets, err := client.ListSecrets(ctx, repo)
	if err != nil {
		return nil, err
	}

	return &ListResult{Repo: repo, Secrets: secrets}, nil
}

// CheckOptions configures the check workflow.
type CheckOptions struct {
	RepoFlag string
	Name     string

	// Client overrides the GitHub client, for testing.
	Client *github.Client
}

// CheckResult contains the outcome of a check operation.
type CheckResult struct {
	Repo  configs.Repo
	Name  string
	Found bool
}

// Check reports whether the named secret exists in the target repository.
// The returned error is ErrSecretNotFound when it does not, so the command
// exits non-zero.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	if err := github.ValidateSecretName(opts.Name); err != nil {
		return nil, err
	}

	client, err := secretClient(opts.Client)
	if err != nil {
		return nil, err
	}

	repo, err := configs.ResolveRepo(opts.RepoFlag)
	if err != nil {
		return nil, err
	}

	found, err := client.HasSecret(ctx, repo, opts.Name)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Repo: repo, Name: opts.Name, Found: found}
	if !found {
		return result, fmt.Errorf("%w: %s in %s", devopserrors.ErrSecretNotFound, opts.Name, repo)
	}
	return result, nil
}

// AddOptions configures the add workflow.
type AddOptions struct {
	RepoFlag string
	Name     string
	Value    string

	// Client overrides the GitHub client, for testing.
	Client *github.Client
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	Repo      configs.Repo
	Name      string
	Encrypted bool
}

// Add seals the value against the repository public key and stores it as
// an Actions secret. Trailing newlines are trimmed so file-sourced values
// behave like typed ones.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	if err := github.ValidateSecretName(opts.Name); err != nil {
		return nil, err
	}

	value := strings.TrimRight(opts.Value, "\r\n")
	if value == "" {
		return nil, devopserrors.ErrEmptySecretValue
	}

	client, err := secretClient(opts.Client)
	if err != nil {
		return nil, err
	}

	repo, err := configs.ResolveRepo(opts.RepoFlag)
	if err != nil {
		return nil, err
	}

	put, err := client.PutSecret(ctx, repo, opts.Name, value)
	if err != nil {
		return nil, err
	}

	audit.Log(audit.Entry{
		Operation: "secret-add",
		Repo:      repo.String(),
		Secret:    opts.Name,
		Encrypted: &put.Encrypted,
	})

	return &AddResult{Repo: repo, Name: opts.Name, Encrypted: put.Encrypted}, nil
}

// PushOptions configures the push workflow.
type PushOptions struct {
	RepoFlag string

	// Keys are the environment keys to push. Values are read from the
	// process environment after the .env file is loaded.
	Keys []string

	// Client overrides the GitHub client, for testing.
	Client *github.Client
}

// PushedSecret describes one pushed key.
type PushedSecret struct {
	Name      string
	Encrypted bool
}

// PushResult contains the outcome of a push operation.
type PushResult struct {
	Repo    configs.Repo
	Pushed  []PushedSecret
	Skipped []string
}

// Push stores the selected environment values as repository secrets.
// Keys with empty values are skipped rather than failing the whole batch.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	client, err := secretClient(opts.Client)
	if err != nil {
		return nil, err
	}

	repo, err := configs.ResolveRepo(opts.RepoFlag)
	if err != nil {
		return nil, err
	}

	result := &PushResult{Repo: repo}
	for _, key := range opts.Keys {
		if err := github.ValidateSecretName(key); err != nil {
			result.Skipped = append(result.Skipped, key)
			continue
		}

		value := strings.TrimRight(os.Getenv(key), "\r\n")
		if value == "" {
			result.Skipped = append(result.Skipped, key)
			continue
		}

		put, err := client.PutSecret(ctx, repo, key, value)
		if err != nil {
			// Secrets stored before the failure still show up in the history.
			audit.Log(audit.Entry{
				Operation: "secret-push",
				Repo:      repo.String(),
				SecretCnt: len(result.Pushed),
			})
			return result, err
		}
		result.Pushed = append(result.Pushed, PushedSecret{Name: key, Encrypted: put.Encrypted})
	}

	audit.Log(audit.Entry{
		Operation: "secret-push",
		Repo:      repo.String(),
		SecretCnt: len(result.Pushed),
	})

	return result, nil
}
