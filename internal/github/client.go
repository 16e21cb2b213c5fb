package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v59/github"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/abdushkur/dev-ops/internal/configs"
	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
)

// GitHub API pagination size.
const perPage = 100

// ActionsService is the subset of go-github's Actions service used by this
// tool. The indirection allows tests to substitute a mock.
type ActionsService interface {
	ListRepoSecrets(ctx context.Context, owner, repo string, opts *github.ListOptions) (*github.Secrets, *github.Response, error)
	GetRepoPublicKey(ctx context.Context, owner, repo string) (*github.PublicKey, *github.Response, error)
	CreateOrUpdateRepoSecret(ctx context.Context, owner, repo string, secret *github.EncryptedSecret) (*github.Response, error)
}

// SecretInfo describes a repository secret as GitHub reports it. Values
// are never readable back from the API.
type SecretInfo struct {
	Name      string
	UpdatedAt string
}

// PutResult contains the outcome of storing a secret.
type PutResult struct {
	Name string

	// Encrypted is false when the value was stored via the base64
	// fallback because the repository published no public key.
	Encrypted bool

	// KeyID is the ID of the public key the value was sealed against.
	KeyID string
}

// Client wraps the GitHub Actions secrets endpoints for a single token.
type Client struct {
	actions ActionsService
}

// NewClient builds a Client authenticated with the given bearer token.
// Transient HTTP failures are retried by the underlying client.
func NewClient(token string) *Client {
	retrying := retryablehttp.NewClient()
	retrying.Logger = nil

	gh := github.NewClient(retrying.StandardClient()).WithAuthToken(token)
	return &Client{actions: gh.Actions}
}

// NewClientWithActions builds a Client over a custom Actions service.
// This is primarily used for testing with mock services.
func NewClientWithActions(actions ActionsService) *Client {
	return &Client{actions: actions}
}

// ListSecrets returns every Actions secret of the repository.
func (c *Client) ListSecrets(ctx context.Context, repo configs.Repo) ([]SecretInfo, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var secrets []SecretInfo
	for {
		page, resp, err := c.actions.ListRepoSecrets(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: listing secrets for %s: %v", devopserrors.ErrGitHubAPIFailed, repo, err)
		}

		for _, secret := range page.Secrets {
			secrets = append(secrets, SecretInfo{
				Name:      secret.Name,
				UpdatedAt: secret.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return secrets, nil
}

// HasSecret reports whether the named secret exists in the repository.
func (c *Client) HasSecret(ctx context.Context, repo configs.Repo, name string) (bool, error) {
	secrets, err := c.ListSecrets(ctx, repo)
	if err != nil {
		return false, err
	}

	for _, secret := range secrets {
		if secret.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// PutSecret seals the value against the repository's published public key
// and stores it as an Actions secret. When the repository publishes no
// key, the value is stored base64-encoded and PutResult.Encrypted is false.
func (c *Client) PutSecret(ctx context.Context, repo configs.Repo, name, value string) (*PutResult, error) {
	key, _, err := c.actions.GetRepoPublicKey(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching public key for %s: %v", devopserrors.ErrGitHubAPIFailed, repo, err)
	}

	sealed, err := Seal([]byte(value), key.GetKey())
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt secret %s: %w", name, err)
	}

	secret := &github.EncryptedSecret{
		Name:           name,
		KeyID:          key.GetKeyID(),
		EncryptedValue: sealed.Value,
	}

	if _, err := c.actions.CreateOrUpdateRepoSecret(ctx, repo.Owner, repo.Name, secret); err != nil {
		return nil, fmt.Errorf("%w: storing secret %s in %s: %v", devopserrors.ErrGitHubAPIFailed, name, repo, err)
	}

	return &PutResult{
		Name:      name,
		Encrypted: sealed.Encrypted,
		KeyID:     key.GetKeyID(),
	}, nil
}
