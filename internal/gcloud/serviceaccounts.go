package gcloud

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
	"github.com/abdushkur/dev-ops/internal/utils"
)

// AccountType selects one of the fixed service account profiles.
type AccountType string

const (
	// AccountFastlane is the deploy account used by the fastlane lanes:
	// app distribution and release management.
	AccountFastlane AccountType = "fastlane"

	// AccountGitHubActions is the CI account used by the GitHub Actions
	// workflows: build, push, and deploy.
	AccountGitHubActions AccountType = "github-actions"
)

// Propagation polling budget for freshly created service accounts. IAM is
// eventually consistent; a describe right after create can 404.
const (
	propagationAttempts = 5
	propagationDelay    = 2 * time.Second
)

// accountRoles maps each account type to its fixed IAM role set.
var accountRoles = map[AccountType][]string{
	AccountFastlane: {
		"roles/firebaseappdistro.admin",
		"roles/firebase.viewer",
		"roles/iam.serviceAccountUser",
	},
	AccountGitHubActions: {
		"roles/run.admin",
		"roles/cloudbuild.builds.editor",
		"roles/artifactregistry.writer",
		"roles/storage.admin",
		"roles/iam.serviceAccountUser",
	},
}

// AccountTypes returns the supported account types.
func AccountTypes() []string {
	return []string{string(AccountFastlane), string(AccountGitHubActions)}
}

// ParseAccountType validates an account type argument.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(s)
	if _, ok := accountRoles[t]; !ok {
		return "", fmt.Errorf("%w: %q (expected one of: %v)", devopserrors.ErrUnknownAccountType, s, AccountTypes())
	}
	return t, nil
}

// RolesFor returns the fixed IAM role set for an account type.
func RolesFor(t AccountType) []string {
	roles := make([]string, len(accountRoles[t]))
	copy(roles, accountRoles[t])
	return roles
}

// ServiceAccount describes a provisioned service account.
type ServiceAccount struct {
	AccountID string
	Email     string
	Roles     []string
	KeyPath   string
}

// CreateServiceAccount provisions a service account of the given type with
// a timestamped identifier, waits for it to propagate, binds its fixed
// role set, and exports a JSON key named after the account into keyDir.
// An empty keyDir skips the key export.
func (p *Provisioner) CreateServiceAccount(ctx context.Context, t AccountType, keyDir string) (*ServiceAccount, error) {
	accountID := utils.TimestampedAccountID(string(t), time.Now())
	email := fmt.Sprintf("%s@%s.iam.gserviceaccount.com", accountID, p.project)

	keyPath := ""
	if keyDir != "" {
		keyPath = filepath.Join(keyDir, accountID+".json")
	}

	_, err := p.runner.Run(ctx,
		"iam", "service-accounts", "create", accountID,
		"--display-name", fmt.Sprintf("%s deploy account", t),
		"--project", p.project)
	if err != nil {
		return nil, err
	}

	if err := p.waitForServiceAccount(ctx, email); err != nil {
		return nil, err
	}

	roles := RolesFor(t)
	for _, role := range roles {
		_, err := p.runner.Run(ctx,
			"projects", "add-iam-policy-binding", p.project,
			"--member", "serviceAccount:"+email,
			"--role", role,
			"--condition", "None")
		if err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", role, err)
		}
	}

	if keyPath != "" {
		_, err := p.runner.Run(ctx,
			"iam", "service-accounts", "keys", "create", keyPath,
			"--iam-account", email,
			"--project", p.project)
		if err != nil {
			return nil, fmt.Errorf("failed to export key: %w", err)
		}
	}

	return &ServiceAccount{
		AccountID: accountID,
		Email:     email,
		Roles:     roles,
		KeyPath:   keyPath,
	}, nil
}

// waitForServiceAccount polls describe until the account is visible or the
// fixed retry budget is spent.
func (p *Provisioner) waitForServiceAccount(ctx context.Context, email string) error {
	var lastErr error
	for attempt := 1; attempt <= propagationAttempts; attempt++ {
		_, lastErr = p.runner.Run(ctx,
			"iam", "service-accounts", "describe", email,
			"--project", p.project)
		if lastErr == nil {
			return nil
		}
		if attempt < propagationAttempts {
			p.sleep(propagationDelay)
		}
	}
	return fmt.Errorf("%w: %s after %d attempts: %v",
		devopserrors.ErrPropagationTimeout, email, propagationAttempts, lastErr)
}
