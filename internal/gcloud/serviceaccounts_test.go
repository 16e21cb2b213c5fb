package gcloud

import (
	"context"
	"errors"
	"strings"
	"testing"

	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
)

func TestParseAccountType(t *testing.T) {
	for _, valid := range AccountTypes() {
		if _, err := ParseAccountType(valid); err != nil {
			t.Errorf("ParseAccountType(%q) failed: %v", valid, err)
		}
	}

	if _, err := ParseAccountType("nope"); !errors.Is(err, devopserrors.ErrUnknownAccountType) {
		t.Errorf("expected ErrUnknownAccountType, got %v", err)
	}
}

func TestRolesForReturnsCopy(t *testing.T) {
	roles := RolesFor(AccountFastlane)
	if len(roles) == 0 {
		t.Fatal("fastlane role set is empty")
	}

	roles[0] = "roles/tampered"
	if RolesFor(AccountFastlane)[0] == "roles/tampered" {
		t.Error("RolesFor returned shared slice")
	}
}

func TestCreateServiceAccount(t *testing.T) {
	runner := newFakeRunner()
	p := noSleep(NewProvisionerWithRunner("my-project", runner))

	account, err := p.CreateServiceAccount(context.Background(), AccountGitHubActions, "/tmp")
	if err != nil {
		t.Fatalf("CreateServiceAccount failed: %v", err)
	}

	if !strings.HasPrefix(account.AccountID, "github-actions-") {
		t.Errorf("AccountID = %q, want github-actions-<timestamp>", account.AccountID)
	}
	if len(account.AccountID) > 30 {
		t.Errorf("AccountID exceeds 30 characters: %q", account.AccountID)
	}
	wantEmail := account.AccountID + "@my-project.iam.gserviceaccount.com"
	if account.Email != wantEmail {
		t.Errorf("Email = %q, want %q", account.Email, wantEmail)
	}

	// Create, then describe, then one binding per role, then key export.
	if got := runner.countCalls("iam service-accounts create"); got != 1 {
		t.Errorf("expected 1 create call, got %d", got)
	}
	if got := runner.countCalls("projects add-iam-policy-binding my-project"); got != len(RolesFor(AccountGitHubActions)) {
		t.Errorf("expected %d binding calls, got %d", len(RolesFor(AccountGitHubActions)), got)
	}
	if got := runner.countCalls("iam service-accounts keys create"); got != 1 {
		t.Errorf("expected 1 key export call, got %d", got)
	}
	wantKeyPath := "/tmp/" + account.AccountID + ".json"
	if account.KeyPath != wantKeyPath {
		t.Errorf("KeyPath = %q, want %q", account.KeyPath, wantKeyPath)
	}

	for _, role := range account.Roles {
		found := false
		for _, call := range runner.calls {
			joined := strings.Join(call, " ")
			if strings.Contains(joined, "--role "+role) && strings.Contains(joined, "serviceAccount:"+account.Email) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no binding call for role %s", role)
		}
	}
}

func TestCreateServiceAccountRetriesPropagation(t *testing.T) {
	runner := newFakeRunner()
	// The first two describes fail, as IAM propagation often does.
	runner.failuresLeft["iam service-accounts describe"] = 2

	p := noSleep(NewProvisionerWithRunner("my-project", runner))
	if _, err := p.CreateServiceAccount(context.Background(), AccountFastlane, ""); err != nil {
		t.Fatalf("CreateServiceAccount failed: %v", err)
	}

	if got := runner.countCalls("iam service-accounts describe"); got != 3 {
		t.Errorf("expected 3 describe calls (2 failures + 1 success), got %d", got)
	}
}

func TestCreateServiceAccountPropagationTimeout(t *testing.T) {
	runner := newFakeRunner()
	runner.failures["iam service-accounts describe"] = errors.New("NOT_FOUND")

	p := noSleep(NewProvisionerWithRunner("my-project", runner))
	_, err := p.CreateServiceAccount(context.Background(), AccountFastlane, "")
	if !errors.Is(err, devopserrors.ErrPropagationTimeout) {
		t.Fatalf("expected ErrPropagationTimeout, got %v", err)
	}

	if got := runner.countCalls("iam service-accounts describe"); got != propagationAttempts {
		t.Errorf("expected %d describe attempts, got %d", propagationAttempts, got)
	}

	// No role should be bound to an account that never propagated.
	if got := runner.countCalls("projects add-iam-policy-binding"); got != 0 {
		t.Errorf("expected no binding calls, got %d", got)
	}
}

func TestCreateServiceAccountSkipsKeyExportWithoutPath(t *testing.T) {
	runner := newFakeRunner()
	p := noSleep(NewProvisionerWithRunner("my-project", runner))

	account, err := p.CreateServiceAccount(context.Background(), AccountFastlane, "")
	if err != nil {
		t.Fatalf("CreateServiceAccount failed: %v", err)
	}
	if account.KeyPath != "" {
		t.Errorf("KeyPath = %q, want empty", account.KeyPath)
	}
	if got := runner.countCalls("iam service-accounts keys create"); got != 0 {
		t.Errorf("expected no key export calls, got %d", got)
	}
}
