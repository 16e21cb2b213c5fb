package gcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Provisioner wraps gcloud subcommands against a single target project.
type Provisioner struct {
	runner  Runner
	project string

	// sleep is replaced in tests so propagation polling does not wait.
	sleep func(time.Duration)
}

// NewProvisioner builds a Provisioner for the target project using the
// gcloud binary on PATH.
func NewProvisioner(project string) *Provisioner {
	return NewProvisionerWithRunner(project, NewRunner())
}

// NewProvisionerWithRunner builds a Provisioner over a custom runner.
// This is primarily used for testing with a fake runner.
func NewProvisionerWithRunner(project string, runner Runner) *Provisioner {
	return &Provisioner{
		runner:  runner,
		project: project,
		sleep:   time.Sleep,
	}
}

// Project returns the target project ID.
func (p *Provisioner) Project() string {
	return p.project
}

// ActiveProject returns the project currently active in the gcloud config.
// Returns an empty string when no project is set.
func (p *Provisioner) ActiveProject(ctx context.Context) (string, error) {
	output, err := p.runner.Run(ctx, "config", "get-value", "project")
	if err != nil {
		return "", fmt.Errorf("failed to read active project: %w", err)
	}
	if output == "(unset)" {
		return "", nil
	}
	return output, nil
}

// SetProject switches the gcloud config to the given project.
func (p *Provisioner) SetProject(ctx context.Context, project string) error {
	if _, err := p.runner.Run(ctx, "config", "set", "project", project); err != nil {
		return fmt.Errorf("failed to set project %s: %w", project, err)
	}
	return nil
}

// UnsetProject clears the active project from the gcloud config.
func (p *Provisioner) UnsetProject(ctx context.Context) error {
	if _, err := p.runner.Run(ctx, "config", "unset", "project"); err != nil {
		return fmt.Errorf("failed to unset project: %w", err)
	}
	return nil
}

// ProjectInfo describes one project the operator's account can see.
type ProjectInfo struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
}

// ListProjects returns the projects visible to the active gcloud account.
func (p *Provisioner) ListProjects(ctx context.Context) ([]ProjectInfo, error) {
	output, err := p.runner.Run(ctx, "projects", "list", "--format", "json")
	if err != nil {
		return nil, err
	}

	var projects []ProjectInfo
	if err := json.Unmarshal([]byte(output), &projects); err != nil {
		return nil, fmt.Errorf("failed to parse projects list output: %w", err)
	}
	return projects, nil
}

// WithProject runs fn with the gcloud config switched to the target
// project, restoring the previous state afterwards even when fn fails.
// A config with no active project is unset again on exit. No switch
// happens when the target is already active.
func (p *Provisioner) WithProject(ctx context.Context, fn func(context.Context) error) error {
	original, err := p.ActiveProject(ctx)
	if err != nil {
		return err
	}

	if original == p.project {
		return fn(ctx)
	}

	if err := p.SetProject(ctx, p.project); err != nil {
		return err
	}

	fnErr := fn(ctx)

	var restoreErr error
	if original == "" {
		restoreErr = p.UnsetProject(ctx)
	} else {
		restoreErr = p.SetProject(ctx, original)
	}
	if restoreErr != nil {
		if fnErr != nil {
			return fnErr
		}
		return fmt.Errorf("operation succeeded but restoring project failed: %w", restoreErr)
	}

	return fnErr
}
