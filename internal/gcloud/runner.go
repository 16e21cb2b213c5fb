package gcloud

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
)

// Runner executes gcloud subcommands and returns their trimmed stdout.
// The exec-backed implementation is replaced by a fake in tests.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by the gcloud binary on PATH.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "gcloud", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		// Check if the gcloud command is available
		if strings.Contains(err.Error(), "executable file not found") {
			return "", fmt.Errorf("%w: please install the Google Cloud SDK", devopserrors.ErrGcloudNotFound)
		}
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			message = err.Error()
		}
		return "", fmt.Errorf("%w: gcloud %s: %s", devopserrors.ErrGcloudFailed, strings.Join(args, " "), message)
	}

	return strings.TrimSpace(string(output)), nil
}

// Available reports whether the gcloud binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("gcloud")
	return err == nil
}
