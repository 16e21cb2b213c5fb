package github

import (
	"fmt"
	"regexp"
	"strings"

	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
)

// secretNameRegex matches the names GitHub accepts for Actions secrets:
// alphanumeric and underscores, not starting with a digit.
var secretNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateSecretName rejects names GitHub would refuse, before any API
// call is made. The GITHUB_ prefix is reserved by GitHub itself.
func ValidateSecretName(name string) error {
	if !secretNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q (use letters, digits, and underscores, not starting with a digit)",
			devopserrors.ErrInvalidSecretName, name)
	}
	if strings.HasPrefix(strings.ToUpper(name), "GITHUB_") {
		return fmt.Errorf("%w: %q (the GITHUB_ prefix is reserved)", devopserrors.ErrInvalidSecretName, name)
	}
	return nil
}
