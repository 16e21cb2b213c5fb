package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
	"github.com/joho/godotenv"
)

// Environment keys this tool understands. Any other key found in the .env
// file is still offered by the interactive push menu.
const (
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubOwner    = "GITHUB_OWNER"
	EnvGitHubRepo     = "GITHUB_REPO"
	EnvProjectID      = "PROJECT_ID"
	EnvProjectNumber  = "PROJECT_NUMBER"
	EnvProdDomain     = "PROD_DOMAIN"
	EnvDevDomain      = "DEV_DOMAIN"
	EnvAndroidPackage = "ANDROID_PACKAGE"
	EnvAndroidSHA1    = "ANDROID_SHA1"
	EnvIOSBundleID    = "IOS_BUNDLE_ID"
)

// FindDotenv traverses up directories from the working directory looking
// for a .env file. Returns the file path if found, empty string otherwise.
// Stops searching when it reaches one level above the user's home directory.
func FindDotenv() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	for {
		// Stop searching at one level above home directory
		if currentDir == filepath.Dir(homeDir) {
			return "", nil
		}

		envPath := filepath.Join(currentDir, ".env")
		fileInfo, err := os.Stat(envPath)
		// No error means the path exists
		if err == nil {
			if !fileInfo.IsDir() {
				return envPath, nil
			}
		} else if !os.IsNotExist(err) {
			// Return any error that's not "file not found" (like permission issues)
			return "", fmt.Errorf("error checking for .env file at %s: %w", currentDir, err)
		}

		parentDir := filepath.Dir(currentDir)

		// If we've reached the filesystem root and haven't found a .env file
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// LoadDotenv reads the .env file at path and exports its variables into
// the process environment. Variables that are already exported keep their
// existing values, so the real environment always wins over the file.
// Returns the keys defined by the file, sorted.
func LoadDotenv(path string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	keys := make([]string, 0, len(values))
	for key, value := range values {
		keys = append(keys, key)
		if _, exported := os.LookupEnv(key); !exported {
			if err := os.Setenv(key, value); err != nil {
				return nil, fmt.Errorf("failed to export %s: %w", key, err)
			}
		}
	}
	sort.Strings(keys)

	return keys, nil
}

// LoadEnvironment discovers and loads the nearest .env file, then verifies
// the required keys are present in the environment. A missing .env file is
// only an error when required keys end up absent.
func LoadEnvironment(required ...string) ([]string, error) {
	var keys []string

	envPath, err := FindDotenv()
	if err != nil {
		return nil, err
	}
	if envPath != "" {
		keys, err = LoadDotenv(envPath)
		if err != nil {
			return nil, err
		}
	}

	if err := RequireEnv(required...); err != nil {
		return keys, err
	}
	return keys, nil
}

// RequireEnv fails fast when any of the given keys is unset or empty.
func RequireEnv(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", devopserrors.ErrMissingEnvKeys, strings.Join(missing, ", "))
	}
	return nil
}
