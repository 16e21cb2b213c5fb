package errors

import "errors"

// Configuration errors indicate missing or unusable local configuration.
// Commands fail fast on these before touching any cloud API.
var (
	// ErrMissingToken indicates GITHUB_TOKEN is not set in the environment or .env file.
	ErrMissingToken = errors.New("GITHUB_TOKEN is not set")

	// ErrMissingProject indicates PROJECT_ID is not set in the environment or .env file.
	ErrMissingProject = errors.New("PROJECT_ID is not set")

	// ErrRepoNotResolved indicates the GitHub owner/repo could not be determined
	// from the --repo flag, the environment, the saved config, or the git remote.
	ErrRepoNotResolved = errors.New("could not determine GitHub repository")

	// ErrInvalidRepo indicates a repository argument was not in owner/repo form.
	ErrInvalidRepo = errors.New("repository must be in owner/repo form")

	// ErrDotenvNotFound indicates no .env file was found in this or any parent directory.
	ErrDotenvNotFound = errors.New("no .env file found")

	// ErrMissingEnvKeys indicates required keys were absent from the loaded environment.
	ErrMissingEnvKeys = errors.New("required environment keys are missing")
)

// Input errors indicate the user asked for something this tool does not know.
var (
	// ErrUnknownKeyType indicates the API key type is not one of the fixed profiles.
	ErrUnknownKeyType = errors.New("unknown API key type")

	// ErrUnknownAccountType indicates the service account type is not one of the fixed profiles.
	ErrUnknownAccountType = errors.New("unknown service account type")

	// ErrInvalidSecretName indicates the secret name is not a valid GitHub Actions secret name.
	ErrInvalidSecretName = errors.New("invalid secret name")

	// ErrEmptySecretValue indicates no secret value was provided by argument, stdin, or prompt.
	ErrEmptySecretValue = errors.New("secret value is empty")
)

// API errors indicate a cloud call was made and failed.
var (
	// ErrSecretNotFound indicates the named secret does not exist in the repository.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrGcloudNotFound indicates the gcloud binary is not on PATH.
	ErrGcloudNotFound = errors.New("gcloud command not found")

	// ErrGcloudFailed indicates a gcloud subcommand exited non-zero.
	ErrGcloudFailed = errors.New("gcloud command failed")

	// ErrPropagationTimeout indicates a created service account never became
	// visible within the fixed retry budget.
	ErrPropagationTimeout = errors.New("service account did not propagate in time")

	// ErrGitHubAPIFailed indicates a GitHub REST call returned an error.
	ErrGitHubAPIFailed = errors.New("GitHub API call failed")
)
