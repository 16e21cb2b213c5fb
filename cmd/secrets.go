package cmd

import (
	logger "github.com/abdushkur/dev-ops/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	debug    bool
	repoFlag string
	Logger   logger.Logger

	SecretsCmd = &cobra.Command{
		Use:   "secrets",
		Short: "Manage GitHub Actions repository secrets",
		Long: `Lists, checks, and stores Actions secrets of the target repository.

The repository is chosen with strict precedence: the --repo flag, then
GITHUB_OWNER and GITHUB_REPO from the environment, then the saved default,
then the origin remote of the enclosing git repository.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing secrets command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	SecretsCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SecretsCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	SecretsCmd.PersistentFlags().StringVarP(&repoFlag, "repo", "r", "", "target repository as owner/name")

	SecretsCmd.AddCommand(listCmd)
	SecretsCmd.AddCommand(checkCmd)
	SecretsCmd.AddCommand(addCmd)
	SecretsCmd.AddCommand(pushCmd)
	SecretsCmd.AddCommand(sealCmd)
}

// Helper functions for testing

// GetSecretsCmd returns the SecretsCmd for testing.
func GetSecretsCmd() *cobra.Command {
	return SecretsCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	repoFlag = ""
	projectFlag = ""
	resetPushCommandState()
	resetSealCommandState()
	resetServiceAccountCommandState()
	resetLogCommandState()
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
