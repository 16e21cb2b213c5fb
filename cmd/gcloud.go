package cmd

import (
	logger "github.com/abdushkur/dev-ops/internal/logging"
	"github.com/spf13/cobra"
)

var (
	projectFlag string

	GcloudCmd = &cobra.Command{
		Use:   "gcloud",
		Short: "Provision Google Cloud API keys and service accounts",
		Long: `Wraps the gcloud CLI for the routine provisioning chores of this
project: creating API keys with fixed restriction profiles and service
accounts with fixed IAM role sets.

The target project is chosen with strict precedence: the --project flag,
then PROJECT_ID from the environment, then the saved default. The active
gcloud project is switched for the duration of each operation and
restored afterwards.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing gcloud command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	GcloudCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	GcloudCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	GcloudCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "target Google Cloud project ID")

	GcloudCmd.AddCommand(apiKeyCmd)
	GcloudCmd.AddCommand(serviceAccountCmd)
	GcloudCmd.AddCommand(projectsCmd)
}
