package cmd

import (
	logger "github.com/abdushkur/dev-ops/internal/logging"
	"github.com/spf13/cobra"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage saved defaults",
	Long: `Shows and edits the saved defaults (repository and project) so the
--repo and --project flags can be omitted on later runs. Defaults are
stored in config.toml under the user config directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing config command with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	ConfigCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetRepoCmd)
	ConfigCmd.AddCommand(configSetProjectCmd)
}
