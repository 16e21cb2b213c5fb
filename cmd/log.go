package cmd

import (
	"fmt"

	logger "github.com/abdushkur/dev-ops/internal/logging"
	"github.com/abdushkur/dev-ops/internal/ui"
	"github.com/abdushkur/dev-ops/internal/workflows"

	"github.com/spf13/cobra"
)

var logLimit int

func init() {
	LogCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "show at most this many entries (0 for all)")
	LogCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	LogCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

func resetLogCommandState() {
	logLimit = 20
}

var LogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the history of recorded operations",
	Long: `Shows the operations this tool has performed: secrets stored, API keys
created, service accounts provisioned. Secret values are never recorded.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		result, err := workflows.Log(cmd.Context(), workflows.LogOptions{Limit: logLimit})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read operation log: %v", err)
		}

		if len(result.Entries) == 0 {
			fmt.Println(ui.Info.Sprint("→") + " No operations recorded yet")
			return nil
		}

		for _, entry := range result.Entries {
			line := fmt.Sprintf("%s  %-24s", ui.Muted.Sprint(entry.Timestamp), entry.Operation)
			switch {
			case entry.Secret != "":
				line += " " + ui.Code.Sprint(entry.Secret) + " in " + entry.Repo
			case entry.SecretCnt > 0:
				line += fmt.Sprintf(" %d secret(s) to %s", entry.SecretCnt, entry.Repo)
			case entry.Account != "":
				line += " " + entry.Account
			case entry.KeyType != "":
				line += " " + entry.KeyType + " key in " + entry.Project
			}
			fmt.Println(line)
		}
		fmt.Println()
		fmt.Println(ui.Muted.Sprint(result.Path))
		return nil
	},
}
