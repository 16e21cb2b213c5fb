package cmd

import (
	"fmt"

	logger "github.com/abdushkur/dev-ops/internal/logging"
	"github.com/abdushkur/dev-ops/internal/ui"
	"github.com/abdushkur/dev-ops/internal/workflows"

	"github.com/spf13/cobra"
)

var DoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the environment is ready for cloud operations",
	Long: `Runs every environment check the other commands depend on: the .env
file, the GitHub token, the resolved repository, the gcloud binary, and
the resolved project. All checks run even when one fails; the exit status
is non-zero when anything is broken.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting doctor command")

		result, err := workflows.Doctor(cmd.Context(), workflows.DoctorOptions{
			RepoFlag:    repoFlag,
			ProjectFlag: projectFlag,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to run checks: %v", err)
		}

		for _, check := range result.Checks {
			mark := ui.Success.Sprint("✓")
			if !check.OK {
				mark = ui.Error.Sprint("✗")
			}
			fmt.Printf("%s %-16s %s\n", mark, check.Name, ui.Muted.Sprint(check.Detail))
		}

		fmt.Println()
		if result.Failed > 0 {
			fmt.Println(ui.Error.Sprint("✗") + fmt.Sprintf(" %d check(s) failed", result.Failed))
			return fmt.Errorf("%d check(s) failed", result.Failed)
		}
		fmt.Println(ui.Success.Sprint("✓") + " Environment is ready")
		return nil
	},
}

func init() {
	DoctorCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	DoctorCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	DoctorCmd.Flags().StringVarP(&repoFlag, "repo", "r", "", "target repository as owner/name")
	DoctorCmd.Flags().StringVarP(&projectFlag, "project", "p", "", "target Google Cloud project ID")
}
