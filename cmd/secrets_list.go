package cmd

import (
	"fmt"

	"github.com/abdushkur/dev-ops/internal/ui"
	"github.com/abdushkur/dev-ops/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the Actions secrets of the target repository",
	Long: `Lists the names and last-update times of every Actions secret in the
target repository. Secret values are never readable back from GitHub.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting secrets list command")
		spinner, cleanup := startSpinner("Fetching repository secrets...", verbose)
		defer cleanup()

		result, err := workflows.List(cmd.Context(), workflows.ListOptions{RepoFlag: repoFlag})
		if err != nil {
			Logger.Errorf("Failed to list secrets: %v", err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to list secrets\n" +
				color.RedString("Error: ") + err.Error()
			return err
		}

		if len(result.Secrets) == 0 {
			spinner.FinalMSG = ui.Info.Sprint("→") + " No secrets in " + ui.Highlight.Sprint(result.Repo.String())
			return nil
		}

		finalMessage := ui.Success.Sprint("✓") + " " +
			fmt.Sprintf("%d secret(s) in %s\n", len(result.Secrets), ui.Highlight.Sprint(result.Repo.String()))
		for _, secret := range result.Secrets {
			finalMessage += fmt.Sprintf("  %-32s %s\n", secret.Name, ui.Muted.Sprint(secret.UpdatedAt))
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
