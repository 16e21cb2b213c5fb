package cmd

import (
	"errors"

	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
	"github.com/abdushkur/dev-ops/internal/ui"
	"github.com/abdushkur/dev-ops/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Check whether a secret exists in the target repository",
	Long: `Checks whether the named secret exists. Exits with status 0 when it
does and status 1 when it does not, so the command works in scripts:

  devops secrets check FIREBASE_TOKEN && echo present`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting secrets check command for %s", args[0])
		spinner, cleanup := startSpinner("Checking repository secrets...", verbose)
		defer cleanup()

		result, err := workflows.Check(cmd.Context(), workflows.CheckOptions{
			RepoFlag: repoFlag,
			Name:     args[0],
		})
		if err != nil {
			if errors.Is(err, devopserrors.ErrSecretNotFound) {
				spinner.FinalMSG = color.RedString("✗") + " " + ui.Code.Sprint(args[0]) +
					" is not set in " + ui.Highlight.Sprint(result.Repo.String())
				return err
			}
			Logger.Errorf("Failed to check secret: %v", err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to check secret\n" +
				color.RedString("Error: ") + err.Error()
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " " + ui.Code.Sprint(result.Name) +
			" is set in " + ui.Highlight.Sprint(result.Repo.String())
		return nil
	},
}
