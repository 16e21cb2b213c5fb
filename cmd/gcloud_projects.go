package cmd

import (
	"fmt"

	"github.com/abdushkur/dev-ops/internal/ui"
	"github.com/abdushkur/dev-ops/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the projects visible to the active gcloud account",
	Long: `Lists every Google Cloud project the operator's gcloud account can
see, marking the currently active one and the project this tool targets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting gcloud projects command")
		spinner, cleanup := startSpinner("Listing projects...", verbose)
		defer cleanup()

		result, err := workflows.ListProjects(cmd.Context(), workflows.ListProjectsOptions{
			ProjectFlag: projectFlag,
		})
		if err != nil {
			Logger.Errorf("Failed to list projects: %v", err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to list projects\n" +
				color.RedString("Error: ") + err.Error()
			return err
		}

		if len(result.Projects) == 0 {
			spinner.FinalMSG = ui.Info.Sprint("→") + " No projects visible to this account"
			return nil
		}

		finalMessage := ui.Success.Sprint("✓") + fmt.Sprintf(" %d project(s)\n", len(result.Projects))
		for _, project := range result.Projects {
			line := fmt.Sprintf("  %-24s %s", project.ProjectID, ui.Muted.Sprint(project.Name))
			switch project.ProjectID {
			case result.Active:
				line += " " + ui.Highlight.Sprint("(active)")
			case result.Target:
				line += " " + ui.Info.Sprint("(target)")
			}
			finalMessage += line + "\n"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
