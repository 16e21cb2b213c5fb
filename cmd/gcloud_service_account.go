package cmd

import (
	"strings"

	"github.com/abdushkur/dev-ops/internal/gcloud"
	"github.com/abdushkur/dev-ops/internal/ui"
	"github.com/abdushkur/dev-ops/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var serviceAccountKeyDir string

func init() {
	serviceAccountCmd.Flags().StringVar(&serviceAccountKeyDir, "key-dir", "", "directory to export the JSON key into (skipped when empty)")
}

func resetServiceAccountCommandState() {
	serviceAccountKeyDir = ""
}

var serviceAccountCmd = &cobra.Command{
	Use:   "service-account <type>",
	Short: "Create a service account with a fixed IAM role set",
	Long: `Creates a service account for one of the fixed profiles: ` +
		strings.Join(gcloud.AccountTypes(), ", ") + `.

The account gets a timestamped identifier so repeated runs never collide,
its profile's IAM roles are bound after the account has propagated, and
with --key-dir a JSON key named after the account is exported there.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting gcloud service-account command for type %s", args[0])
		spinner, cleanup := startSpinner("Creating service account...", verbose)
		defer cleanup()

		result, err := workflows.CreateServiceAccount(cmd.Context(), workflows.CreateServiceAccountOptions{
			ProjectFlag: projectFlag,
			Type:        args[0],
			KeyDir:      serviceAccountKeyDir,
		})
		if err != nil {
			Logger.Errorf("Failed to create service account: %v", err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to create service account\n" +
				color.RedString("Error: ") + err.Error()
			return err
		}

		account := result.Account
		finalMessage := ui.Success.Sprint("✓") + " Created " + ui.Code.Sprint(account.Email) +
			" in " + ui.Highlight.Sprint(result.Project) + "\n" +
			"  roles:"
		for _, role := range account.Roles {
			finalMessage += "\n    " + role
		}
		if account.KeyPath != "" {
			finalMessage += "\n  key: " + ui.Path.Sprint(account.KeyPath) + "\n" +
				ui.Warning.Sprint("⚠") + " The key file grants these roles; store it safely and never commit it"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
