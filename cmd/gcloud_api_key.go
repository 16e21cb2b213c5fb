package cmd

import (
	"strings"

	"github.com/abdushkur/dev-ops/internal/gcloud"
	"github.com/abdushkur/dev-ops/internal/ui"
	"github.com/abdushkur/dev-ops/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var apiKeyCmd = &cobra.Command{
	Use:   "api-key <type>",
	Short: "Create an API key with a fixed restriction profile",
	Long: `Creates a Google Cloud API key restricted for one of the fixed
profiles: ` + strings.Join(gcloud.KeyTypes(), ", ") + `.

Browser keys are locked to the PROD_DOMAIN and DEV_DOMAIN referrers, the
ios key to IOS_BUNDLE_ID, and the android key to ANDROID_PACKAGE and
ANDROID_SHA1. Each profile also limits which APIs the key may call. The
key string is printed masked; the full value stays in the Cloud Console.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting gcloud api-key command for type %s", args[0])
		spinner, cleanup := startSpinner("Creating API key...", verbose)
		defer cleanup()

		result, err := workflows.CreateAPIKey(cmd.Context(), workflows.CreateAPIKeyOptions{
			ProjectFlag: projectFlag,
			Type:        args[0],
		})
		if err != nil {
			Logger.Errorf("Failed to create API key: %v", err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to create API key\n" +
				color.RedString("Error: ") + err.Error()
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Created " + ui.Code.Sprint(string(result.Type)) +
			" key in " + ui.Highlight.Sprint(result.Project) + "\n" +
			"  name: " + result.Key.Name + "\n" +
			"  key:  " + ui.MaskSecret(result.Key.KeyString)
		return nil
	},
}
