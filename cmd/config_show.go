package cmd

import (
	"fmt"

	"github.com/abdushkur/dev-ops/internal/configs"
	"github.com/abdushkur/dev-ops/internal/ui"

	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		config, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load user config: %v", err)
		}

		repo := config.Defaults.Repo
		if repo == "" {
			repo = ui.Muted.Sprint("not set")
		}
		project := config.Defaults.Project
		if project == "" {
			project = ui.Muted.Sprint("not set")
		}

		fmt.Println("Saved defaults:")
		fmt.Println("  repository: " + repo)
		fmt.Println("  project:    " + project)
		fmt.Println()
		fmt.Println(ui.Muted.Sprint(configs.UserDevopsSettings.UserConfigsPath))
		return nil
	},
}
