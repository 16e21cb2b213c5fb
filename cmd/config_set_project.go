package cmd

import (
	"fmt"

	"github.com/abdushkur/dev-ops/internal/configs"
	"github.com/abdushkur/dev-ops/internal/ui"

	"github.com/spf13/cobra"
)

var configSetProjectCmd = &cobra.Command{
	Use:   "set-project <project-id>",
	Short: "Save a default Google Cloud project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set-project command")

		config, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load user config: %v", err)
		}

		config.Defaults.Project = args[0]
		if err := configs.SaveUserConfig(config); err != nil {
			return Logger.ErrorfAndReturn("failed to save user config: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Default project set to " + ui.Highlight.Sprint(args[0]))
		return nil
	},
}
