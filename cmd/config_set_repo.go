package cmd

import (
	"fmt"

	"github.com/abdushkur/dev-ops/internal/configs"
	"github.com/abdushkur/dev-ops/internal/ui"

	"github.com/spf13/cobra"
)

var configSetRepoCmd = &cobra.Command{
	Use:   "set-repo <owner/repo>",
	Short: "Save a default repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set-repo command")

		repo, err := configs.SplitRepo(args[0])
		if err != nil {
			return Logger.ErrorfAndReturn("invalid repository: %v", err)
		}

		config, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load user config: %v", err)
		}

		config.Defaults.Repo = repo.String()
		if err := configs.SaveUserConfig(config); err != nil {
			return Logger.ErrorfAndReturn("failed to save user config: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Default repository set to " + ui.Highlight.Sprint(repo.String()))
		return nil
	},
}
