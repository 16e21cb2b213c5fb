package cmd

import (
	"fmt"

	"github.com/abdushkur/dev-ops/internal/configs"
	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
	"github.com/abdushkur/dev-ops/internal/ui"
	"github.com/abdushkur/dev-ops/internal/utils"
	"github.com/abdushkur/dev-ops/internal/workflows"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pushAll bool

func init() {
	pushCmd.Flags().BoolVar(&pushAll, "all", false, "push every key from the .env file without prompting")
}

func resetPushCommandState() {
	pushAll = false
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push values from the .env file as repository secrets",
	Long: `Loads the nearest .env file and stores its values as Actions secrets.

Without --all, an interactive menu lists the keys the file defines; pick
one by number, push everything with 'a', or leave with 'q'. Keys with
empty values are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting secrets push command")

		envPath, err := configs.FindDotenv()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to look for .env file: %v", err)
		}
		if envPath == "" {
			fmt.Println(ui.Error.Sprint("✗") + " No .env file found in this directory or any parent")
			fmt.Println(ui.Info.Sprint("→") + " Create one or run from inside the project")
			return devopserrors.ErrDotenvNotFound
		}

		keys, err := configs.LoadDotenv(envPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load %s: %v", envPath, err)
		}
		if len(keys) == 0 {
			fmt.Println(ui.Warning.Sprint("⚠") + " " + ui.Path.Sprint(envPath) + " defines no keys")
			return nil
		}
		Logger.Debugf("Loaded %d keys from %s", len(keys), envPath)

		selected := keys
		if !pushAll {
			selected, err = selectKeysToPush(keys, envPath)
			if err != nil {
				return err
			}
			if len(selected) == 0 {
				fmt.Println(ui.Info.Sprint("→") + " Nothing selected, nothing pushed")
				return nil
			}
		}

		spinner, cleanup := startSpinner("Pushing secrets...", verbose)
		defer cleanup()

		result, err := workflows.Push(cmd.Context(), workflows.PushOptions{
			RepoFlag: repoFlag,
			Keys:     selected,
		})
		if err != nil {
			Logger.Errorf("Failed to push secrets: %v", err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to push secrets\n" +
				color.RedString("Error: ") + err.Error()
			return err
		}

		finalMessage := ui.Success.Sprint("✓") + " " +
			fmt.Sprintf("Pushed %d secret(s) to %s", len(result.Pushed), ui.Highlight.Sprint(result.Repo.String()))
		for _, pushed := range result.Pushed {
			finalMessage += "\n  " + ui.Code.Sprint(pushed.Name)
			if !pushed.Encrypted {
				finalMessage += " " + ui.Warning.Sprint("(base64 fallback)")
			}
		}
		if len(result.Skipped) > 0 {
			finalMessage += "\n" + ui.Muted.Sprintf("  skipped (empty or invalid): %v", result.Skipped)
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}

// selectKeysToPush shows the interactive key menu and returns the chosen
// keys. Requires a terminal on stdin.
func selectKeysToPush(keys []string, envPath string) ([]string, error) {
	if !utils.IsTerminal() {
		return nil, fmt.Errorf("stdin is not a terminal (hint: use --all to push every key)")
	}

	banner := figure.NewColorFigure("devops", "alligator2", "green", true)
	banner.Print()
	fmt.Println()
	fmt.Println("Keys defined in " + ui.Path.Sprint(envPath) + ":")
	fmt.Println()
	for i, key := range keys {
		fmt.Printf("  %2d) %s\n", i+1, ui.Code.Sprint(key))
	}
	fmt.Println()

	index, all, quit, err := utils.ReadMenuSelection("Push which key? (number, 'a' for all, 'q' to quit): ")
	if err != nil {
		return nil, err
	}
	switch {
	case quit:
		return nil, nil
	case all:
		return keys, nil
	case index < 1 || index > len(keys):
		return nil, fmt.Errorf("selection %d is out of range (1-%d)", index, len(keys))
	}
	return []string{keys[index-1]}, nil
}
