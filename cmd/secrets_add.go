package cmd

import (
	"github.com/abdushkur/dev-ops/internal/ui"
	"github.com/abdushkur/dev-ops/internal/utils"
	"github.com/abdushkur/dev-ops/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> [value]",
	Short: "Store a secret in the target repository",
	Long: `Encrypts a value against the repository's public key and stores it as
an Actions secret, creating or overwriting it.

The value comes from the second argument, from stdin when piped, or from a
hidden interactive prompt when neither is given:

  devops secrets add FIREBASE_TOKEN abc123
  cat token.txt | devops secrets add FIREBASE_TOKEN
  devops secrets add FIREBASE_TOKEN`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting secrets add command for %s", args[0])

		value, err := resolveSecretValue(args)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read secret value: %v", err)
		}

		spinner, cleanup := startSpinner("Storing repository secret...", verbose)
		defer cleanup()

		result, err := workflows.Add(cmd.Context(), workflows.AddOptions{
			RepoFlag: repoFlag,
			Name:     args[0],
			Value:    value,
		})
		if err != nil {
			Logger.Errorf("Failed to store secret: %v", err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to store " + ui.Code.Sprint(args[0]) + "\n" +
				color.RedString("Error: ") + err.Error()
			return err
		}

		finalMessage := ui.Success.Sprint("✓") + " Stored " + ui.Code.Sprint(result.Name) +
			" in " + ui.Highlight.Sprint(result.Repo.String())
		if !result.Encrypted {
			finalMessage += "\n" + ui.Warning.Sprint("⚠") +
				" Repository published no public key; value was stored base64-encoded"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}

// resolveSecretValue picks the secret value source: the positional
// argument, piped stdin, or a hidden terminal prompt.
func resolveSecretValue(args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}

	if !utils.IsTerminal() {
		Logger.Debugf("Reading secret value from stdin")
		data, err := utils.ReadStdin()
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	Logger.Debugf("Prompting for secret value")
	value, err := utils.ReadSecretValue("Enter value for " + args[0] + ": ")
	if err != nil {
		return "", err
	}
	return string(value), nil
}
