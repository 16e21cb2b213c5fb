package main

import (
	"fmt"
	"os"

	"github.com/abdushkur/dev-ops/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devops",
	Short: "devops - A CLI for routine Google Cloud and GitHub administration.",
	Long: `devops automates the cloud-administration chores of this project:
rotating Google Cloud API keys, provisioning service accounts with fixed
IAM role sets, and managing GitHub Actions repository secrets.

Usage:
  devops <command> [flags]

Available Commands:
  secrets    Manage GitHub Actions repository secrets
  gcloud     Provision Google Cloud API keys and service accounts
  config     Manage saved defaults
  doctor     Check that the environment is ready for cloud operations
  log        Show the history of recorded operations

Run 'devops help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Run 'devops --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.SecretsCmd)
	rootCmd.AddCommand(cmd.GcloudCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
	rootCmd.AddCommand(cmd.DoctorCmd)
	rootCmd.AddCommand(cmd.LogCmd)

	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
