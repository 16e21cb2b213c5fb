package cmd

import (
	"fmt"

	"github.com/abdushkur/dev-ops/internal/github"
	"github.com/abdushkur/dev-ops/internal/utils"

	"github.com/spf13/cobra"
)

var sealPublicKey string

func init() {
	sealCmd.Flags().StringVar(&sealPublicKey, "key", "", "base64-encoded repository public key")
}

func resetSealCommandState() {
	sealPublicKey = ""
}

var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Seal a piped value against a repository public key",
	Long: `Reads a plaintext value from stdin, seals it against the given public
key, and prints the base64 ciphertext on stdout. With no --key the value
is printed base64-encoded without encryption.

  echo -n "hunter2" | devops secrets seal --key "$PUBLIC_KEY"

The output is exactly what the GitHub API expects as an encrypted secret
value, so the command composes with curl and gh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting secrets seal command")

		plaintext, err := utils.ReadStdin()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read plaintext: %v", err)
		}

		sealed, err := github.Seal(plaintext, sealPublicKey)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to seal value: %v", err)
		}

		if !sealed.Encrypted {
			Logger.WarnfUser("no public key given; output is base64 only, not encrypted")
		}

		fmt.Println(sealed.Value)
		return nil
	},
}
