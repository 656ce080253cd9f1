package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var statusVaultFile string

func init() {
	statusCmd.SilenceErrors = true
	statusCmd.SilenceUsage = true
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVar(&statusVaultFile, "vault-file", "vault.enc", "Path to the vault file")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vault status",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := vault.New(statusVaultFile, "")
		status, err := v.Status()
		if err != nil {
			return err
		}
		fmt.Printf("Status: %s\n", status)
		return nil
	},
}
