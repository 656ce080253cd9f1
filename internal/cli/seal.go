package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var (
	sealVaultFile string
	sealAuditFile string
)

func init() {
	sealCmd.SilenceErrors = true
	sealCmd.SilenceUsage = true
	rootCmd.AddCommand(sealCmd)
	sealCmd.Flags().StringVar(&sealVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	sealCmd.Flags().StringVar(&sealAuditFile, "audit-file", "audit.log", "Path to the audit log file")
}

var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Seal the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := vault.New(sealVaultFile, sealAuditFile)
		msg, err := v.Seal()
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}
