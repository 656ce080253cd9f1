package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var (
	unsealVaultFile string
	unsealAuditFile string
	unsealPassword  string
)

func init() {
	unsealCmd.SilenceErrors = true
	unsealCmd.SilenceUsage = true
	rootCmd.AddCommand(unsealCmd)
	unsealCmd.Flags().StringVar(&unsealVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	unsealCmd.Flags().StringVar(&unsealAuditFile, "audit-file", "audit.log", "Path to the audit log file")
	unsealCmd.Flags().StringVar(&unsealPassword, "password", "", "Master password (prompted interactively if omitted)")
}

var unsealCmd = &cobra.Command{
	Use:   "unseal",
	Short: "Unseal the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		password := unsealPassword
		if password == "" {
			pw, err := ReadPasswordInteractive(false)
			if err != nil {
				return err
			}
			password = pw
		}

		v := vault.New(unsealVaultFile, unsealAuditFile)
		msg, err := v.Unseal(password)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}
