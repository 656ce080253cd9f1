package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var (
	deleteVaultFile string
	deleteAuditFile string
	deleteIdentity  string
)

func init() {
	deleteCmd.SilenceErrors = true
	deleteCmd.SilenceUsage = true
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVar(&deleteVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	deleteCmd.Flags().StringVar(&deleteAuditFile, "audit-file", "audit.log", "Path to the audit log file")
	deleteCmd.Flags().StringVar(&deleteIdentity, "identity", "", "Caller identity for access control")
	deleteCmd.MarkFlagRequired("identity")
}

var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete a secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := vault.New(deleteVaultFile, deleteAuditFile)
		msg, err := v.DeleteSecret(args[0], deleteIdentity)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}
