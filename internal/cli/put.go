package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var (
	putVaultFile string
	putAuditFile string
	putIdentity  string
)

func init() {
	putCmd.SilenceErrors = true
	putCmd.SilenceUsage = true
	rootCmd.AddCommand(putCmd)
	putCmd.Flags().StringVar(&putVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	putCmd.Flags().StringVar(&putAuditFile, "audit-file", "audit.log", "Path to the audit log file")
	putCmd.Flags().StringVar(&putIdentity, "identity", "", "Caller identity for access control")
	putCmd.MarkFlagRequired("identity")
}

var putCmd = &cobra.Command{
	Use:   "put <path> <value>",
	Short: "Store or update a secret",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := vault.New(putVaultFile, putAuditFile)
		msg, err := v.PutSecret(args[0], args[1], putIdentity)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}
