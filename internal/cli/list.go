package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var (
	listVaultFile string
	listAuditFile string
	listIdentity  string
)

func init() {
	listCmd.SilenceErrors = true
	listCmd.SilenceUsage = true
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	listCmd.Flags().StringVar(&listAuditFile, "audit-file", "audit.log", "Path to the audit log file")
	listCmd.Flags().StringVar(&listIdentity, "identity", "", "Caller identity for access control")
	listCmd.MarkFlagRequired("identity")
}

var listCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List secrets by prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		v := vault.New(listVaultFile, listAuditFile)
		paths, err := v.ListSecrets(listIdentity, prefix)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("No secrets found.")
			return nil
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	},
}
