package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var (
	auditVaultFile string
	auditAuditFile string
	auditLast      int
)

func init() {
	auditLogCmd.SilenceErrors = true
	auditLogCmd.SilenceUsage = true
	rootCmd.AddCommand(auditLogCmd)
	auditLogCmd.Flags().StringVar(&auditVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	auditLogCmd.Flags().StringVar(&auditAuditFile, "audit-file", "audit.log", "Path to the audit log file")
	auditLogCmd.Flags().IntVar(&auditLast, "last", 0, "Show only the last N entries (default: all)")
}

var auditLogCmd = &cobra.Command{
	Use:   "audit-log",
	Short: "View audit log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := vault.New(auditVaultFile, auditAuditFile)
		lines, err := v.AuditLog(auditLast)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	},
}
