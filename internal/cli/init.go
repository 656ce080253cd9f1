package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var (
	initVaultFile string
	initAuditFile string
	initPassword  string
)

func init() {
	initCmd.SilenceErrors = true
	initCmd.SilenceUsage = true
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	initCmd.Flags().StringVar(&initAuditFile, "audit-file", "audit.log", "Path to the audit log file")
	initCmd.Flags().StringVar(&initPassword, "password", "", "Master password (prompted interactively if omitted)")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		password := initPassword
		if password == "" {
			pw, err := ReadPasswordInteractive(true)
			if err != nil {
				return err
			}
			password = pw
		}

		v := vault.New(initVaultFile, initAuditFile)
		msg, err := v.Init(password)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}
