package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var (
	getVaultFile string
	getAuditFile string
	getIdentity  string
	getVersion   int
)

func init() {
	getCmd.SilenceErrors = true
	getCmd.SilenceUsage = true
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVar(&getVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	getCmd.Flags().StringVar(&getAuditFile, "audit-file", "audit.log", "Path to the audit log file")
	getCmd.Flags().StringVar(&getIdentity, "identity", "", "Caller identity for access control")
	getCmd.Flags().IntVar(&getVersion, "version", 0, "Specific version to retrieve (default: latest)")
	getCmd.MarkFlagRequired("identity")
}

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Retrieve a secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var version *int
		if cmd.Flags().Changed("version") {
			version = &getVersion
		}

		v := vault.New(getVaultFile, getAuditFile)
		result, err := v.GetSecret(args[0], getIdentity, version)
		if err != nil {
			return err
		}
		fmt.Printf("Path: %s\n", result.Path)
		fmt.Printf("Version: %d\n", result.Version)
		fmt.Printf("Value: %s\n", result.Value)
		return nil
	},
}
