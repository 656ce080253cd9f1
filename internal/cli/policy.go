package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"secretvault/internal/vault"
)

var (
	addPolVaultFile    string
	addPolAuditFile    string
	addPolIdentity     string
	addPolPathPattern  string
	addPolCapabilities string

	rmPolVaultFile   string
	rmPolAuditFile   string
	rmPolIdentity    string
	rmPolPathPattern string
)

func init() {
	addPolicyCmd.SilenceErrors = true
	addPolicyCmd.SilenceUsage = true
	rootCmd.AddCommand(addPolicyCmd)
	addPolicyCmd.Flags().StringVar(&addPolVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	addPolicyCmd.Flags().StringVar(&addPolAuditFile, "audit-file", "audit.log", "Path to the audit log file")
	addPolicyCmd.Flags().StringVar(&addPolIdentity, "identity", "", "Identity the policy applies to")
	addPolicyCmd.Flags().StringVar(&addPolPathPattern, "path-pattern", "", "Path pattern, with optional * and ** wildcards")
	addPolicyCmd.Flags().StringVar(&addPolCapabilities, "capabilities", "", "Comma-separated capabilities (read, write, list, delete)")
	addPolicyCmd.MarkFlagRequired("identity")
	addPolicyCmd.MarkFlagRequired("path-pattern")
	addPolicyCmd.MarkFlagRequired("capabilities")

	removePolicyCmd.SilenceErrors = true
	removePolicyCmd.SilenceUsage = true
	rootCmd.AddCommand(removePolicyCmd)
	removePolicyCmd.Flags().StringVar(&rmPolVaultFile, "vault-file", "vault.enc", "Path to the vault file")
	removePolicyCmd.Flags().StringVar(&rmPolAuditFile, "audit-file", "audit.log", "Path to the audit log file")
	removePolicyCmd.Flags().StringVar(&rmPolIdentity, "identity", "", "Identity of the policy to remove")
	removePolicyCmd.Flags().StringVar(&rmPolPathPattern, "path-pattern", "", "Path pattern of the policy to remove")
	removePolicyCmd.MarkFlagRequired("identity")
	removePolicyCmd.MarkFlagRequired("path-pattern")
}

var addPolicyCmd = &cobra.Command{
	Use:   "add-policy",
	Short: "Add an access control policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		caps := make([]string, 0)
		for _, c := range strings.Split(addPolCapabilities, ",") {
			caps = append(caps, strings.TrimSpace(c))
		}

		v := vault.New(addPolVaultFile, addPolAuditFile)
		msg, err := v.AddPolicy(addPolIdentity, addPolPathPattern, caps)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

var removePolicyCmd = &cobra.Command{
	Use:   "remove-policy",
	Short: "Remove an access control policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := vault.New(rmPolVaultFile, rmPolAuditFile)
		msg, err := v.RemovePolicy(rmPolIdentity, rmPolPathPattern)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}
