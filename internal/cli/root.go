package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"secretvault/internal/log"
)

// Version is set by main.go.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vault",
	Short: "Secret Management Vault",
	Long: `vault is a local, file-backed secret store protected by a single
master password.

It keeps a JSON document on disk holding versioned, encrypted secret values
and path-based access policies, an append-only audit log of every operation,
and a seal/unseal lifecycle: while unsealed, the root key is kept in a
session file next to the vault file, and sealing deletes that file.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.LevelWarn
		if verbose {
			level = log.LevelDebug
		}
		log.SetLogger(log.NewSimpleLogger(os.Stderr, level))
		return nil
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug-level logging to stderr")
}

// Execute runs the CLI, returning the process exit code. Errors returned
// from a subcommand's RunE are printed as "Error: <message>", matching the
// original CLI's contract, rather than cobra's default usage dump.
func Execute(version string) int {
	Version = version
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}
