// Package commands provides the CLI commands for the freezevet tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "freezevet [packages]",
	Short: "Report writes through frozen values",
	Long: `freezevet finds code that mutates a value wrapped in freeze.Freeze by
writing through the slice, map or pointer returned from Get.

Usage:
  freezevet                     Check ./... (shorthand)
  freezevet ./pkg/...           Check the given package patterns
  freezevet check -t ./...      Check including test files
  freezevet version             Print version

Environment:
  FREEZEVET_TESTS   default for --tests
  FREEZEVET_TAGS    default for --tags (comma-separated)`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

// Execute runs the root command and exits with the code of the outcome.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(report(rootCmd, err))
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	addCheckFlags(rootCmd)
}

// printErr writes a message to the command's error stream.
func printErr(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}
