package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"martianoff/freezie/freezeerr"
	"martianoff/freezie/internal/vet"
)

const (
	exitFindings  = 1
	exitLoadError = 2
)

var (
	checkDir   string
	checkTests bool
	checkTags  []string
)

var checkCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Check packages for writes through frozen values",
	Long: `Check loads the packages matching the given patterns (default ./...)
and reports every write that reaches a frozen value through Freeze.Get.

Findings are printed as file:line:col: message. The exit code is 1 when
anything is found and 2 when the packages cannot be loaded.

Examples:
  freezevet check                  # Check ./...
  freezevet check -t ./freeze      # Include test files
  freezevet check -C ../svc ./...  # Check another module
  freezevet check --tags=e2e ./... # Use build tags`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	addCheckFlags(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&checkDir, "dir", "C", "", "Directory to resolve package patterns in")
	cmd.Flags().BoolVarP(&checkTests, "tests", "t", false, "Include test files")
	cmd.Flags().StringSliceVar(&checkTags, "tags", nil, "Comma-separated build tags")
}

// checkConfig merges flags over the environment defaults.
func checkConfig(cmd *cobra.Command) *vet.Config {
	cfg := vet.DefaultConfig()
	if cmd.Flags().Changed("dir") {
		cfg.Dir = checkDir
	}
	if cmd.Flags().Changed("tests") {
		cfg.Tests = checkTests
	}
	if cmd.Flags().Changed("tags") {
		cfg.Tags = checkTags
	}
	return cfg
}

func runCheck(cmd *cobra.Command, args []string) error {
	return vet.Check(cmd.Context(), checkConfig(cmd), args...)
}

// report prints err and returns the process exit code for it.
func report(cmd *cobra.Command, err error) int {
	var multi *freezeerr.MultiError
	if errors.As(err, &multi) {
		for _, e := range multi.Errors {
			var m *freezeerr.MutationError
			if errors.As(e, &m) {
				printErr(cmd, "%s: %s\n", m.Position(), m.Msg)
				continue
			}
			printErr(cmd, "%v\n", e)
		}
		return exitFindings
	}

	var loadErr *freezeerr.LoadError
	if errors.As(err, &loadErr) {
		printErr(cmd, "Error: %v\n", loadErr)
		return exitLoadError
	}

	printErr(cmd, "Error: %v\n", err)
	return exitLoadError
}
