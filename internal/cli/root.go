package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pyoutline/internal/outline"
)

// rootCmd prints the outline of a single Python file.
var rootCmd = &cobra.Command{
	Use:   "pyoutline <path>",
	Short: "Print an outline of a Python module (function signatures only)",
	Long: `pyoutline prints a Python module with every function and method body
replaced by "(implementation not shown)".

Kept: class and function signatures with their decorators, module, class and
function docstrings, and comments that start at column 0 outside function
bodies. Everything else (imports, assignments, nested classes) is dropped.

Example:
  pyoutline path/to/module.py`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runOutline,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runOutline(cmd *cobra.Command, args []string) error {
	out, err := outline.File(outline.New(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
