package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wasmpack-labs/wasmpack/internal/branding"
	"github.com/wasmpack-labs/wasmpack/internal/wizard"
)

var initYes bool

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Skip all prompts and write the manifest with defaults")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Interactively create a " + branding.ManifestFile() + " manifest",
	Long: `Walk through creating a ` + branding.ManifestFile() + ` file for the package in the
given directory (default: the current directory). An existing manifest is
loaded and edited in place; otherwise sensible defaults are derived from
the directory name.

With --yes, all prompts are skipped and the manifest is written as-is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving directory %s: %w", dir, err)
		}
		return wizard.Run(abs, initYes, os.Stdin, cmd.OutOrStdout())
	},
}
