package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wasmpack-labs/wasmpack/internal/config"
	"github.com/wasmpack-labs/wasmpack/internal/scaffold"
	"github.com/wasmpack-labs/wasmpack/internal/wizard"
)

var newDir string

func init() {
	newCmd.Flags().StringVar(&newDir, "dir", "", "Target directory (default: ./<name>)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a directory with a template manifest for a new package",
	Long: `Create a new package directory containing a minimal template manifest.
The package name is namespaced under the configured registry.owner, if any.
Fails if the target directory already contains a manifest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := wizard.ValidateName(args[0])
		if err != nil {
			return err
		}

		config.Load()
		owner := config.Get("registry.owner")

		dir := newDir
		if dir == "" {
			dir = name
		}

		path, err := scaffold.Create(dir, owner, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}
