package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wasmpack-labs/wasmpack/internal/manifest"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a manifest against the " + manifest.ManifestFileName + " schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path := manifest.PathInDirectory(dir)

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("%s has %d validation issue(s)", path, len(result.Issues))
	},
}
