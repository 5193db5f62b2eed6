package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate merged configuration against the JSON Schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
		return err
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
