package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/pkgq/internal/manager"
)

func newShowCmd() *cobra.Command {
	var opts manager.ShowOptions
	var refresh bool
	cmd := &cobra.Command{
		Use:   "show [<input>:]<package>",
		Short: "Show the description and versions of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd, refresh)
			if err != nil {
				return err
			}
			return m.Show(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.All, "all", false, "list every version")
	cmd.Flags().BoolVar(&opts.Table, "table", false, "list every version as a table")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "force the engine to refresh its package database")
	return cmd
}

func init() {
	rootCmd.AddCommand(newShowCmd())
}
