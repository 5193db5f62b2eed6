package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/pkgq/internal/manager"
)

func newSearchCmd() *cobra.Command {
	var opts manager.SearchOptions
	var refresh bool
	cmd := &cobra.Command{
		Use:   "search <pattern>[@<version-range>]",
		Short: "Search packages by name and description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd, refresh)
			if err != nil {
				return err
			}
			return m.Search(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the raw results as JSON")
	cmd.Flags().BoolVar(&opts.Select, "select", false, "pick one result and show it")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "force the engine to refresh its package database")
	cmd.MarkFlagsMutuallyExclusive("json", "select")
	return cmd
}

func init() {
	rootCmd.AddCommand(newSearchCmd())
}
