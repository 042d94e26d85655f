package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"passgen/internal/config"
	"passgen/internal/presenter"
)

// historyCommand constructs the 'history' subcommand that lists or clears
// previously generated passwords.
func historyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists recently generated passwords, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, _ := cmd.Flags().GetUint("limit")
			asJSON, _ := cmd.Flags().GetBool("json")
			clearAll, _ := cmd.Flags().GetBool("clear")

			svc, closeSvc, err := newService(ctx, cfg, nil)
			if err != nil {
				return err
			}
			defer closeSvc()

			if clearAll {
				n, err := svc.ClearHistory(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d entries\n", n)

				return err
			}

			entries, err := svc.History(ctx, limit)
			if err != nil {
				return err
			}

			var out presenter.HistoryPresenter = presenter.NewTerminal(cmd.OutOrStdout())
			if asJSON {
				out = presenter.NewJSON(cmd.OutOrStdout())
			}

			return out.PresentHistory(ctx, entries)
		},
	}

	cmd.Flags().Uint("limit", 0, "Maximum number of entries to list, 0 lists all")
	cmd.Flags().Bool("json", false, "Print entries as JSON")
	cmd.Flags().Bool("clear", false, "Delete every entry instead of listing")

	return cmd
}
