package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"passgen/internal/config"
	"passgen/internal/generator"
	"passgen/internal/presenter"
	"passgen/pkg/logger"
)

// generateCommand constructs the 'generate' subcommand that prints a batch of
// random passwords and records them in the history.
func generateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generates random passwords",
		Example: "  passgen generate -l 24 -n 3 --classes lowercase,digits --copy",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			length, _ := cmd.Flags().GetInt("length")
			count, _ := cmd.Flags().GetInt("count")
			names, _ := cmd.Flags().GetStringSlice("classes")
			noScore, _ := cmd.Flags().GetBool("no-score")
			asJSON, _ := cmd.Flags().GetBool("json")
			copyToClipboard, _ := cmd.Flags().GetBool("copy")

			classes, err := generator.ParseClasses(names)
			if err != nil {
				return err
			}

			svc, closeSvc, err := newService(ctx, cfg, nil)
			if err != nil {
				return err
			}
			defer closeSvc()

			passwords, err := svc.Generate(ctx, generator.Request{
				Length:  length,
				Count:   count,
				Classes: classes,
				Score:   !noScore,
			})
			if err != nil {
				return err
			}

			var out presenter.Presenter = presenter.NewTerminal(cmd.OutOrStdout())
			if asJSON {
				out = presenter.NewJSON(cmd.OutOrStdout())
			}
			if err := out.Present(ctx, passwords); err != nil {
				return err
			}

			// the passwords are already printed, a clipboard failure is not fatal
			if copyToClipboard {
				if err := presenter.NewClipboard().Present(ctx, passwords); err != nil {
					logger.Warn(ctx, "could not copy passwords", zap.Error(err))
					fmt.Fprintln(cmd.ErrOrStderr(), "could not copy passwords to the clipboard") //nolint: forbidigo
				}
			}

			return nil
		},
	}

	cmd.Flags().IntP("length", "l", cfg.Generator.Length, "Password length")
	cmd.Flags().IntP("count", "n", cfg.Generator.Count, "Number of passwords to generate")
	cmd.Flags().StringSlice("classes", cfg.Generator.Classes,
		"Character classes to draw from (lowercase, uppercase, digits, symbols)")
	cmd.Flags().Bool("no-score", false, "Do not label passwords with their strength")
	cmd.Flags().Bool("json", false, "Print passwords as JSON")
	cmd.Flags().Bool("copy", false, "Copy the passwords to the system clipboard")

	return cmd
}
