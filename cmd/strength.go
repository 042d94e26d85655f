package main

import (
	"bufio"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"passgen/internal/config"
	"passgen/internal/generator"
	"passgen/internal/presenter"
	"passgen/pkg/serrors"
)

// strengthCommand constructs the 'strength' subcommand that scores a password
// given as argument or, when omitted, read from the first line of stdin.
func strengthCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Scores the strength of a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			asJSON, _ := cmd.Flags().GetBool("json")

			var pw string
			if len(args) == 1 {
				pw = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if line == "" && err != nil {
					return serrors.Wrap(serrors.ErrBadRequest, err, "could not read password from stdin")
				}
				pw = strings.TrimRight(line, "\r\n")
			}

			// scoring needs no storage
			report := generator.New(nil, nil, generator.NewOptions(cfg)).Score(ctx, pw)

			var out presenter.StrengthPresenter = presenter.NewTerminal(cmd.OutOrStdout())
			if asJSON {
				out = presenter.NewJSON(cmd.OutOrStdout())
			}

			if err := out.PresentStrength(ctx, report); err != nil {
				return errors.Wrap(err, "present strength")
			}

			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the report as JSON")

	return cmd
}
