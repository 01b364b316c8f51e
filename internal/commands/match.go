package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match <card-digits>",
		Short: "Find the account whose name contains the card digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			accts, err := a.loadAccounts(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			acct, ok := accts.FindForCard(args[0])
			if !ok {
				fmt.Fprintf(out, "No account for card *%s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "%s\t%s\n", acct.ID, acct.Name)
			return nil
		},
	}
}
