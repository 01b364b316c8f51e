package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smstx/internal/accounts"
	"github.com/cleared-dev/smstx/internal/config"
	"github.com/cleared-dev/smstx/internal/export"
	"github.com/cleared-dev/smstx/internal/id"
	"github.com/cleared-dev/smstx/internal/model"
	"github.com/cleared-dev/smstx/internal/present"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <export.csv> [message-id]",
		Short: "Show transactions from a CSV written by extract --csv",
		Long: "Without a message id, lists the exported transactions grouped by day.\n" +
			"With one, prints that transaction and where its message came from.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			accts, err := a.loadAccounts(cfg)
			if err != nil {
				return err
			}
			txns, err := export.LoadFile(args[0])
			if err != nil {
				return err
			}

			if len(args) == 2 {
				return showTransaction(cmd.OutOrStdout(), cfg, accts, txns, args[1])
			}

			locale, err := present.Locale(cfg.Display.Locale)
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			render(cmd.OutOrStdout(), present.NewGrouper(locale, loc).Group(txns), loc, cfg, accts)
			return nil
		},
	}
}

func showTransaction(w io.Writer, cfg *config.Config, accts *accounts.Service, txns []model.Transaction, messageID string) error {
	var txn model.Transaction
	found := false
	for _, t := range txns {
		if t.ID == messageID {
			txn, found = t, true
			break
		}
	}
	if !found {
		return fmt.Errorf("no transaction with message id %q", messageID)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "id:       %s\n", txn.ID)
	if received, seq, err := id.ParseMessageID(txn.ID); err == nil {
		fmt.Fprintf(w, "message:  #%d in backup, received %s\n", seq, received.In(loc).Format("2006-01-02 15:04:05"))
	} else {
		fmt.Fprintln(w, "message:  backup record id")
	}
	fmt.Fprintf(w, "date:     %s\n", txn.Date.In(loc).Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "amount:   %s %s\n", txn.Amount.StringFixed(2), cfg.BaseCurrency())
	fmt.Fprintf(w, "consumer: %s\n", txn.Consumer)
	fmt.Fprintf(w, "card:     *%s\n", txn.CardLastDigits)
	if acct, ok := accts.FindForCard(txn.CardLastDigits); ok {
		fmt.Fprintf(w, "account:  %s (%s)\n", acct.Name, acct.ID)
	}
	return nil
}
