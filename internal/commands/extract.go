package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smstx/internal/accounts"
	"github.com/cleared-dev/smstx/internal/config"
	"github.com/cleared-dev/smstx/internal/export"
	"github.com/cleared-dev/smstx/internal/model"
	"github.com/cleared-dev/smstx/internal/parser"
	"github.com/cleared-dev/smstx/internal/pipeline"
	"github.com/cleared-dev/smstx/internal/present"
	"github.com/cleared-dev/smstx/internal/source"
)

const sinceDateLayout = "2006-01-02"

func newExtractCommand(a *app) *cobra.Command {
	var since string
	var all bool
	var csvPath string

	cmd := &cobra.Command{
		Use:   "extract <backup.xml>",
		Short: "List card transactions found in an SMS backup",
		Long: "Reads an SMS Backup & Restore XML file and lists the transactions from\n" +
			"recognized bank alerts, grouped by day. Defaults to messages received today.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			from := pipeline.StartOfDay(a.now(), loc)
			switch {
			case all:
				from = time.Time{}
			case since != "":
				from, err = parseSince(since, loc)
				if err != nil {
					return err
				}
			}

			return a.runExtract(cmd, cfg, args[0], from, csvPath)
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "earliest receive time (YYYY-MM-DD or RFC3339)")
	cmd.Flags().BoolVar(&all, "all", false, "include every message in the backup")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also write the transactions to this CSV file")
	cmd.MarkFlagsMutuallyExclusive("since", "all")

	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, cfg *config.Config, backupPath string, from time.Time, csvPath string) error {
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	policy, err := parser.ParseAmountPolicy(cfg.Parsing.AmountPolicy)
	if err != nil {
		return err
	}
	locale, err := present.Locale(cfg.Display.Locale)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	accts, err := a.loadAccounts(cfg)
	if err != nil {
		return err
	}

	p := pipeline.New(
		source.NewBackup(backupPath),
		parser.New(reg, parser.WithAmountPolicy(policy), parser.WithLogger(a.log)),
		a.log,
	)
	txns, stats, err := p.ExtractWithStats(cmd.Context(), from)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(txns) == 0 {
		fmt.Fprintf(out, "No transactions since %s\n", from.In(loc).Format(time.RFC3339))
	} else {
		items := present.NewGrouper(locale, loc).Group(txns)
		render(out, items, loc, cfg, accts)
	}
	fmt.Fprintf(out, "\n%d messages, %d transactions, %d unrecognized, %d rejected\n",
		stats.Seen, stats.Parsed, stats.Unmatched, stats.Rejected)

	if csvPath != "" {
		if err := export.SaveFile(csvPath, txns); err != nil {
			return err
		}
		a.log.Info("wrote csv", "path", csvPath, "transactions", len(txns))
	}
	return nil
}

func render(w io.Writer, items []model.DisplayItem, loc *time.Location, settings config.Settings, accts *accounts.Service) {
	for i, item := range items {
		switch it := item.(type) {
		case model.DateSeparator:
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, it.Label)
		case model.TransactionEntry:
			consumer := it.Consumer
			if !it.HasConsumer() {
				consumer = "-"
			}
			line := fmt.Sprintf("  %s  %-24s %10s %s  *%s",
				it.Date.In(loc).Format("15:04"), consumer,
				it.Amount.StringFixed(2), settings.BaseCurrency(), it.CardLastDigits)
			if acct, ok := accts.FindForCard(it.CardLastDigits); ok {
				line += "  " + acct.Name
			}
			fmt.Fprintln(w, line)
		}
	}
}

func parseSince(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(sinceDateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --since %q: want YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}
