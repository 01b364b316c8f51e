package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smstx/internal/accounts"
	"github.com/cleared-dev/smstx/internal/config"
)

func newInitCommand() *cobra.Command {
	var currency string
	var locale string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default config and an empty accounts file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, currency, locale); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized smstx at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "BYN", "base currency")
	cmd.Flags().StringVar(&locale, "locale", "ru", "day label locale (en, ru)")

	return cmd
}

func runInit(dir, currency, locale string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()
	cfg.Settings.BaseCurrency = currency
	cfg.Display.Locale = locale
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	acctPath := filepath.Join(dir, cfg.AccountsFile)
	if _, err := os.Stat(acctPath); os.IsNotExist(err) {
		if err := accounts.NewService(nil).Save(acctPath); err != nil {
			return fmt.Errorf("writing accounts: %w", err)
		}
	}
	return nil
}
