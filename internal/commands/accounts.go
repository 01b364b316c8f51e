package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAccountsCommand(a *app) *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the accounts used for card matching",
	}
	accountsCmd.AddCommand(newAccountsListCommand(a))
	accountsCmd.AddCommand(newAccountsAddCommand(a))
	accountsCmd.AddCommand(newAccountsShowCommand(a))
	return accountsCmd
}

func newAccountsListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			accts, err := a.loadAccounts(cfg)
			if err != nil {
				return err
			}
			for _, acct := range accts.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", acct.ID, acct.Name)
			}
			return nil
		},
	}
}

func newAccountsAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account; include the card's last digits in the name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("account name is required")
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			accts, err := a.loadAccounts(cfg)
			if err != nil {
				return err
			}

			next, acct := accts.Add(name)
			if err := next.Save(cfg.AccountsPath()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", acct.ID, acct.Name)
			return nil
		},
	}
}

func newAccountsShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show one account by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acctID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing account id %q: %w", args[0], err)
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			accts, err := a.loadAccounts(cfg)
			if err != nil {
				return err
			}

			acct, ok := accts.Get(acctID)
			if !ok {
				return fmt.Errorf("no account with id %s", acctID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", acct.ID, acct.Name)
			return nil
		},
	}
}
