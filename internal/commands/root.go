package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/smstx/internal/accounts"
	"github.com/cleared-dev/smstx/internal/buildinfo"
	"github.com/cleared-dev/smstx/internal/config"
	"github.com/cleared-dev/smstx/internal/logging"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	log        *log.Logger
	now        func() time.Time
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{now: time.Now})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "smstx",
		Short:   "Extract card transactions from bank SMS",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("loading .env: %w", err)
			}
			if a.log == nil {
				a.log = logging.New(cmd.ErrOrStderr(), logging.LevelFromEnv())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "path to "+config.FileName)

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newExtractCommand(a))
	rootCmd.AddCommand(newMatchCommand(a))
	rootCmd.AddCommand(newAccountsCommand(a))
	rootCmd.AddCommand(newTemplatesCommand(a))
	rootCmd.AddCommand(newShowCommand(a))

	return rootCmd
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (a *app) loadAccounts(cfg *config.Config) (*accounts.Service, error) {
	svc, err := accounts.Load(cfg.AccountsPath())
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	return svc, nil
}
