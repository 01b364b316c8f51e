package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplatesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List message templates in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			for i, tpl := range reg.Templates() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tsender=%q\tlayout=%q\n", i+1, tpl.Name, tpl.Sender, tpl.DateLayout)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", reg.Len())
			return nil
		},
	}
}
