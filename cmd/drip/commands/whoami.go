package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			info, err := env.Client.Me(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%s (user #%d) on %s\n", info.Email, info.ID, env.Client.BaseURL())
			return nil
		},
	}
}
