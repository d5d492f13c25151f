package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dripdirective/drip/internal/credstore"
)

func signupCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "signup [email]",
		Short: "Create an account and store the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]

			pw, err := resolvePassword(password)
			if err != nil {
				return err
			}

			token, err := env.Client.Signup(cmd.Context(), email, pw)
			if err != nil {
				return fmt.Errorf("signup: %w", err)
			}

			if err := env.Session.Save(credstore.Credential{
				Email:       email,
				AccessToken: token.AccessToken,
				TokenType:   token.TokenType,
			}); err != nil {
				return fmt.Errorf("store credential: %w", err)
			}

			fmt.Printf("Account created for %s on %s\n", email, env.Client.BaseURL())
			fmt.Println("Next: `drip profile set` and `drip upload` a few body photos.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (reads stdin when omitted)")
	return cmd
}
