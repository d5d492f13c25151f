package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dripdirective/drip/internal/credstore"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in and store the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]

			pw, err := resolvePassword(password)
			if err != nil {
				return err
			}

			token, err := env.Client.Login(cmd.Context(), email, pw)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if err := env.Session.Save(credstore.Credential{
				Email:       email,
				AccessToken: token.AccessToken,
				TokenType:   token.TokenType,
			}); err != nil {
				return fmt.Errorf("store credential: %w", err)
			}

			fmt.Printf("Logged in as %s on %s\n", email, env.Client.BaseURL())
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (reads stdin when omitted)")
	return cmd
}

// resolvePassword takes the flag value or falls back to one line from stdin,
// so passwords can be piped in without landing in shell history.
func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", fmt.Errorf("password is empty")
	}
	return pw, nil
}
