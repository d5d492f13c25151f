package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dripdirective/drip/internal/app"
)

var (
	configPath  string
	prefsPath   string
	credsPath   string
	apiURL      string
	pollSeconds int

	env *app.Env
)

// Execute runs the drip CLI. With no subcommand it launches the TUI.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:           "drip",
		Short:         "Terminal client for the Dripdirective styling service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			env, err = app.Setup(app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				CredsPath:  credsPath,
				APIURL:     apiURL,
				PollEvery:  pollSeconds,
			})
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				CredsPath:  credsPath,
				APIURL:     apiURL,
				PollEvery:  pollSeconds,
			})
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/drip/config.toml)")
	root.PersistentFlags().StringVar(&prefsPath, "prefs", "", "prefs file (default ~/.config/drip/prefs.toml)")
	root.PersistentFlags().StringVar(&credsPath, "creds", "", "credentials file (default ~/.config/drip/credentials.json)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (overrides config)")
	root.PersistentFlags().IntVar(&pollSeconds, "poll", 0, "TUI refresh interval in seconds")

	root.AddCommand(
		signupCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		profileCmd(),
		uploadCmd(),
		wardrobeCmd(),
		processCmd(),
		recommendCmd(),
		tryonCmd(),
	)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "drip: %v\n", err)
	}
	return err
}

// requireSession fails fast for commands that need a stored token.
func requireSession() error {
	if env.Session.Token() == "" {
		return fmt.Errorf("not logged in to %s: run `drip login` first", env.Client.BaseURL())
	}
	return nil
}
