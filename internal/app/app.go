package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dripdirective/drip/internal/api"
	"github.com/dripdirective/drip/internal/config"
	"github.com/dripdirective/drip/internal/credstore"
	"github.com/dripdirective/drip/internal/prefs"
	"github.com/dripdirective/drip/internal/state"
	"github.com/dripdirective/drip/internal/ui"
)

// Options configure the drip application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/drip/prefs.toml
	CredsPath  string // empty uses default ~/.config/drip/credentials.json
	APIURL     string // overrides config when set
	PollEvery  int    // seconds; zero uses config value
}

// Env is the wired-up set of dependencies every drip entry point needs.
// Both the TUI and the one-shot CLI commands build one of these first.
type Env struct {
	Config  config.Config
	Client  *api.Client
	Session *credstore.Session
}

// Setup loads configuration and credentials and builds the API client.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}

	creds, err := credstore.New(opts.CredsPath)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	baseURL, err := api.NormalizeURL(cfg.APIURL)
	if err != nil {
		return nil, err
	}
	session := credstore.NewSession(creds, baseURL)

	client, err := api.NewClient(baseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		api.WithTokenSource(session),
		api.WithOnUnauthorized(session.Clear),
	)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	return &Env{Config: cfg, Client: client, Session: session}, nil
}

// Run boots the drip TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}

	if env.Session.Token() == "" {
		return fmt.Errorf("not logged in to %s: run `drip login` first", env.Client.BaseURL())
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	store := &state.Store{}

	// Start background poller
	StartPoller(ctx, store, env.Client, env.Config.PollInterval)

	// Do initial refresh to populate store before UI starts
	refresh(ctx, store, env.Client)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    env.Client,
		Store:     store,
		Config:    &env.Config,
		Account:   env.Session.Email(),
		PollTick:  env.Config.PollInterval,
		ThemeName: userPrefs.Theme,
		LastView:  userPrefs.LastView,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
