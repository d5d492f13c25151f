// Package config handles loading and parsing drip's configuration file.
//
// # Overview
//
// This package reads drip's TOML configuration to discover the backend API
// endpoint and the client-side tuning knobs (poll cadence, request timeout,
// upload parallelism). The file is small on purpose: everything else the
// client needs comes from the server.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/drip/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/drip/config.toml
//   - API endpoint: http://127.0.0.1:8000
//   - Poll interval: 3s
//   - Request timeout: 15s
//   - Upload parallelism: 3
//
// # TOML Format
//
// Example drip config.toml:
//
//	api_url = "https://api.dripdirective.com"
//	poll_seconds = 3
//	timeout_seconds = 15
//	upload_parallel = 3
//
// All fields are optional. Non-positive numeric values are treated as unset.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead. This
// lets drip work out-of-the-box against a local backend without any setup.
//
// # Usage Example
//
//	// Use default config path
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//
//	// Access configuration
//	client, err := api.NewClient(cfg.APIURL)
//
// # Design Philosophy
//
// This package follows the principle of sensible defaults. The config
// package is read-only and stateless - it loads configuration once at
// startup and returns an immutable Config struct. No global state or
// singleton patterns are used.
package config
