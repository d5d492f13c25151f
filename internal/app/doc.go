// Package app provides the orchestration layer for the drip client.
//
// # Overview
//
// This package wires together configuration, credentials, polling, state
// management, and the UI to create the complete drip experience. It serves as
// the composition root where all dependencies are initialized and connected.
// The cobra commands share the same wiring through Setup, so a one-shot
// `drip upload` and the long-running TUI see an identical client.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load drip configuration from ~/.config/drip/config.toml
//  2. Open the credential store and bind a session to the API base URL
//  3. Initialize the HTTP API client with the session as its token source
//  4. Create shared state.Store for UI and poller coordination
//  5. Launch background poller goroutine for continuous updates
//  6. Start the TUI and block until user exits or context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read drip config
//	       ├─────> credstore.New()     Open stored session
//	       ├─────> api.NewClient()     Create HTTP client
//	       ├─────> state.Store{}       Shared state container
//	       ├─────> StartPoller()       Launch background updates
//	       └─────> ui.Run()            Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> Me() / Profile()                   │
//	│  ├─> Images() / WardrobeItems()         │
//	│  ├─> Recommendations()                  │
//	│  └─> store.Update()  (atomic)           │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller runs continuously in the background at a configurable interval
// (default: 3 seconds). On each tick it fetches the account resources and
// updates the shared state.Store atomically. A missing profile (404) is not
// a failure; new accounts simply have no profile yet.
//
// While the API is unreachable the poll interval doubles per consecutive
// failure up to a 30 second ceiling, so a down backend is probed gently and
// recovery is still noticed within half a minute.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Credential store unreadable
//   - No stored session for the target API
//
// Recoverable errors (recorded in the store, polling continues):
//   - Periodic fetch failures and network timeouts
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("drip failed: %v", err)
//	}
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and focused.
// Business logic lives in domain packages (api, credstore, state, ui). The
// app package simply connects these pieces with sensible defaults.
package app
