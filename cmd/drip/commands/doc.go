// Package commands defines the drip CLI surface.
//
// Running drip with no subcommand starts the TUI. The subcommands cover the
// one-shot flows that do not need a full-screen interface: account setup
// (signup, login, logout, whoami), profile management, photo and wardrobe
// uploads, triggering AI analysis, requesting recommendations, and virtual
// try-on. All commands share the wiring in internal/app, so flags like
// --api and --config behave identically everywhere.
package commands
