// Package ui implements the drip terminal interface with Bubble Tea.
//
// # Overview
//
// The UI is a thin presentation layer over the state.Store snapshot. A
// background poller (internal/app) keeps the store fresh; the UI reads
// snapshots on a fixed tick and never blocks on network I/O while
// rendering. User actions (analyze, delete, request outfits, try-on) run as
// Bubble Tea commands against the API client and report back through a
// single actionMsg.
//
// # Views
//
//   - Wardrobe: garment list with AI analysis detail for the selection
//   - Photos: uploaded body photos and their processing status
//   - Recommendations: past outfit requests, with an outfit detail pane
//   - Profile: the styling profile the backend personalizes against
//
// # Update Flow
//
//	tickMsg      → fetchSnapshotCmd → snapshotMsg → re-render
//	key action   → client command   → actionMsg   → flash + snapshot fetch
//
// The model itself holds no authoritative data; everything displayed comes
// from the last snapshot, so a lost actionMsg at worst delays the screen by
// one poll interval.
//
// # Theming
//
// Themes are named lipgloss palettes (Dracula, Nightfox, Slate). Cycling
// with T persists the choice to prefs, as does the active view on exit.
package ui
