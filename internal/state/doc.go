// Package state provides thread-safe state management for the drip client.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing account
// data between the background poller and the UI. It acts as the coordination
// point where polling updates meet UI rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌────────────────┐
//	│ Profile()      │            │                │
//	│ Images()       │            │                │
//	│ WardrobeItems()│            │                │
//	│ Recommendations│            │                │
//	│      ↓         │            │                │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓         │
//	│  repeat...     │            │  render UI     │
//	└────────────────┘            └────────────────┘
//
// The Store mediates between these two independent goroutines, ensuring:
//   - Atomic updates (no partial/torn reads)
//   - No data races (mutex-protected access)
//   - Immutable snapshots (defensive copying)
//
// # Update Semantics
//
// The Update method has special error handling behavior:
//
//	// Success case: Replace entire snapshot
//	store.Update(data, nil)
//	→ snapshot.<resources> = data.<resources>
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Error case: Keep old data, record error
//	store.Update(nil, err)
//	→ snapshot.<resources> = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// This ensures the UI always has the most recent successful data to display,
// while also being informed of polling failures. Two consecutive failures
// flip IsOffline, which the UI surfaces as a disconnected banner rather than
// wiping the wardrobe from the screen.
//
// # Defensive Copying
//
// Both Update and Snapshot clone the resource slices and copy the error
// value, so neither the poller nor the UI can mutate the other's view. The
// cost is small (tens of items per account) and much simpler than any
// alternative coordination strategy.
//
// # Usage Example
//
//	// Poller goroutine:
//	store := &state.Store{}
//	for {
//		data, err := fetchAll(ctx, client)
//		store.Update(data, err)
//		time.Sleep(interval)
//	}
//
//	// UI goroutine:
//	ticker := time.NewTicker(time.Second)
//	for range ticker.C {
//		snap := store.Snapshot()
//		renderUI(snap)
//	}
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// Snapshot() returns a zero Snapshot if never updated, and updates are
// atomic and immediately visible.
package state
