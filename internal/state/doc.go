// Package state provides a thread-safe record of completion backend health.
//
// # Overview
//
// Completion calls run inside Bubble Tea commands, off the UI goroutine. Each
// call reports its latency and outcome to a Store, and the UI reads a
// Snapshot when it renders the header.
//
//	Producer (tea.Cmd goroutine):     Consumer (UI):
//	┌──────────────────────┐         ┌──────────────────┐
//	│ completer.Complete() │         │                  │
//	│        ↓             │         │                  │
//	│ store.Record()       │────────→│ store.Snapshot() │
//	└──────────────────────┘ (mutex) └──────────────────┘
//
// # Degraded Detection
//
// Snapshot.IsDegraded reports true after two consecutive failures. A single
// success resets the streak. Total request and failure counts are kept for
// the lifetime of the process.
//
// # Concurrency Model
//
// Store uses a sync.RWMutex. Record takes the write lock and Snapshot takes
// the read lock. Snapshot returns a copy, and LastError is re-wrapped so
// callers never share the stored error value.
//
// # Usage Example
//
//	store := state.NewStore("openai")
//	completer := completion.Instrument(backend, store)
//
//	snap := store.Snapshot()
//	if snap.IsDegraded() {
//		// render a warning
//	}
package state
