// Package app provides the orchestration layer for the flashcards application.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// completion backend and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Startup
//
//  1. Load ~/.config/flashcards/config.toml and apply command-line overrides
//  2. Load ~/.config/flashcards/prefs.toml (theme and last source mode)
//  3. Open the log file with tea.LogToFile and build a slog text logger on it
//  4. Build the completion backend for the configured provider, wrapped with
//     a timeout, a circuit breaker and health recording into a state.Store
//  5. Start the TUI and block until the user quits or the context is cancelled
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()       provider, model, timing, log file
//	       ├─────> prefs.Load()        theme, source mode
//	       ├─────> tea.LogToFile()     log output off the alt screen
//	       ├─────> completion.Build()  backend + breaker + instrumentation
//	       └─────> ui.Run()            TUI (blocks)
//
//	Generation:
//	┌─────────────────────────────────────────┐
//	│ ui.Model (event loop)                   │
//	│  ├─> session.Machine.Generate()         │
//	│  ├─> tea.Cmd: Completer.Complete()      │
//	│  │     └─> state.Store.Record()         │
//	│  └─> session.Machine.Resolve()          │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config file or unknown provider
//   - Missing API key for a hosted provider
//   - Unknown --source value
//   - Log file cannot be opened
//
// Recoverable errors (logged, shown as a single notice in the UI):
//   - Backend failures, timeouts and an open circuit breaker
//   - Completions that are not a JSON array of cards
//
// Preference files that cannot be read or parsed fall back to defaults.
package app
