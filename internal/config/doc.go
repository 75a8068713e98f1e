// Package config loads the flashcards configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flashcards/config.toml
//  3. If the file does not exist, fall back to defaults
//  4. Blank or non-positive fields fall back to defaults
//  5. Command-line Overrides are applied last
//
// # TOML Format
//
//	provider = "openai"            # openai | gemini | ollama
//	model = "gpt-4o-mini"
//	api_key_env = "OPENAI_API_KEY" # name of the env var holding the key
//	base_url = ""                  # OpenAI-compatible proxy or ollama host:port
//	timeout_seconds = 90
//	log_file = "~/.local/state/flashcards/flashcards.log"
//	exit_delay_ms = 150            # card exit animation
//	enter_delay_ms = 50            # card entry animation
//	breaker_failures = 3
//	breaker_cooldown_seconds = 30
//
// Model, API key variable and base URL default per provider. When an
// override switches the provider, those three file values are discarded
// because they describe the other backend.
//
// # Secrets
//
// API keys are never stored in the file. Config.APIKey reads the variable
// named by api_key_env at call time.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, and unknown
// providers. A missing file is not an error.
package config
