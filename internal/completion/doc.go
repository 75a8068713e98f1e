// Package completion sends flashcard prompts to a language model backend
// (OpenAI-compatible chat, Gemini or a local Ollama server) and returns the
// raw completion text. Backends are wrapped with a per-call timeout, a
// circuit breaker and health recording into a state.Store.
package completion
