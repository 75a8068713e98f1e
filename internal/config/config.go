package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Supported completion providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// ErrUnknownProvider is returned when provider names an unsupported backend.
var ErrUnknownProvider = errors.New("unknown provider")

// Config captures backend, logging and animation settings.
type Config struct {
	Provider        string
	Model           string
	APIKeyEnv       string
	BaseURL         string
	Timeout         time.Duration
	LogFile         string
	ExitDelay       time.Duration
	EnterDelay      time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
}

// Overrides carries command-line values that win over the config file.
// Empty fields are ignored.
type Overrides struct {
	Provider string
	Model    string
	BaseURL  string
	LogFile  string
}

const (
	defaultConfigPath      = "~/.config/flashcards/config.toml"
	defaultLogFile         = "~/.local/state/flashcards/flashcards.log"
	defaultProvider        = ProviderOpenAI
	defaultTimeout         = 90 * time.Second
	defaultExitDelay       = 150 * time.Millisecond
	defaultEnterDelay      = 50 * time.Millisecond
	defaultBreakerFailures = 3
	defaultBreakerCooldown = 30 * time.Second
)

type providerDefaults struct {
	model     string
	apiKeyEnv string
	baseURL   string
}

var providers = map[string]providerDefaults{
	ProviderOpenAI: {model: "gpt-4o-mini", apiKeyEnv: "OPENAI_API_KEY"},
	ProviderGemini: {model: "gemini-2.5-flash", apiKeyEnv: "GEMINI_API_KEY"},
	ProviderOllama: {model: "llama3.1", baseURL: "127.0.0.1:11434"},
}

type fileConfig struct {
	Provider               string `toml:"provider"`
	Model                  string `toml:"model"`
	APIKeyEnv              string `toml:"api_key_env"`
	BaseURL                string `toml:"base_url"`
	TimeoutSeconds         int    `toml:"timeout_seconds"`
	LogFile                string `toml:"log_file"`
	ExitDelayMS            int    `toml:"exit_delay_ms"`
	EnterDelayMS           int    `toml:"enter_delay_ms"`
	BreakerFailures        int    `toml:"breaker_failures"`
	BreakerCooldownSeconds int    `toml:"breaker_cooldown_seconds"`
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config file, falling back to defaults when it
// is missing, then applies overrides.
func Load(path string, overrides Overrides) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	raw.apply(overrides)
	return raw.resolve()
}

func (f *fileConfig) apply(o Overrides) {
	if p := normalizeProvider(o.Provider); p != "" && p != normalizeProvider(f.Provider) {
		// Provider-specific settings from the file belong to another backend.
		f.Provider = p
		f.Model = ""
		f.APIKeyEnv = ""
		f.BaseURL = ""
	}
	if m := strings.TrimSpace(o.Model); m != "" {
		f.Model = m
	}
	if u := strings.TrimSpace(o.BaseURL); u != "" {
		f.BaseURL = u
	}
	if l := strings.TrimSpace(o.LogFile); l != "" {
		f.LogFile = l
	}
}

func (f fileConfig) resolve() (Config, error) {
	cfg := Config{
		Provider:        normalizeProvider(f.Provider),
		Model:           strings.TrimSpace(f.Model),
		APIKeyEnv:       strings.TrimSpace(f.APIKeyEnv),
		BaseURL:         strings.TrimSpace(f.BaseURL),
		Timeout:         defaultTimeout,
		ExitDelay:       defaultExitDelay,
		EnterDelay:      defaultEnterDelay,
		BreakerFailures: defaultBreakerFailures,
		BreakerCooldown: defaultBreakerCooldown,
	}
	if cfg.Provider == "" {
		cfg.Provider = defaultProvider
	}
	defaults, ok := providers[cfg.Provider]
	if !ok {
		return Config{}, fmt.Errorf("%w %q (want openai, gemini or ollama)", ErrUnknownProvider, f.Provider)
	}
	if cfg.Model == "" {
		cfg.Model = defaults.model
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = defaults.apiKeyEnv
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.baseURL
	}

	if f.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(f.TimeoutSeconds) * time.Second
	}
	if f.ExitDelayMS > 0 {
		cfg.ExitDelay = time.Duration(f.ExitDelayMS) * time.Millisecond
	}
	if f.EnterDelayMS > 0 {
		cfg.EnterDelay = time.Duration(f.EnterDelayMS) * time.Millisecond
	}
	if f.BreakerFailures > 0 {
		cfg.BreakerFailures = f.BreakerFailures
	}
	if f.BreakerCooldownSeconds > 0 {
		cfg.BreakerCooldown = time.Duration(f.BreakerCooldownSeconds) * time.Second
	}

	logFile := strings.TrimSpace(f.LogFile)
	if logFile == "" {
		logFile = defaultLogFile
	}
	cfg.LogFile = mustExpand(logFile)

	return cfg, nil
}

// APIKey reads the API key from the configured environment variable.
func (c Config) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(c.APIKeyEnv))
}

func normalizeProvider(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
