package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"), Overrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Fatalf("Provider = %q, want %q", cfg.Provider, ProviderOpenAI)
	}
	if cfg.Model != "gpt-4o-mini" || cfg.APIKeyEnv != "OPENAI_API_KEY" {
		t.Fatalf("Model/APIKeyEnv = %q/%q, want openai defaults", cfg.Model, cfg.APIKeyEnv)
	}
	if cfg.Timeout != defaultTimeout || cfg.ExitDelay != 150*time.Millisecond || cfg.EnterDelay != 50*time.Millisecond {
		t.Fatalf("timings = %v/%v/%v", cfg.Timeout, cfg.ExitDelay, cfg.EnterDelay)
	}
	if cfg.BreakerFailures != defaultBreakerFailures || cfg.BreakerCooldown != defaultBreakerCooldown {
		t.Fatalf("breaker = %d/%v", cfg.BreakerFailures, cfg.BreakerCooldown)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
provider = "  Ollama  "
model = " mistral "
base_url = "  10.0.0.5:11434  "
timeout_seconds = 20
log_file = "  ~/logs/cards.log  "
exit_delay_ms = 300
enter_delay_ms = 100
breaker_failures = 5
breaker_cooldown_seconds = 10
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != ProviderOllama || cfg.Model != "mistral" || cfg.BaseURL != "10.0.0.5:11434" {
		t.Fatalf("backend = %q/%q/%q", cfg.Provider, cfg.Model, cfg.BaseURL)
	}
	if cfg.APIKeyEnv != "" {
		t.Fatalf("APIKeyEnv = %q, want empty for ollama", cfg.APIKeyEnv)
	}
	if cfg.Timeout != 20*time.Second || cfg.ExitDelay != 300*time.Millisecond || cfg.EnterDelay != 100*time.Millisecond {
		t.Fatalf("timings = %v/%v/%v", cfg.Timeout, cfg.ExitDelay, cfg.EnterDelay)
	}
	if cfg.BreakerFailures != 5 || cfg.BreakerCooldown != 10*time.Second {
		t.Fatalf("breaker = %d/%v", cfg.BreakerFailures, cfg.BreakerCooldown)
	}
	if !strings.HasPrefix(cfg.LogFile, home) || !strings.HasSuffix(cfg.LogFile, "cards.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
provider = "gemini"
model = "   "
timeout_seconds = 0
exit_delay_ms = -5
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Model != "gemini-2.5-flash" || cfg.APIKeyEnv != "GEMINI_API_KEY" {
		t.Fatalf("Model/APIKeyEnv = %q/%q, want gemini defaults", cfg.Model, cfg.APIKeyEnv)
	}
	if cfg.Timeout != defaultTimeout || cfg.ExitDelay != defaultExitDelay {
		t.Fatalf("Timeout/ExitDelay = %v/%v, want defaults", cfg.Timeout, cfg.ExitDelay)
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`provider = "claude-web"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path, Overrides{}); !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("Load err = %v, want ErrUnknownProvider", err)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path, Overrides{})
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load err = %v, want parse config error", err)
	}
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
provider = "openai"
model = "gpt-4o"
base_url = "https://proxy.example/v1"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Run("same provider keeps file settings", func(t *testing.T) {
		cfg, err := Load(path, Overrides{Provider: "OPENAI", LogFile: "/tmp/x.log"})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Model != "gpt-4o" || cfg.BaseURL != "https://proxy.example/v1" || cfg.LogFile != "/tmp/x.log" {
			t.Fatalf("cfg = %+v", cfg)
		}
	})

	t.Run("switching provider drops provider-specific settings", func(t *testing.T) {
		cfg, err := Load(path, Overrides{Provider: "ollama"})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Provider != ProviderOllama || cfg.Model != "llama3.1" || cfg.BaseURL != "127.0.0.1:11434" {
			t.Fatalf("cfg = %+v, want ollama defaults", cfg)
		}
	})

	t.Run("model override", func(t *testing.T) {
		cfg, err := Load(path, Overrides{Provider: "gemini", Model: "gemini-2.5-pro"})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Model != "gemini-2.5-pro" {
			t.Fatalf("Model = %q, want gemini-2.5-pro", cfg.Model)
		}
	})
}

func TestAPIKey(t *testing.T) {
	t.Setenv("FLASHCARDS_TEST_KEY", "  sk-123  ")
	if got := (Config{APIKeyEnv: "FLASHCARDS_TEST_KEY"}).APIKey(); got != "sk-123" {
		t.Fatalf("APIKey = %q, want sk-123", got)
	}
	if got := (Config{}).APIKey(); got != "" {
		t.Fatalf("APIKey with no env = %q, want empty", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "a", "b") {
		t.Fatalf("expandPath = %q, want %q", got, filepath.Join(home, "a", "b"))
	}
	if _, err := expandPath("   "); err == nil {
		t.Fatal("expandPath blank should error")
	}
}
