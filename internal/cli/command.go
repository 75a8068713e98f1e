package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/flashcards/internal/app"
	"github.com/five82/flashcards/internal/config"
	"github.com/five82/flashcards/internal/flashcard"
	"github.com/five82/flashcards/internal/prefs"
)

// Version is set during build with -ldflags
var Version = "dev"

// RunFunc starts the application with the parsed options.
type RunFunc func(ctx context.Context, opts app.Options) error

// CreateRootCommand creates and configures the root cobra command. A nil run
// uses app.Run.
func CreateRootCommand(flags *Flags, run RunFunc) *cobra.Command {
	if run == nil {
		run = app.Run
	}

	rootCmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Generate and study flashcards in the terminal",
		Long: `flashcards asks a language model to turn a topic description or a
pasted block of text into a deck of flashcards, then lets you flip
through them one card at a time.

Examples:
  flashcards                          # Start with the saved source mode
  flashcards --source paste           # Start in paste mode
  flashcards --provider ollama        # Use a local Ollama server
  flashcards --provider gemini --model gemini-2.5-flash`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFlags(flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags.Options())
		},
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&flags.PrefsFile, "prefs", "", "preferences file (default is "+prefs.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "log file (overrides log_file in the config)")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Write debug-level entries to the log file")

	// Backend flags
	cmd.Flags().StringVarP(&flags.Provider, "provider", "p", "", "Completion backend: openai, gemini or ollama")
	cmd.Flags().StringVarP(&flags.Model, "model", "m", "", "Model name for the selected backend")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "Backend base URL (OpenAI-compatible server, Gemini endpoint or Ollama host:port)")

	// UI flags
	cmd.Flags().StringVar(&flags.Theme, "theme", "", "Color theme: Ocean, Nightfox or Slate")
	cmd.Flags().StringVarP(&flags.Source, "source", "s", "", "Initial source mode: describe or paste")
}

func validateFlags(flags *Flags) error {
	if s := strings.TrimSpace(flags.Source); s != "" {
		if _, err := flashcard.ParseSourceMode(s); err != nil {
			return fmt.Errorf("invalid --source: %w", err)
		}
	}
	switch strings.ToLower(strings.TrimSpace(flags.Provider)) {
	case "", config.ProviderOpenAI, config.ProviderGemini, config.ProviderOllama:
	default:
		return fmt.Errorf("invalid --provider: %w %q", config.ErrUnknownProvider, flags.Provider)
	}
	return nil
}
