package cli

import (
	"github.com/five82/flashcards/internal/app"
	"github.com/five82/flashcards/internal/config"
)

// Flags holds all command-line flag values
type Flags struct {
	// Files
	CfgFile   string
	PrefsFile string
	LogFile   string

	// Backend
	Provider string
	Model    string
	BaseURL  string

	// UI
	Theme  string
	Source string
	Debug  bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{}
}

// Options converts the parsed flags into application options. Empty values
// leave the config file and saved preferences in charge.
func (f *Flags) Options() app.Options {
	return app.Options{
		ConfigPath: f.CfgFile,
		PrefsPath:  f.PrefsFile,
		Overrides: config.Overrides{
			Provider: f.Provider,
			Model:    f.Model,
			BaseURL:  f.BaseURL,
			LogFile:  f.LogFile,
		},
		Theme:  f.Theme,
		Source: f.Source,
		Debug:  f.Debug,
	}
}
