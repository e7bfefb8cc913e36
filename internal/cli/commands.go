// Package cli holds the non-interactive commands behind the grove binary.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/riordanpawley/grove/internal/config"
	"github.com/riordanpawley/grove/internal/ui/styles"
)

// Dependencies holds what every command needs
type Dependencies struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	logFile io.Closer
}

// Options are the global command-line flags
type Options struct {
	ConfigPath string
	Debug      bool
	Theme      string
}

// LoadConfig loads config and applies the flag overrides. It touches
// nothing on disk, so read-only commands use it directly.
func LoadConfig(opts Options) (*config.Config, string, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, "", err
	}
	if opts.Theme != "" {
		if _, err := styles.LookupTheme(opts.Theme); err != nil {
			return nil, "", err
		}
		cfg.UI.Theme = opts.Theme
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.FileName
	}
	return cfg, path, nil
}

// NewDependencies loads config and opens the log file. The TUI owns the
// terminal, so logs always go to a file.
func NewDependencies(opts Options) (*Dependencies, error) {
	cfg, path, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		level = slog.LevelDebug
	}

	logger, closer, err := NewFileLogger(cfg.Logging.File, level)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:     cfg,
		ConfigPath: path,
		Logger:     logger,
		logFile:    closer,
	}, nil
}

// Close releases the log file
func (d *Dependencies) Close() error {
	if d.logFile == nil {
		return nil
	}
	return d.logFile.Close()
}

// NewFileLogger opens path for appending and returns a text logger on it
func NewFileLogger(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

// ConfigCommand prints the effective config as YAML
func ConfigCommand(w io.Writer, cfg *config.Config) error {
	data, err := config.MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ThemesCommand lists the built-in themes, marking the configured one
func ThemesCommand(w io.Writer, current string) error {
	for _, name := range styles.ThemeNames() {
		marker := "  "
		if name == current {
			marker = "* "
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", marker, name); err != nil {
			return err
		}
	}
	return nil
}
