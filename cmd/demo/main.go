// ABOUTME: Entry point for the expandable text area demo
// ABOUTME: Loads .env and configuration, sets up logging and starts the Bubbletea program
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/expandable-textarea/internal/config"
	"github.com/harper/expandable-textarea/internal/logger"
	"github.com/harper/expandable-textarea/internal/tui"
	"github.com/joho/godotenv"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: XDG config dir)")
	showVersion := flag.Bool("version", false, "print version and exit")
	verbose := flag.Bool("verbose", false, "enable debug logging (overrides logging.level)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("demo %s (built %s)\n", version, buildTime)
		return
	}

	// .env is optional; EXPANDAREA_* variables may come from it
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg.Logging, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Create Bubbletea program
	p := tea.NewProgram(tui.NewModel(cfg), tea.WithAltScreen())

	// Run program
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends log output to the configured file. The alternate screen
// owns the terminal, so logging is discarded when disabled.
func setupLogging(cfg config.LoggingConfig, verbose bool) (func(), error) {
	logger.SetLevel(cfg.Level)
	if verbose {
		logger.SetVerbose(true)
	}
	if !cfg.Enabled || cfg.File == "" {
		logger.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	//nolint:gosec // log path comes from the user's config
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	logger.Info("demo %s starting (verbose=%t)", version, logger.IsVerbose())
	return func() { _ = f.Close() }, nil
}
