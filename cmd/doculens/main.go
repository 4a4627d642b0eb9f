package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/doculens/doculens/internal/backend"
	"github.com/doculens/doculens/internal/config"
	"github.com/doculens/doculens/internal/tui"
	"github.com/doculens/doculens/internal/workspace"
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logFile, err := setupLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	baseURL := backend.ResolveBaseURL(cfg.Backend.URL, cfg.Backend.Origin)
	log.Info().
		Str("base_url", baseURL).
		Int("document_limit", cfg.Quota.DocumentLimit).
		Msg("Starting doculens workspace")

	client := backend.NewClient(baseURL)
	summaries := backend.NewSummaryCache(client)
	notifier := backend.NewKeepAliveNotifier(baseURL)
	confirmer := tui.NewPromptConfirmer()

	ws := workspace.New(client, notifier, confirmer, summaries, workspace.Options{
		DocumentLimit:  cfg.Quota.DocumentLimit,
		MaxUploadBytes: cfg.Upload.MaxBytes(),
	})

	p := tea.NewProgram(tui.New(ws), tea.WithAltScreen())
	confirmer.SetProgram(p)

	// A signal tears the session down before the program exits, so the
	// server-side reset still fires on SIGTERM.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		ws.Teardown()
		p.Quit()
	}()

	_, runErr := p.Run()

	// Normal quit path: the notifier blocks briefly so the reset gets out
	// before the process exits.
	ws.Teardown()

	if runErr != nil {
		log.Error().Err(runErr).Msg("TUI exited with error")
		os.Exit(1)
	}

	log.Info().Msg("doculens stopped")
}

// setupLogger routes zerolog to the configured file while the TUI owns the
// terminal. Empty file means stderr with the console writer.
func setupLogger(cfg config.LoggingConfig) (*os.File, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	if cfg.File == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
