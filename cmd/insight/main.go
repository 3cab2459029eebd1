package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/decislog/insight/internal/api"
	"github.com/decislog/insight/internal/config"
	"github.com/decislog/insight/internal/events"
	"github.com/decislog/insight/internal/heuristics"
	"github.com/decislog/insight/internal/lexicon"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("insight starting", "port", cfg.Port)

	// Lexicons
	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		var err error
		lex, err = lexicon.Load(cfg.LexiconPath)
		if err != nil {
			slog.Error("failed to load lexicon overrides", "path", cfg.LexiconPath, "error", err)
			os.Exit(1)
		}
		slog.Info("lexicon overrides loaded", "path", cfg.LexiconPath)
	}

	engine := heuristics.New(lex)

	// NATS publisher (optional — the engine works without a broker, just
	// no downstream analysis events)
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		var err error
		publisher, err = events.Connect(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured — running without analysis events")
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, engine, publisher)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("insight ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	slog.Info("insight stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
