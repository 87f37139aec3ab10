package app

import (
	"fmt"
	"io"
	"log/slog"

	"birchwood/internal/content"
	"birchwood/internal/debuglog"
	"birchwood/internal/fallback"
)

// Wire bundles the long-lived dependencies shared by every screen.
type Wire struct {
	Config   Config
	Log      *slog.Logger
	Client   *content.Client
	Fallback *fallback.Resolver
}

// NewWire constructs the dependency graph from cfg. Diagnostics go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level := debuglog.LevelFromEnv()
	if cfg.LogLevel != "" {
		level, _ = debuglog.ParseLevel(cfg.LogLevel)
	}
	log := debuglog.New(logOut, level)

	client, err := content.NewHTTP(cfg.BaseURL,
		content.WithTimeout(cfg.Timeout),
		content.WithMaxBodySize(cfg.MaxBody),
		content.WithHTTPClient(cfg.HTTP),
		content.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("content client: %w", err)
	}

	fr, err := fallback.New(fallback.Builtin())
	if err != nil {
		return nil, fmt.Errorf("fallback defaults: %w", err)
	}

	return &Wire{
		Config:   cfg,
		Log:      log,
		Client:   client,
		Fallback: fr,
	}, nil
}

// App returns a fresh set of unmounted screens.
func (w *Wire) App() *App { return New(w.Client, w.Fallback, w.Log) }
