package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cmlabs-hris/zenith-hr/internal/config"
	"github.com/cmlabs-hris/zenith-hr/internal/fixtures"
	"github.com/cmlabs-hris/zenith-hr/internal/store"
	"github.com/go-chi/httplog/v3"
)

func newLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newStore builds the store from config and seeds it when enabled.
func newStore(ctx context.Context, cfg *config.Config, opts ...store.Option) (*store.Store, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	opts = append([]store.Option{
		store.WithLocation(loc),
		store.WithDeductionRate(cfg.Store.DeductionRate),
	}, opts...)
	s := store.New(opts...)

	if cfg.Store.SeedFixtures {
		snap, err := fixtures.Seed(loc)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed fixtures: %w", err)
		}
		s.Load(ctx, snap)
		slog.Info("Seed fixtures loaded", "employees", len(snap.Employees), "projects", len(snap.Projects))
	}

	return s, nil
}
