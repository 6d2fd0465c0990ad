package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/config"
	appHTTP "github.com/cmlabs-hris/zenith-hr/internal/handler/http"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/cron"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/jwt"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/sse"
	dashboardService "github.com/cmlabs-hris/zenith-hr/internal/service/dashboard"
	"github.com/cmlabs-hris/zenith-hr/internal/store"
	"github.com/spf13/cobra"
)

const version = "v1.0.0"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return serve(cmd.Context(), cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, scheduler, err := newServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "address", server.Addr, "strict_mode", cfg.Store.StrictMode)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		return err
	}
	return nil
}

// newServer wires the store, services and router. Shutdown closes the event
// hub so open /events streams end instead of holding the server open.
func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*http.Server, *cron.Scheduler, error) {
	hub := sse.NewHub()
	s, err := newStore(ctx, cfg, store.WithObserver(appHTTP.NewChangePublisher(hub)))
	if err != nil {
		return nil, nil, err
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	dashboardSvc := dashboardService.NewDashboardService(s, s, s, s, s, s.Now)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:            logger,
		AllowedOrigins:    []string{cfg.App.FrontendURL},
		DefaultEmployeeID: cfg.Store.DefaultEmployeeID,
	}, JWTService, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(s, dashboardSvc, cfg.Store.StrictMode, s.Location()),
		Project:    appHTTP.NewProjectHandler(s, dashboardSvc, cfg.Store.StrictMode),
		Attendance: appHTTP.NewAttendanceHandler(s, cfg.Store.StrictMode),
		Timesheet:  appHTTP.NewTimesheetHandler(s, s.Today),
		Leave:      appHTTP.NewLeaveHandler(s, cfg.Store.StrictMode, s.Location()),
		Payroll:    appHTTP.NewPayrollHandler(s, s, s.Now),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Session:    appHTTP.NewSessionHandler(JWTService, s),
		Event:      appHTTP.NewEventHandler(hub),
	})

	scheduler := cron.NewScheduler(ctx)
	cron.NewPayrollJobs(s, s.Now, cfg.Cron.PayrollInterval).RegisterJobs(scheduler)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.RegisterOnShutdown(hub.Close)

	return server, scheduler, nil
}
