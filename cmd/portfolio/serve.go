package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gansputra.dev/internal/handlers"
	"gansputra.dev/internal/services"
	"gansputra.dev/internal/state"
	"gansputra.dev/internal/store"
)

const shutdownTimeout = 10 * time.Second

// serveCmd runs the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	newSession, err := services.NewSessionFactory(cfg.Playlist, cfg.CarouselInterval)
	if err != nil {
		return err
	}
	sessions := state.NewSessions(cfg.SessionTTL, newSession)

	router, err := handlers.SetupRoutes(handlers.Deps{
		Config:   cfg,
		Sessions: sessions,
		Recorder: db,
		Client:   &http.Client{},
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to set up routes: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting",
			zap.String("addr", cfg.ServerAddr),
			zap.String("db", db.Path()),
			zap.Int("amvs", len(cfg.AMVs.AMVs)),
			zap.Int("gfx", len(cfg.GFX.Designs)),
			zap.Int("projects", len(cfg.Projects.Projects)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// Sweep at a fraction of the TTL so idle sessions go away promptly.
		sessions.Run(ctx, max(cfg.SessionTTL/4, time.Second))
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
