// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agrikom/agrimarket-backend/internal/config"
	"github.com/agrikom/agrimarket-backend/internal/database"
	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/ledger"
	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if cfg.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// Local record store is always available
	store, err := localstore.Open(cfg.Local.Path)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open local store")
	}
	defer store.Close()

	// Remote backend is optional; without it every repository runs on the
	// local store alone.
	var db *gorm.DB
	if cfg.Remote.Configured() {
		db, err = database.Connect(cfg.Remote)
		if err != nil {
			logrus.WithError(err).Warn("Remote backend unreachable, running local-only")
			db = nil
		} else {
			defer database.Close(db)
			if err := database.RunMigrations(db); err != nil {
				logrus.WithError(err).Fatal("Failed to run migrations")
			}
		}
	} else {
		logrus.Info("Remote backend not configured, running local-only")
	}

	repos := repository.New(db, store)

	// Change notification bus, optionally bridged across processes
	bus := events.NewBus()
	if cfg.Redis.URL != "" {
		bridge, err := events.NewRedisBridge(cfg.Redis.URL, bus)
		if err != nil {
			logrus.WithError(err).Warn("Redis bridge unavailable, notifications stay in-process")
		} else {
			defer bridge.Close()
		}
	}

	l := ledger.New(repos.Revenue, bus)

	r, robotService := router.Initialize(repos, bus, l, cfg)

	if cfg.Robot.Enabled {
		robotService.StartSimulator(time.Duration(cfg.Robot.TickInterval) * time.Second)
		defer robotService.StopSimulator()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.Server.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("Server forced to shutdown")
	}

	logrus.Info("Server exited")
}
