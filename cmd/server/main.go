package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"hamburgeria-backend/internal/config"
	"hamburgeria-backend/internal/db"
	"hamburgeria-backend/internal/events"
	"hamburgeria-backend/internal/httpserver"
	"hamburgeria-backend/internal/logging"
	loggingmw "hamburgeria-backend/internal/middleware/logging"
	"hamburgeria-backend/internal/repo"
	"hamburgeria-backend/internal/search"
	"hamburgeria-backend/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	// A failed connection is not fatal: the process comes up in degraded
	// mode and every data route answers 503. A schema failure on a working
	// connection is fatal.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg.DSN())
	cancel()
	if err != nil {
		logger.Warn("database unavailable, starting degraded", "error", err)
		database = nil
	} else if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("schema ensure: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	var esClient *elasticsearch.Client
	if cfg.ESURL != "" {
		esClient, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Warn("elasticsearch unavailable, search disabled", "error", err)
			esClient = nil
		}
	}

	store := &repo.GormRepo{DB: database}
	menuSvc := &service.MenuService{Repo: store}
	orderSvc := &service.OrderService{Repo: store}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		MenuHandler:    &httpserver.MenuHTTP{Svc: menuSvc, Producer: producer, ES: esClient},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderSvc, Producer: producer},
		StoreAvailable: database != nil,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if database != nil {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
