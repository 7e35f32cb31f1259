package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/bookstore-go/bookstore/memengine"
	"github.com/AntonStoeckl/bookstore-go/bookstore/oteladapters"
	"github.com/AntonStoeckl/bookstore-go/config"
	"github.com/AntonStoeckl/bookstore-go/httpapi"
)

const instrumentationName = "github.com/AntonStoeckl/bookstore-go"

func main() {
	cfg, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	storeOptions := []memengine.Option{
		memengine.WithDuplicateIDPolicy(cfg.DuplicateIDPolicy()),
		memengine.WithLogger(logger),
	}
	routerOptions := []httpapi.Option{
		httpapi.WithLogger(logger),
	}

	if cfg.StaticDir != "" {
		routerOptions = append(routerOptions, httpapi.WithStaticDir(cfg.StaticDir))
	}

	var providers *config.ObservabilityProviders
	if cfg.ObservabilityEnabled {
		providers, err = config.NewObservabilityProviders(context.Background(), cfg)
		if err != nil {
			log.Fatalf("failed to set up observability: %v", err)
		}

		contextualLogger := oteladapters.NewSlogBridgeLogger(instrumentationName)
		metrics := oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))
		tracing := oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))

		storeOptions = append(storeOptions,
			memengine.WithContextualLogger(contextualLogger),
			memengine.WithMetrics(metrics),
			memengine.WithTracing(tracing),
		)
		routerOptions = append(routerOptions,
			httpapi.WithContextualLogger(contextualLogger),
			httpapi.WithMetrics(metrics),
		)
	}

	store, err := memengine.NewBookStore(storeOptions...)
	if err != nil {
		log.Fatalf("failed to create book store: %v", err)
	}

	router, err := httpapi.NewRouter(store, routerOptions...)
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	srv := &http.Server{
		Addr:         cfg.BindAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	logger.Info("bookserver listening",
		"bind", cfg.BindAddr,
		"duplicate_id_policy", cfg.DuplicateIDPolicy().String(),
		"observability_enabled", cfg.ObservabilityEnabled,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err.Error())
	}

	if providers != nil {
		if err := providers.Shutdown(ctx); err != nil {
			logger.Error("observability shutdown failed", "error", err.Error())
		}
	}

	logger.Info("bookserver stopped")
}
