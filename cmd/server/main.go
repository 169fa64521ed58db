// HTTP-сервер CRM: клиенты, лиды, тикеты и программа лояльности
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/crm/internal/api"
	config "github.com/glkeru/crm/internal/config"
	db "github.com/glkeru/crm/internal/db"
	interf "github.com/glkeru/crm/internal/interfaces"
	services "github.com/glkeru/crm/internal/services"
	otelinit "github.com/glkeru/crm/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// tracing
	if cfg.OTLPEndpoint != "" {
		shutdown := otelinit.InitTracer(ctx, cfg.OTLPEndpoint, "crm")
		defer shutdown()
	}

	// database
	storage, err := db.NewCRMDB(cfg, logger)
	if err != nil {
		logger.Fatal("database initialization error", zap.Error(err))
	}
	defer storage.Close(context.Background())

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService(cfg)
	if err != nil {
		logger.Error(err.Error())
	} else {
		cache = redis
	}

	// services
	loyalty := services.NewLoyaltyService(logger, storage, cache)
	customers := services.NewCustomerService(logger, storage)

	// api handlers
	h := api.NewHandler(customers, loyalty, storage, storage, storage, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(h, "crm"),
		Addr:         cfg.RunAddress,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting crm server", zap.String("addr", cfg.RunAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// shutdown
	g.Go(func() error {
		<-ctx.Done()
		timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(timeout); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
