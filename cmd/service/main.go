package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/thought-service/internal/client/discord"
	"github.com/s21platform/thought-service/internal/config"
	"github.com/s21platform/thought-service/internal/infra"
	"github.com/s21platform/thought-service/internal/pkg/jwt"
	"github.com/s21platform/thought-service/internal/pkg/tx"
	"github.com/s21platform/thought-service/internal/pkg/validator"
	"github.com/s21platform/thought-service/internal/repository/pebblestore"
	"github.com/s21platform/thought-service/internal/repository/postgres"
	"github.com/s21platform/thought-service/internal/rest"
	"github.com/s21platform/thought-service/internal/service/mirror"
	"github.com/s21platform/thought-service/internal/service/recovery"
	syncsvc "github.com/s21platform/thought-service/internal/service/sync"
)

// recordStore is the full storage surface the service wires together. Both
// backends implement it; nothing past this point knows which one is running.
type recordStore interface {
	rest.DBRepo
	syncsvc.DBRepo
	recovery.DBRepo
	tx.DBRepo
	Close()
}

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := newRecordStore(cfg, logger)
	defer dbRepo.Close()

	discordClient := discord.New(cfg)
	defer discordClient.Close()

	producerConfig := kafkalib.DefaultProducerConfig(cfg.Kafka.Host, cfg.Kafka.Port, cfg.Kafka.MirrorTopic)
	producer := kafkalib.NewProducer(producerConfig)

	mirrorService := mirror.New(producer)
	dispatcher := syncsvc.New(dbRepo, discordClient, mirrorService, cfg)
	engine := recovery.New(dbRepo, discordClient, cfg)

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Auth.JWTSecret)

	handler := rest.New(dbRepo, dispatcher, engine, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, jwtGenerator)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	handler.AttachRoutes(router)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx := context.WithValue(context.Background(), config.KeyLogger, logger)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		mirrorService.Run(ctx)
		return nil
	})

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
	mirrorService.Wait()
}

func newRecordStore(cfg *config.Config, logger *logger_lib.Logger) recordStore {
	switch cfg.Storage.Backend {
	case "pebble":
		store, err := pebblestore.New(cfg.Pebble.Path)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to open pebble store: %v", err))
			panic(err)
		}
		return store
	default:
		return postgres.New(cfg)
	}
}
