package main

import (
	"context"
	"fmt"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/thought-service/internal/config"
	"github.com/s21platform/thought-service/internal/databus/mirror"
	"github.com/s21platform/thought-service/internal/repository/pebblestore"
)

const mirrorConsumerGroupID = "thought-mirror-applier"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	store, err := pebblestore.New(cfg.Pebble.Path)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open pebble store: %v", err))
		panic(err)
	}
	defer store.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx := context.WithValue(context.Background(), config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.MirrorTopic,
		mirrorConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
	}

	mirrorHandler := mirror.New(store)
	consumer.RegisterHandler(ctx, func(ctx context.Context, in []byte) error {
		mirrorHandler.Handler(ctx, in)
		return nil
	})

	<-ctx.Done()
}
