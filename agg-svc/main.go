package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"food-ordering/agg-svc/internal/service"
	"food-ordering/agg-svc/internal/storage"
	"food-ordering/config"
)

func main() {
	settings := config.Load()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(settings.OrdersTopic, "agg-svc-consumer")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb))
	consumer.Start(ctx)
}
