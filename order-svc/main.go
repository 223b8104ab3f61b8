package main

import (
	"context"
	"log"

	"food-ordering/config"
	httpapi "food-ordering/order-svc/internal/api/http"
	"food-ordering/order-svc/internal/service"
	"food-ordering/order-svc/internal/storage"
)

func main() {
	settings := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(settings.OrdersTopic)
	defer writer.Close()

	provider := storage.NewProvider(db)
	if err := provider.WithConn(context.Background(), func(q storage.Querier) error {
		return storage.EnsureSchema(context.Background(), q)
	}); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	tokens := service.NewJWTManager(settings.JWTSecret, settings.JWTTTL)
	catalogStore := storage.NewCatalogStore()

	accounts := service.NewAccountService(provider, storage.NewUserStore(), tokens)
	catalog := service.NewCatalogService(provider, catalogStore)
	orders := service.NewOrderService(
		provider,
		catalogStore,
		storage.NewOrderStore(),
		storage.NewDraftStore(rdb, settings.DraftTTL),
		storage.NewKafkaPublisher(writer),
		service.DefaultQRGenerator{BaseURL: settings.PublicBaseURL},
	)

	handler := httpapi.NewHandler(accounts, catalog, orders, tokens)
	httpapi.StartServer(":"+settings.OrderSvcPort, httpapi.NewRouter(handler))
}
