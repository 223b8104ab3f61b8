package main

import (
	"food-ordering/config"

	httpapi "food-ordering/analytics-svc/internal/api/http"
	"food-ordering/analytics-svc/internal/service"
)

func main() {
	settings := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	analytics := service.NewAnalyticsService(db, rdb)
	handler := httpapi.NewHandler(analytics)

	httpapi.StartServer(":"+settings.AnalyticsSvcPort, httpapi.NewRouter(handler))
}
