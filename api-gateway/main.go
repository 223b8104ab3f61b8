package main

import (
	"log"
	"net/http"
	"time"

	"food-ordering/api-gateway/internal/gateway"
	"food-ordering/config"

	"github.com/rs/cors"
)

func main() {
	settings := config.Load()

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL:     settings.OrderSvcURL,
		AnalyticsSvcURL: settings.AnalyticsSvcURL,
	}, &http.Client{Timeout: 30 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := ":" + settings.GatewayPort
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
