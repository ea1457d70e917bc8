package main

import (
	"log"
	"net/http"

	"kasir-be/internal/config"
	"kasir-be/internal/db"
	"kasir-be/internal/handler"
	"kasir-be/internal/logger"
	"kasir-be/internal/middleware"
	"kasir-be/internal/order"
	"kasir-be/internal/payment"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	orderRepo := order.NewRepository(database)
	gateway := payment.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransEnv, cfg.VerifySignature)

	h := handler.New(gateway, orderRepo)

	mux := http.NewServeMux()
	mux.HandleFunc("/payment", h.PaymentHandler)
	mux.HandleFunc("/webhook/payment", h.WebhookHandler)

	chain := logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.RateLimitMiddleware(mux),
		),
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}

	log.Printf("payment bridge listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, chain))
}
