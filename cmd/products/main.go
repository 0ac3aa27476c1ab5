package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ProductHub/internal/config"
	"ProductHub/internal/products"
	"ProductHub/pkg/kit"
)

func main() {
	service := "products"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg := config.Load()

	h := products.NewHandler(products.NewStore(), products.HTTPDeps{
		Log:              log,
		Service:          service,
		Registry:         prometheus.NewRegistry(),
		APIKey:           cfg.APIKey,
		WriteLimitPerMin: cfg.WriteLimitPerMin,
		MetricsEnabled:   cfg.MetricsEnabled,
		MetricsToken:     cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(cfg.Addr, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
