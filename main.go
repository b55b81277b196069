package main

import (
	"context"
	"log"

	"ice-cream-shop/app"
	"ice-cream-shop/config"
	_ "ice-cream-shop/docs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Sweet Dreams Ice Cream API
// @version 1.0
// @description Storefront API: menu, cart and mock checkout.
// @host localhost:8082
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	shop, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to start app", zap.Error(err))
	}
	defer shop.Close()

	port := ":" + cfg.Port
	logger.Info("Server starting",
		zap.String("port", port),
		zap.String("env", cfg.AppEnv),
		zap.String("catalog", cfg.CatalogSource),
		zap.String("swagger", "http://localhost:"+cfg.Port+"/swagger/index.html"),
	)

	if err := shop.Router.Run(port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
