package api

import (
	"context"
	"net/http"
	"sync"

	"ice-cream-shop/app"
	"ice-cream-shop/config"
	_ "ice-cream-shop/docs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	shop    *app.App
	initErr error
	once    sync.Once
)

// initApp builds the app once per serverless instance. The cart lives as
// long as the instance does.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.ParseConfig()
		if err != nil {
			initErr = err
			return
		}
		logger, err := config.NewLogger(cfg)
		if err != nil {
			initErr = err
			return
		}

		shop, initErr = app.New(context.Background(), cfg, logger)
		if initErr != nil {
			logger.Error("Failed to start app", zap.Error(initErr))
		}
	})
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"success":false,"message":"Service unavailable"}`))
		return
	}
	shop.Router.ServeHTTP(w, r)
}
