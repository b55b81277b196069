package app

import (
	"context"
	"fmt"

	"ice-cream-shop/cache"
	"ice-cream-shop/config"
	"ice-cream-shop/controllers"
	"ice-cream-shop/middleware"
	"ice-cream-shop/repositories"
	"ice-cream-shop/routes"
	"ice-cream-shop/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App is the assembled storefront: the router plus the connections it holds.
type App struct {
	Router *gin.Engine
	Cart   *services.CartStore

	closers []func()
}

// New connects the catalog and cache backends named by cfg and wires every
// route. Call Close when done.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{}

	var catalog repositories.CatalogRepository = repositories.NewMemoryCatalogRepository()
	if cfg.CatalogSource == config.CatalogPostgres {
		db, err := config.ConnectDB(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect catalog database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		catalog = repositories.NewPostgresCatalogRepository(db)
	}

	menu, err := services.NewMenuService(ctx, catalog)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load menu: %w", err)
	}

	redisClient := config.ConnectRedis(ctx, cfg, logger)
	if redisClient != nil {
		a.closers = append(a.closers, func() { redisClient.Close() })
	}
	menuCache := cache.NewMenuCache(redisClient, cfg.MenuCacheTTL)
	if err := menuCache.Invalidate(ctx); err != nil {
		logger.Warn("Failed to invalidate menu cache", zap.Error(err))
	}

	ids, err := services.NewIDGenerator(cfg.CartIDStrategy)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Cart = services.NewCartStore(ids, logger.Named("cart"))
	checkout := services.NewCheckoutService(a.Cart, cfg.Tax(), cfg.OrderClearDelay, logger.Named("checkout"))
	contact := services.NewContactService(logger.Named("contact"))
	if cfg.MailEnabled() {
		mailer := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.ContactInbox)
		checkout.WithMailer(mailer)
		contact.WithMailer(mailer)
	} else {
		logger.Info("SMTP not configured, contact messages are only logged")
	}

	a.Router = gin.New()
	a.Router.Use(gin.Recovery())
	a.Router.Use(middleware.RequestLogger(logger.Named("http")))
	a.Router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(a.Router, routes.Controllers{
		Shop:     &controllers.ShopController{},
		Menu:     controllers.NewMenuController(menu, menuCache, logger.Named("menu")),
		Cart:     controllers.NewCartController(a.Cart, menu),
		Checkout: controllers.NewCheckoutController(checkout),
		Contact:  controllers.NewContactController(contact),
	})

	return a, nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
