package app

import (
	"fmt"
	"log/slog"
	"time"

	"pasar/internal/config"
	"pasar/internal/handlers"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// App is the assembled HTTP application.
type App struct {
	Fiber *fiber.App
	Store repositories.Store
	Auth  *services.AuthService
}

// New opens the configured store, seeds it when asked and registers every
// route. publisher may be nil, in which case order events are not published.
func New(cfg config.Config, publisher services.EventPublisher) (*App, error) {
	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.SeedData {
		if err := Seed(store); err != nil {
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
	}

	authService := services.NewAuthService(cfg.JWTSecret)
	userService := services.NewUserService(store)
	catalogService := services.NewCatalogService(store)
	cartService := services.NewCartService(store)
	orderService := services.NewOrderService(store, publisher)
	reviewService := services.NewReviewService(store)
	wishlistService := services.NewWishlistService(store)

	guards := handlers.Guards{
		Auth: middleware.AuthRequired(authService),
		User: middleware.ResolveUser(userService),
	}

	app := fiber.New(fiber.Config{
		AppName:      "pasar",
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  cfg.DatabaseDriver,
			"broker": publisher != nil,
		})
	})

	apiV1 := app.Group("/api/v1")
	handlers.NewUserHandler(userService).RegisterRoutes(apiV1, guards)
	handlers.NewCategoryHandler(catalogService).RegisterRoutes(apiV1, guards)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(apiV1, guards)
	handlers.NewProductHandler(catalogService).RegisterRoutes(apiV1, guards)
	handlers.NewCartHandler(cartService).RegisterRoutes(apiV1, guards)
	handlers.NewOrderHandler(orderService).RegisterRoutes(apiV1, guards)
	handlers.NewWishlistHandler(wishlistService).RegisterRoutes(apiV1, guards)

	return &App{
		Fiber: app,
		Store: store,
		Auth:  authService,
	}, nil
}

// OpenStore returns the store selected by DATABASE_DRIVER.
func OpenStore(cfg config.Config) (repositories.Store, error) {
	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case config.DriverMemory:
		slog.Info("using in-memory store")
		return repositories.NewMemoryStore(), nil
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DatabaseDriver, err)
	}
	store, err := repositories.NewGORMStore(db)
	if err != nil {
		return nil, err
	}
	slog.Info("using database store", "driver", cfg.DatabaseDriver)
	return store, nil
}

// errorHandler answers errors that escaped a handler, such as unknown routes.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code == fiber.StatusInternalServerError {
		slog.Error("unhandled error", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// LogOrderEvent is the consumer side of order events. It only records them.
func LogOrderEvent(event models.OrderEvent) error {
	slog.Info("order event received",
		"id", event.ID,
		"type", event.Type,
		"order_id", event.OrderID,
		"user_id", event.UserID,
		"status", event.Status,
		"total", event.Total.StringFixed(2),
	)
	return nil
}
