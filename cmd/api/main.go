package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/colorstock-api/internal/application/analytics"
	"github.com/jhoicas/colorstock-api/internal/application/auth"
	appinv "github.com/jhoicas/colorstock-api/internal/application/inventory"
	"github.com/jhoicas/colorstock-api/internal/application/movements"
	"github.com/jhoicas/colorstock-api/internal/application/usecase"
	"github.com/jhoicas/colorstock-api/internal/infrastructure/cache"
	"github.com/jhoicas/colorstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/colorstock-api/internal/interfaces/http"
	"github.com/jhoicas/colorstock-api/pkg/config"
	"github.com/jhoicas/colorstock-api/pkg/event"
	"github.com/jhoicas/colorstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bus := event.NewBus()

	// Caché de vistas opcional: solo si REDIS_ADDR está configurado.
	// Los eventos del motor de movimientos invalidan las páginas cacheadas.
	var viewCache *cache.ViewCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis no disponible, operando sin caché")
		} else {
			viewCache = cache.NewViewCache(rdb, time.Duration(cfg.Redis.TTLSecs)*time.Second, log)
			bus.Listen(appinv.EventMovementsChanged, func(interface{}) {
				viewCache.InvalidateMovements(context.Background())
			})
			bus.Listen(appinv.EventInventoryChanged, func(interface{}) {
				viewCache.InvalidateInventory(context.Background())
			})
			log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de vistas habilitado")
		}
	}

	// Interfaces con valor nil tipado engañan el chequeo != nil de los
	// casos de uso; solo se asignan cuando el caché existe de verdad.
	var listCache movements.ViewCache
	var invCache usecase.InventoryViewCache
	if viewCache != nil {
		listCache = viewCache
		invCache = viewCache
	}

	applyMovementUC := appinv.NewApplyMovementUseCase(txRunner, bus)
	productUC := usecase.NewProductUseCase(productRepo)
	inventoryUC := usecase.NewInventoryUseCase(invRepo, productRepo, invCache)
	reportUC := analytics.NewReportUseCase(invRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	listMovementsUC := movements.NewListMovementsUseCase(movRepo, listCache)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ColorStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		InventoryUC:   inventoryUC,
		ApplyMovement: applyMovementUC,
		ListMovements: listMovementsUC,
		ReportUC:      reportUC,
		DashboardUC:   dashboardUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
