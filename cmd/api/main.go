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

	"github.com/jcastano/moda-admin-api/internal/application/auth"
	appinventory "github.com/jcastano/moda-admin-api/internal/application/inventory"
	"github.com/jcastano/moda-admin-api/internal/application/usecase"
	"github.com/jcastano/moda-admin-api/internal/infrastructure/cache"
	infrapdf "github.com/jcastano/moda-admin-api/internal/infrastructure/pdf"
	"github.com/jcastano/moda-admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastano/moda-admin-api/internal/interfaces/http"
	"github.com/jcastano/moda-admin-api/pkg/config"
	"github.com/jcastano/moda-admin-api/pkg/logger"
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
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	variantRepo := postgres.NewVariantLedgerRepository(pool)

	// Caché de vistas de stock — opcional; sin REDIS_ADDR la app consulta
	// siempre la base de datos.
	var viewCache appinventory.StockViewCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		viewCache = cache.NewRedisStockViewCache(rdb, cfg.Redis.ViewTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de stock habilitada")
	}

	reportGenerator := infrapdf.NewMarotoStockReportGenerator()
	inventoryUC := appinventory.NewUseCase(productRepo, variantRepo, viewCache, reportGenerator)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	brandUC := usecase.NewBrandUseCase(brandRepo)
	bannerUC := usecase.NewBannerUseCase(bannerRepo)
	productUC := usecase.NewProductUseCase(productRepo, brandRepo, viewCache)
	authUC := auth.NewAuthUseCase(userRepo, brandRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Moda Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CategoryUC:  categoryUC,
		BrandUC:     brandUC,
		BannerUC:    bannerUC,
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		JWTSecret:   cfg.JWT.Secret,
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
