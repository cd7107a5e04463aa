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

	"github.com/andriansp/epc-catalog-api/internal/application/auth"
	"github.com/andriansp/epc-catalog-api/internal/application/usecase"
	infrapdf "github.com/andriansp/epc-catalog-api/internal/infrastructure/pdf"
	"github.com/andriansp/epc-catalog-api/internal/infrastructure/postgres"
	httpRouter "github.com/andriansp/epc-catalog-api/internal/interfaces/http"
	"github.com/andriansp/epc-catalog-api/pkg/config"
	"github.com/andriansp/epc-catalog-api/pkg/logger"
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

	masterCategoryRepo := postgres.NewMasterCategoryRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	typeCategoryRepo := postgres.NewTypeCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	dokumenRepo := postgres.NewDokumenRepository(pool)
	itemCategoryRepo := postgres.NewItemCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	masterCategoryUC := usecase.NewMasterCategoryUseCase(masterCategoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	typeCategoryUC := usecase.NewTypeCategoryUseCase(typeCategoryRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	dokumenUC := usecase.NewDokumenUseCase(dokumenRepo, txRunner)
	itemCategoryUC := usecase.NewItemCategoryUseCase(itemCategoryRepo, dokumenRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	authUC := auth.NewUseCase(userRepo, auth.Config{
		Secret:            cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
		ExpirationMinutes: cfg.JWT.Expiration,
	})

	pdfGenerator := infrapdf.NewCatalogSheetGenerator()

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MasterCategoryUC: masterCategoryUC,
		CategoryUC:       categoryUC,
		TypeCategoryUC:   typeCategoryUC,
		UnitUC:           unitUC,
		DokumenUC:        dokumenUC,
		ItemCategoryUC:   itemCategoryUC,
		ProductUC:        productUC,
		AuthUC:           authUC,
		PDFGenerator:     pdfGenerator,
		JWTSecret:        cfg.JWT.Secret,
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
