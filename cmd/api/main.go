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

	"github.com/jhoicas/churn-predictor-api/internal/application/dto"
	"github.com/jhoicas/churn-predictor-api/internal/application/usecase"
	"github.com/jhoicas/churn-predictor-api/internal/domain/churn"
	infraai "github.com/jhoicas/churn-predictor-api/internal/infrastructure/ai"
	"github.com/jhoicas/churn-predictor-api/internal/infrastructure/artifact"
	inframail "github.com/jhoicas/churn-predictor-api/internal/infrastructure/mail"
	httpRouter "github.com/jhoicas/churn-predictor-api/internal/interfaces/http"
	"github.com/jhoicas/churn-predictor-api/pkg/config"
	"github.com/jhoicas/churn-predictor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Artefactos del entrenamiento: carga única al arrancar, solo lectura
	// después. Si alguno no se puede leer, no se sirve con un modelo nulo:
	// el arranque falla aquí con un diagnóstico claro.
	bundle, err := artifact.LoadModelBundle(cfg.Artifacts.ModelPath)
	if err != nil {
		log.Fatal().Err(err).Msg("carga del artefacto de modelo")
	}
	encoders, err := artifact.LoadEncoders(cfg.Artifacts.EncodersPath)
	if err != nil {
		log.Fatal().Err(err).Msg("carga del artefacto de codificadores")
	}
	log.Info().
		Int("features", bundle.Model.NumFeatures()).
		Int("encoders", len(encoders)).
		Str("version", bundle.Version).
		Msg("artefactos cargados")

	// Los secretos no son fatales al arrancar: la generación y el correo
	// fallan con error descriptivo solo cuando se usan.
	if cfg.AI.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY no configurado; se usarán mensajes de respaldo")
	}
	if cfg.SMTP.Address == "" || cfg.SMTP.Password == "" {
		log.Warn().Msg("MAIL_ADDRESS / MAIL_PASSWORD no configurados; la entrega de correo fallará")
	}

	preparer := churn.NewPreparer(encoders, churn.PreparerOptions{AllowMissing: false})
	generator := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	mailer := inframail.NewGomailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Address, cfg.SMTP.Password)
	predictUC := usecase.NewPredictUseCase(bundle.Model, preparer, generator, mailer, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		// Ningún error llega al cliente como crash sin estructura.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(dto.NewError("INTERNAL", err.Error()))
		},
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Churn Predictor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if err := httpRouter.Router(app, httpRouter.RouterDeps{
		PredictUC: predictUC,
		Encoders:  encoders,
	}); err != nil {
		log.Fatal().Err(err).Msg("registro de rutas")
	}

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
