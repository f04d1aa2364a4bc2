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

	"github.com/tu-usuario/auth-api/internal/application/auth"
	"github.com/tu-usuario/auth-api/internal/application/usecase"
	"github.com/tu-usuario/auth-api/internal/infrastructure/cache"
	"github.com/tu-usuario/auth-api/internal/infrastructure/mail"
	"github.com/tu-usuario/auth-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/auth-api/internal/interfaces/http"
	"github.com/tu-usuario/auth-api/pkg/config"
	"github.com/tu-usuario/auth-api/pkg/logger"
	"github.com/tu-usuario/auth-api/pkg/resettoken"
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

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	limiter := cache.NewRateLimiter(redisClient, time.Duration(cfg.Reset.RateLimitSeconds)*time.Second)
	mailer := mail.NewSMTPSender(cfg.SMTP)
	resetTokens := resettoken.New(cfg.Reset.Secret, time.Duration(cfg.Reset.ValidityHours)*time.Hour)

	authUC := auth.NewAuthUseCase(userRepo, limiter, mailer, resetTokens,
		auth.JWTConfig{
			Secret:        cfg.JWT.Secret,
			AccessMinutes: cfg.JWT.AccessMinutes,
			RefreshDays:   cfg.JWT.RefreshDays,
			Issuer:        cfg.JWT.Issuer,
		},
		auth.ResetConfig{
			FrontendURL:   cfg.Reset.FrontendURL,
			PublicBaseURL: cfg.Reset.PublicBaseURL,
			// Eco de uid/token solo en desarrollo; nunca en producción.
			DebugEcho: cfg.App.Env == "development",
		},
	)
	userUC := usecase.NewUserUseCase(userRepo)

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
		Title:    "Auth API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		JWTSecret: cfg.JWT.Secret,
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
