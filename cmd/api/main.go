package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/crm-pro/internal/application/seed"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
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

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones al día")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	window, err := buildWindow(cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("ventana de siembra")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	store := postgres.NewSeedStore(pool)
	exec := seed.NewExecutor(cfg.Seed, postgres.IsTransient, rng, log)
	seeder := seed.NewSeeder(store, exec, rng, log)
	tracker := seed.NewTracker()
	orch := seed.NewOrchestrator(store, seeder, tracker, window, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Orchestrator:         orch,
		DefaultComprehensive: cfg.Seed.Comprehensive,
		JWTSecret:            cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(15 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}

func buildWindow(cfg config.SeedConfig) (seed.DateRange, error) {
	start, end, err := cfg.Window()
	if err != nil {
		return seed.DateRange{}, err
	}
	return seed.DateRange{Start: start, End: end}, nil
}
