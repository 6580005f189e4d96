package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/tu-usuario/crm-pro/internal/application/seed"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Corre el pipeline completo de siembra de forma sincrónica desde la línea
// de comandos. Útil para poblar una base nueva sin levantar la API.
func main() {
	tenantID := flag.String("tenant", "", "tenant existente a sembrar (vacío usa el demo)")
	minimal := flag.Bool("minimal", false, "sembrar solo el CRM base")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	start, end, err := cfg.Seed.Window()
	if err != nil {
		log.Fatal().Err(err).Msg("ventana de siembra")
	}
	window := seed.DateRange{Start: start, End: end}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	store := postgres.NewSeedStore(pool)
	exec := seed.NewExecutor(cfg.Seed, postgres.IsTransient, rng, log)
	seeder := seed.NewSeeder(store, exec, rng, log)
	orch := seed.NewOrchestrator(store, seeder, seed.NewTracker(), window, log)

	opts := seed.Options{
		TenantID:      *tenantID,
		Comprehensive: cfg.Seed.Comprehensive && !*minimal,
	}

	summary, err := orch.Run(ctx, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("siembra fallida")
	}

	for kind, res := range summary.Results {
		log.Info().
			Str("clase", string(kind)).
			Int("persistidos", res.Persisted).
			Int("fallidos", res.Failed).
			Bool("saltada", res.Skipped).
			Msg("resultado")
	}
	log.Info().
		Str("tenant", summary.TenantID).
		Int("total", summary.Total()).
		Dur("duracion", summary.FinishedAt.Sub(summary.StartedAt)).
		Msg("siembra completada")
}
