package main

import (
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Ordenes-api/pkg/config"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

// Aplica las migraciones de esquema y termina. Pensado para ejecutarse
// antes del despliegue o en un job de inicialización.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones fallidas")
	}
	log.Info().Msg("migraciones aplicadas")
}
