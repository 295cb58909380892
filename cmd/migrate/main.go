// migrate aplica las migraciones SQL embebidas sobre PostgreSQL y, opcionalmente, siembra datos iniciales.
//
// Uso: go run ./cmd/migrate [-seed] [-list]
// La conexión se toma de la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/bootstrap"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

func main() {
	seed := flag.Bool("seed", false, "sembrar datos iniciales si las tablas están vacías")
	list := flag.Bool("list", false, "listar las migraciones embebidas y salir")
	flag.Parse()

	if *list {
		names, err := postgres.MigrationNames()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer migraciones: %v\n", err)
			os.Exit(1)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	if *seed {
		ledger := inventory.NewRecordTransactionUseCase(postgres.NewTxRunner(pool), nil, log)
		seeder := bootstrap.NewSeeder(bootstrap.Repositories{
			Categories: postgres.NewCategoryRepository(pool),
			Suppliers:  postgres.NewSupplierRepository(pool),
			Items:      postgres.NewItemRepository(pool),
			Users:      postgres.NewUserRepository(pool),
		}, ledger, log)
		if _, err := seeder.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos iniciales")
		}
	}
	log.Info().Msg("base de datos lista")
}
