package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/stock-ledger/internal/application/analytics"
	"github.com/jhoicas/stock-ledger/internal/application/auth"
	"github.com/jhoicas/stock-ledger/internal/application/bootstrap"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/excel"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/lock"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stock-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/stock-ledger/internal/interfaces/http"
	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// storage repositorios y runner del driver elegido.
type storage struct {
	items      repository.ItemRepository
	txs        repository.TransactionRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	users      repository.UserRepository
	runner     inventory.TxRunner
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Str("ledger_lock", cfg.Ledger.Lock).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer st.close()

	locker, closeLocker, err := newLocker(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("candado del libro")
	}
	defer closeLocker()

	recordUC := inventory.NewRecordTransactionUseCase(st.runner, locker, log)

	if cfg.Storage.Seed {
		seeder := bootstrap.NewSeeder(bootstrap.Repositories{
			Categories: st.categories,
			Suppliers:  st.suppliers,
			Items:      st.items,
			Users:      st.users,
		}, recordUC, log)
		if _, err := seeder.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos iniciales")
		}
	}

	reportUC := report.NewReportUseCase(st.items, st.txs, infrapdf.NewReportRenderer(), excel.NewReportRenderer(), log)

	var sched *scheduler.ReportScheduler
	if cfg.Reports.Schedule != "" {
		sched, err = scheduler.New(cfg.Reports.Schedule, cfg.Reports.Dir, reportUC, log)
		if err != nil {
			log.Fatal().Err(err).Msg("programar exportación de reportes")
		}
		sched.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC: auth.NewAuthUseCase(st.users, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}, log),
		ItemUC:            usecase.NewItemUseCase(st.items, st.categories, st.suppliers, log),
		CategoryUC:        usecase.NewCategoryUseCase(st.categories),
		SupplierUC:        usecase.NewSupplierUseCase(st.suppliers),
		UserUC:            usecase.NewUserUseCase(st.users, log),
		RecordTransaction: recordUC,
		History:           inventory.NewHistoryUseCase(st.txs),
		DashboardUC:       appanalytics.NewDashboardUseCase(st.items, st.txs),
		ReportUC:          reportUC,
		JWTSecret:         cfg.JWT.Secret,
		ServiceName:       cfg.App.Name,
		Log:               log,
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

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn().Msg("driver memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &storage{
			items:      store.Items(),
			txs:        store.Transactions(),
			categories: store.Categories(),
			suppliers:  store.Suppliers(),
			users:      store.Users(),
			runner:     store,
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &storage{
		items:      postgres.NewItemRepository(pool),
		txs:        postgres.NewTransactionRepository(pool),
		categories: postgres.NewCategoryRepository(pool),
		suppliers:  postgres.NewSupplierRepository(pool),
		users:      postgres.NewUserRepository(pool),
		runner:     postgres.NewTxRunner(pool),
		close:      pool.Close,
	}, nil
}

// newLocker devuelve nil cuando LEDGER_LOCK=none; el libro funciona igual con el bloqueo de fila.
func newLocker(ctx context.Context, cfg *config.Config, log *logger.Logger) (inventory.ItemLocker, func(), error) {
	switch cfg.Ledger.Lock {
	case config.LedgerLockRedis:
		rdb, err := lock.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		ttl := time.Duration(cfg.Ledger.LockTTLSeconds) * time.Second
		return lock.NewRedisLocker(rdb, ttl, cfg.App.Name, log), func() { _ = rdb.Close() }, nil
	case config.LedgerLockLocal:
		return lock.NewKeyedMutex(), func() {}, nil
	}
	return nil, func() {}, nil
}
