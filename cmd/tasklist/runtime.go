package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tasklist/internal/config"
	"tasklist/internal/domain"
	"tasklist/internal/domain/repositories"
	tasksRepo "tasklist/internal/domain/repositories/tasks"
	tasksSvc "tasklist/internal/domain/services/tasks"
	"tasklist/internal/repository/memory"
	"tasklist/internal/repository/postgres"
	postgresTasks "tasklist/internal/repository/postgres/tasks"
	"tasklist/internal/seed"
	"tasklist/internal/service/auth"
	serviceTasks "tasklist/internal/service/tasks"

	"github.com/jackc/pgx/v5/pgxpool"
)

// runtime holds everything one command invocation needs
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger

	listRepo  tasksRepo.ListRepository
	itemRepo  tasksRepo.ItemRepository
	txManager repositories.TransactionManager

	// pool and tables are nil for the memory store
	pool   *pgxpool.Pool
	tables *postgres.TableNames

	lists     tasksSvc.ListService
	items     tasksSvc.ItemService
	dashboard tasksSvc.DashboardService

	closers []func()
}

// loadConfig applies command-line overrides on top of the environment
func loadConfig() *config.Config {
	cfg := config.Load()
	if storeKind != "" {
		cfg.Store = storeKind
	}
	if logDir != "" {
		cfg.LogDir = logDir
	}
	return cfg
}

// newRuntime opens the configured store and builds the services
func newRuntime(ctx context.Context, cfg *config.Config) (*runtime, error) {
	rt := &runtime{cfg: cfg}

	if err := rt.setupLogger(); err != nil {
		return nil, err
	}

	switch cfg.Store {
	case config.StoreMemory:
		store := memory.NewStore()
		rt.listRepo = store.Lists()
		rt.itemRepo = store.Items()
		rt.txManager = store.TransactionManager()
	case config.StorePostgres:
		if err := rt.openPostgres(ctx); err != nil {
			rt.Close()
			return nil, err
		}
	default:
		rt.Close()
		return nil, fmt.Errorf("unknown store %q (want %s or %s)", cfg.Store, config.StorePostgres, config.StoreMemory)
	}

	rt.lists = serviceTasks.NewListService(rt.listRepo, rt.txManager, cfg, rt.logger)
	authorizer := auth.NewOwnerBasedAuthorizer(rt.itemRepo, rt.logger)
	rt.items = serviceTasks.NewItemService(rt.itemRepo, rt.txManager, authorizer, nil, rt.logger)
	rt.dashboard = serviceTasks.NewDashboardService(rt.listRepo, rt.logger)

	rt.logger.Debug("runtime ready",
		"environment", cfg.Environment,
		"store", cfg.Store,
		"table_prefix", cfg.TablePrefix,
	)
	return rt, nil
}

func (rt *runtime) setupLogger() error {
	var w io.Writer = os.Stderr
	if rt.cfg.LogDir != "" {
		f, err := config.SetupLogFile(rt.cfg.LogDir, rt.cfg.LogMaxFiles)
		if err != nil {
			return err
		}
		rt.closers = append(rt.closers, func() { _ = f.Close() })
		w = f
	}
	rt.logger = config.NewLogger(rt.cfg, w)
	slog.SetDefault(rt.logger)
	return nil
}

func (rt *runtime) openPostgres(ctx context.Context) error {
	if rt.cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set (use --store memory to run without a database)")
	}

	pool, err := postgres.CreateConnectionPool(ctx, rt.cfg.DatabaseURL, postgres.DefaultPoolOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	rt.closers = append(rt.closers, pool.Close)

	rt.pool = pool
	rt.tables = postgres.NewTableNames(rt.cfg.TablePrefix)

	if err := postgres.EnsureSchema(ctx, pool, rt.tables); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: rt.tables,
		Logger: rt.logger,
	}
	rt.listRepo = postgresTasks.NewListRepository(repoConfig)
	rt.itemRepo = postgresTasks.NewItemRepository(repoConfig)
	rt.txManager = postgres.NewTransactionManager(pool, rt.logger)

	rt.logger.Debug("database connected",
		"max_conns", postgres.DefaultPoolOptions.MaxConns,
		"min_conns", postgres.DefaultPoolOptions.MinConns,
	)
	return nil
}

// Close releases the pool and log file in reverse order of acquisition
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}

func (rt *runtime) newSeeder() (*seed.Seeder, error) {
	return seed.NewSeeder(rt.listRepo, rt.itemRepo, rt.txManager, rt.logger)
}

// ownerRuntime opens a runtime for commands that act as an owner. The memory
// store starts empty on every run, so it is seeded with the demo fixture first.
func ownerRuntime(ctx context.Context) (*runtime, string, error) {
	cfg := loadConfig()

	owner := ownerID
	if owner == "" {
		if cfg.Store != config.StoreMemory {
			return nil, "", errors.New("--owner is required")
		}
		owner = "demo"
	}

	rt, err := newRuntime(ctx, cfg)
	if err != nil {
		return nil, "", err
	}

	if cfg.Store == config.StoreMemory {
		seeder, err := rt.newSeeder()
		if err != nil {
			rt.Close()
			return nil, "", err
		}
		if _, err := seeder.Seed(ctx, owner); err != nil {
			rt.Close()
			return nil, "", err
		}
	}
	return rt, owner, nil
}

// requireDestructiveAllowed blocks operations that delete data in production
func requireDestructiveAllowed(cfg *config.Config, what string) error {
	if cfg.IsProduction() {
		return fmt.Errorf("%s is blocked in the production environment", what)
	}
	return nil
}

// describeError turns domain errors into short messages for the terminal
func describeError(err error) string {
	var violation *domain.OwnershipViolationError
	switch {
	case errors.As(err, &violation):
		return fmt.Sprintf("list %d does not belong to you", violation.ListID)
	case errors.Is(err, context.Canceled):
		return "interrupted"
	default:
		return err.Error()
	}
}
