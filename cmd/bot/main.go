package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/divine-names-bot/internal/config"
	"github.com/aliskhannn/divine-names-bot/internal/delivery/health"
	"github.com/aliskhannn/divine-names-bot/internal/delivery/telegram"
	"github.com/aliskhannn/divine-names-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/divine-names-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/divine-names-bot/internal/infra/redis"
	"github.com/aliskhannn/divine-names-bot/internal/logger"
	"github.com/aliskhannn/divine-names-bot/internal/repository"
	"github.com/aliskhannn/divine-names-bot/internal/service"
	"github.com/aliskhannn/divine-names-bot/internal/storage"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	// Initialize repositories.
	nameRepo := repository.NewNameRepository()

	categoryIndex, err := repository.NewCategoryIndex(nameRepo)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	for _, problem := range categoryIndex.Validate() {
		lg.Warn("category data problem", zap.String("problem", problem))
	}

	var (
		duaRepo    *repository.DuaRepository
		detailRepo *repository.DetailRepository
	)
	var loaders errgroup.Group
	loaders.Go(func() error {
		duaRepo = repository.NewDuaRepository(cfg.DuasJSONPath, lg)
		return nil
	})
	loaders.Go(func() error {
		detailRepo = repository.NewDetailRepository(cfg.DetailsJSONPath, lg)
		return nil
	})
	_ = loaders.Wait()

	lg.Info("data loaded",
		zap.Int("names", nameRepo.Len()),
		zap.Int("categories", len(categoryIndex.All())),
		zap.Int("duas", duaRepo.Len()),
		zap.Int("details", detailRepo.Len()),
	)

	flagStore, checks, closeStore, err := newFlagStore(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize services.
	nameService := service.NewNameService(nameRepo, categoryIndex, detailRepo)
	quizService := service.NewQuizService(
		service.NewQuizGenerator(nameRepo, nil),
		storage.NewQuizStorage(),
		cfg.Quiz.QuestionCount,
		lg,
	)
	duaService := service.NewDuaService(duaRepo)
	tutorialService := service.NewTutorialService(flagStore)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	if _, err := bot.Request(telegram.Commands()); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	handler := telegram.NewHandler(bot, lg, nameService, quizService, duaService, tutorialService)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := handler.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if cfg.HTTP.Addr != "" {
		srv := health.NewServer(cfg.HTTP.Addr, lg, checks)

		g.Go(srv.Run)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

// newFlagStore builds the configured tutorial flag backend together with
// its health checks and a close function.
func newFlagStore(ctx context.Context, cfg *config.Config, lg *zap.Logger) (service.FlagStore, map[string]health.Checker, func(), error) {
	checks := make(map[string]health.Checker)

	switch cfg.Flags.Backend {
	case config.FlagsBackendPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("prepare postgres: %w", err)
		}

		checks["postgres"] = health.CheckerFunc(pool.Ping)
		lg.Info("tutorial flags stored in postgres")

		return pgrepo.NewTutorialRepository(pool, postgres.NewTransactor(pool)), checks, pool.Close, nil

	case config.FlagsBackendRedis:
		rdb, err := redis.NewClient(ctx, redis.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to redis: %w", err)
		}

		checks["redis"] = health.CheckerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		lg.Info("tutorial flags stored in redis", zap.String("addr", cfg.Redis.Addr))

		closeFn := func() {
			if err := rdb.Close(); err != nil {
				lg.Warn("failed to close redis client", zap.Error(err))
			}
		}
		return redis.NewTutorialStore(rdb, "tutorial"), checks, closeFn, nil

	default:
		lg.Info("tutorial flags stored in memory")
		return storage.NewFlagStorage(), checks, func() {}, nil
	}
}
