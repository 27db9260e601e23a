package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Norumai01/HonkaiBackendV2/internal/config"
	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

type App struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
}

func NewApp(cfg *config.Config) (*App, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = newDBPool(ctx, cfg.DBUrl)
		cancel()
		if err == nil {
			utils.Logger.Infof("Successfully connected to database on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed to connect to database on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
		}

		time.Sleep(backoff)
		backoff *= 2
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// One ping up front so a misconfigured address fails the boot rather
	// than the first authenticated request. Requests made while Redis is
	// down later are rejected by the blacklist check, not retried forever;
	// go-redis reconnects on its own once the server returns.
	pingCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("unable to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	utils.Logger.Info("Successfully connected to redis")

	return &App{
		Config: cfg,
		DB:     dbPool,
		Redis:  rdb,
	}, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("Database connection closed.")
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			utils.Logger.WithError(err).Warn("Failed to close redis client.")
		} else {
			utils.Logger.Info("Redis connection closed.")
		}
	}
}

// newDBPool constructs the pgx pool with production-safe settings.
func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	return pgxpool.ConnectConfig(ctx, cfg)
}
