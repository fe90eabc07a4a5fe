package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	// CheckLoginRateLimit records an attempt and returns isAllowed,
	// attempts left and seconds to wait.
	CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error)
}

type redisRepository struct {
	client redis.Cmdable
	cfg    *config.RateConfig
	now    func() time.Time
}

func NewRedisClient(cfg *config.RedisConnect) (*redis.Client, error) {
	slog.Info("Connecting to Redis", slog.String("host", cfg.Host), slog.String("port", cfg.Port))

	opt, err := redis.ParseURL(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.DB = cfg.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Successfully connected to Redis")

	return client, nil
}

func NewRateLimitRepo(client redis.Cmdable, cfg *config.RateConfig) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg, now: time.Now}
}

func loginAttemptsKey(username string) string {
	return "login_attempts:" + username
}

// Sliding window over a sorted set: one member per attempt, scored by its
// unix time. Entries older than the window are trimmed on every check.
func (r *redisRepository) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {
	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsKey(username)
	now := r.now()
	window := int64(r.cfg.WindowSize.Seconds())
	windowStart := now.Unix() - window

	pipe := r.client.TxPipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.Unix()), Member: now.UnixNano()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))

		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts > r.cfg.MaxAttempts {
		scores, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil {
			return false, 0, int(window), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		if len(scores) == 0 {
			return false, 0, int(window), nil
		}

		retryAfter := max(int64(scores[0].Score)+window-now.Unix(), 1)

		logger.Warn("Rate limit exceeded", slog.String("username", username), slog.Int64("attempts", attempts))

		return false, 0, int(retryAfter), nil
	}

	return true, int(r.cfg.MaxAttempts - attempts), 0, nil
}
