package out

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hunttrack/internal/modules/metrics/dto"
	metricsout "hunttrack/internal/modules/metrics/port/out"
)

// RedisPublisher stores the latest dashboard under a key and announces it on
// a channel for widgets that subscribe.
type RedisPublisher struct {
	client  *redis.Client
	key     string
	channel string
	logger  *zap.Logger
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
	Channel  string
}

func NewRedisPublisher(ctx context.Context, opts RedisOptions, logger *zap.Logger) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("dashboard publisher connected", zap.String("addr", opts.Addr), zap.String("channel", opts.Channel))
	return &RedisPublisher{client: client, key: opts.Key, channel: opts.Channel, logger: logger}, nil
}

var _ metricsout.SnapshotPublisher = (*RedisPublisher)(nil)

func (p *RedisPublisher) Publish(ctx context.Context, dashboard dto.DashboardOutput) error {
	payload, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("marshal dashboard: %w", err)
	}
	pipe := p.client.TxPipeline()
	if p.key != "" {
		pipe.Set(ctx, p.key, payload, 0)
	}
	if p.channel != "" {
		pipe.Publish(ctx, p.channel, payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		p.logger.Error("publish dashboard", zap.String("key", p.key), zap.Error(err))
		return fmt.Errorf("publish dashboard: %w", err)
	}
	p.logger.Debug("dashboard published", zap.String("key", p.key), zap.Int("bytes", len(payload)))
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// NoopPublisher is used when no redis address is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, dto.DashboardOutput) error { return nil }
