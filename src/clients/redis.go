package clients

import (
	"context"
	"fmt"
	"time"

	"bizpulse-api/src/internal/config"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(cfg *config.Redis) (*RedisClient, error) {
	opts, err := redis.ParseURL(cfg.Url)
	if err != nil {
		opts = &redis.Options{Addr: cfg.Url}
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.Db != 0 {
		opts.DB = cfg.Db
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.WithError(err).Error("Failed to connect to Redis")
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.WithField("addr", opts.Addr).Info("Connected to Redis")
	return &RedisClient{Client: client}, nil
}

func (r *RedisClient) Close() error {
	if err := r.Client.Close(); err != nil {
		log.WithError(err).Error("Failed to close Redis connection")
		return err
	}
	log.Info("Redis connection closed")
	return nil
}
