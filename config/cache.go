package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Cache *redis.Client

// ConnectCache sets up the Redis client used for short-lived response
// caching. Redis is optional: with no REDIS_URL the app runs uncached.
func ConnectCache(redisURL string) {
	if redisURL == "" {
		log.Warn().Msg("Redis URL not configured, running without cache")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Error().Err(err).Msg("Invalid Redis URL, running without cache")
		return
	}

	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error().Err(err).Msg("Redis unreachable, running without cache")
		return
	}

	log.Info().Msg("Connected to Redis")
	Cache = client
}

// CloseCache closes the Redis connection
func CloseCache() {
	if Cache != nil {
		if err := Cache.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Redis connection")
		}
	}
}
