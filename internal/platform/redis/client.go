// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis provides the client backing visitor sessions.

Session hashes expire on their own, so Redis holds per-visitor state (the
index page visit counter) without any cleanup job in the application.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/webbooks/internal/platform/constants"
)

const (
	dialTimeout  = 3 * time.Second
	ioTimeout    = 2 * time.Second
	pingTimeout  = 2 * time.Second
	pingAttempts = 3
	pingBackoff  = 500 * time.Millisecond
)

/*
NewClient parses redisURL and returns a connected client.

Startup pings are retried a few times with a growing pause, since Redis often
comes up alongside the API in compose setups. The client is closed again if
every attempt fails.
*/
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	// One HGET or HSET+EXPIRE per index view; a small pool is enough.
	options.PoolSize = 8
	options.MinIdleConns = 1
	options.MaxIdleConns = 4
	options.ClientName = constants.AppName
	options.DialTimeout = dialTimeout
	options.ReadTimeout = ioTimeout
	options.WriteTimeout = ioTimeout
	options.ContextTimeoutEnabled = true

	client := redis.NewClient(options)

	for attempt := 1; ; attempt++ {
		err = Ping(context, client)
		if err == nil {
			break
		}
		if attempt == pingAttempts {
			_ = client.Close()
			return nil, err
		}

		logger.Warn("redis_ping_retry", slog.Int("attempt", attempt), slog.Any("error", err))
		select {
		case <-time.After(time.Duration(attempt) * pingBackoff):
		case <-context.Done():
			_ = client.Close()
			return nil, fmt.Errorf("redis: %w", context.Err())
		}
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)
	return client, nil
}

// Ping checks the connection within pingTimeout.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
