// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/webbooks/internal/platform/constants"
)

// RedisStore implements [Store] with one Redis hash per session.
//
// Every write refreshes the hash expiry, so a session lives for ttl after the
// visitor's last write.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

/*
Get reads a single session value.

Parameters:
  - context: context.Context
  - sessionID: string
  - key: string

Returns:
  - string: Stored value
  - bool: Whether the key was present
  - error: Connectivity errors
*/
func (store *RedisStore) Get(context context.Context, sessionID, key string) (string, bool, error) {
	value, err := store.client.HGet(context, redisKey(sessionID), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis_session_get_failed: %w", err)
	}
	return value, true, nil
}

/*
Set writes a session value and slides the session expiry.

Parameters:
  - context: context.Context
  - sessionID: string
  - key: string
  - value: string

Returns:
  - error: Connectivity errors
*/
func (store *RedisStore) Set(context context.Context, sessionID, key, value string) error {
	hashKey := redisKey(sessionID)

	// HSET and EXPIRE go out in one MULTI/EXEC round trip.
	_, err := store.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.HSet(context, hashKey, key, value)
		pipe.Expire(context, hashKey, store.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func redisKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}
