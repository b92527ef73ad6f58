// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/constants"
	"github.com/taibuivan/webbooks/internal/platform/respond"
)

// # Rate Limiting

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientTable holds one token bucket per client address.
type clientTable struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	limit   rate.Limit
	burst   int
}

func newClientTable(limit rate.Limit, burst int) *clientTable {
	return &clientTable{
		clients: make(map[string]*rateLimitClient),
		limit:   limit,
		burst:   burst,
	}
}

// allow takes one token from ip's bucket, creating the bucket on first sight.
func (table *clientTable) allow(ip string, now time.Time) bool {
	table.mu.Lock()
	defer table.mu.Unlock()

	client, found := table.clients[ip]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(table.limit, table.burst)}
		table.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

// sweep forgets clients idle for longer than ttl.
func (table *clientTable) sweep(now time.Time, ttl time.Duration) int {
	table.mu.Lock()
	defer table.mu.Unlock()

	removed := 0
	for ip, client := range table.clients {
		if now.Sub(client.lastSeen) > ttl {
			delete(table.clients, ip)
			removed++
		}
	}
	return removed
}

func (table *clientTable) size() int {
	table.mu.Lock()
	defer table.mu.Unlock()
	return len(table.clients)
}

/*
RateLimit throttles each client address with its own token bucket.

Each call owns its own table, so separate routers never share buckets. Idle
clients are swept on an interval until context is cancelled. Rejected
requests get 429 with a Retry-After of one second.
*/
func RateLimit(context context.Context) func(http.Handler) http.Handler {
	table := newClientTable(rate.Limit(constants.DefaultRateLimitRPS), constants.DefaultRateLimitBurst)

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				table.sweep(now, constants.RateLimitClientTTL)
			case <-context.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !table.allow(RealIP(request), time.Now()) {
				writer.Header().Set("Retry-After", "1")
				respond.Error(writer, request, apperr.TooManyRequests())
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
