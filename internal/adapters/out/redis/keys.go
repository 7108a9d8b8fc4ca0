// Package redis holds the Redis-backed adapters: live event fan-out over
// pub/sub, session lookup for authentication and the consumer dedup set.
package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	// KeySession maps session:{token} to "{role}:{user id}".
	KeySession = "session:%s"

	// KeyDedup marks an event as processed: dedup:{consumer}:{event id}.
	KeyDedup = "dedup:%s:%s"
)

var TTLDedup = 48 * time.Hour

// NewClient returns a client for addr. An empty password disables AUTH.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}
