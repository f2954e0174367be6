// Package store implements the client-wide key-value storage shared by every
// screen of the Pulse client: the session token, the user profile and the
// pending-verification marker live here.
//
// Two backends are available: a local SQLite file (default) and Redis, for
// clients that share one session across processes.
package store

import (
	"context"
	"fmt"
	"strings"
)

// Store is a byte-oriented key-value store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Delete of an absent key is not an error.
//   - Apply executes all ops atomically: either every op is visible or none is.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Apply(ctx context.Context, ops ...Op) error
	Close() error
}

// Op is a single write inside an atomic Apply.
type Op struct {
	Key    string
	Value  []byte
	Delete bool
}

// Put returns an Op storing value under key.
func Put(key string, value []byte) Op {
	return Op{Key: key, Value: value}
}

// Remove returns an Op deleting key.
func Remove(key string) Op {
	return Op{Key: key, Delete: true}
}

// Open opens the store described by dsn:
//
//	sqlite:<path>          local SQLite file (":memory:" works for tests)
//	redis://host:port/db   Redis server
//	<path>                 shorthand for sqlite:<path>
func Open(ctx context.Context, dsn string) (Store, error) {
	switch {
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return OpenRedis(ctx, dsn)
	case strings.HasPrefix(dsn, "sqlite:"):
		return OpenSQLite(ctx, strings.TrimPrefix(dsn, "sqlite:"))
	case dsn == "":
		return nil, fmt.Errorf("empty store dsn")
	default:
		return OpenSQLite(ctx, dsn)
	}
}
