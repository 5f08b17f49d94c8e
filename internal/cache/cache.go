package cache

import (
	"time"
)

var instance Cache

// Cache is the session allow-list store. Keys are namespaced by the
// caller; values are plain strings with a ttl.
type Cache interface {
	Set(key string, value string, ttl time.Duration) (err error)
	Get(key string) (value string, err error)
	Scan(prefix string) (keys []string, err error)
	Del(key string) (err error)
}

func Get() Cache {
	return instance
}
