package cache

import (
	"fmt"
	"overseer/internal/common"
	"time"

	"github.com/go-redis/redis/v7"
)

const (
	defaultNetworkTimeout     = 5 * time.Second
	defaultNetworkIdleTimeout = 30 * time.Second
)

// InitRedisOpts configures the InitRedis method
type InitRedisOpts struct {
	Addr     string
	Username string
	Password string

	ServiceLogs chan<- common.ServiceLog
}

// InitRedis initialises the package singleton with a Redis-backed
// cache and verifies connectivity with a ping
func InitRedis(opts InitRedisOpts) error {
	serviceLogs := opts.ServiceLogs
	if serviceLogs == nil {
		serviceLogs = common.GetNoopServiceLog()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.Username,
		Password:     opts.Password,
		DB:           0,
		DialTimeout:  defaultNetworkTimeout,
		ReadTimeout:  defaultNetworkTimeout,
		WriteTimeout: defaultNetworkTimeout,
		IdleTimeout:  defaultNetworkIdleTimeout,
	})
	if err := client.Ping().Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at addr[%s]: %w", opts.Addr, err)
	}
	instance = &redisCache{
		client:      client,
		serviceLogs: serviceLogs,
	}
	return nil
}

type redisCache struct {
	client      *redis.Client
	serviceLogs chan<- common.ServiceLog
}

func (r *redisCache) Set(key string, value string, ttl time.Duration) error {
	status := r.client.Set(key, value, ttl)
	if status.Err() != nil {
		return fmt.Errorf("failed to set key[%s]: %w", key, status.Err())
	}
	r.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "set key[%s]", key)
	return nil
}

func (r *redisCache) Get(key string) (string, error) {
	response := r.client.Get(key)
	if response.Err() != nil {
		return "", fmt.Errorf("failed to get key[%s]: %w", key, response.Err())
	}
	return response.Val(), nil
}

func (r *redisCache) Scan(prefix string) ([]string, error) {
	response := r.client.Keys(prefix + "*")
	if response.Err() != nil {
		return nil, fmt.Errorf("failed to list keys[%s]: %w", prefix, response.Err())
	}
	keys := response.Val()
	r.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "found %v keys with prefix[%s]", len(keys), prefix)
	return keys, nil
}

func (r *redisCache) Del(key string) error {
	response := r.client.Unlink(key)
	if response.Err() != nil {
		return fmt.Errorf("failed to delete key[%s]: %w", key, response.Err())
	}
	r.serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "deleted key[%s]", key)
	return nil
}
