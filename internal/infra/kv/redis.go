package kv

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"parkease/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Entries live under two keys: the value itself and a "<key>:ver" counter.
// Both scripts touch them together, so the pair stays consistent.
var (
	casScript = redis.NewScript(`
local ver = tonumber(redis.call('GET', KEYS[2]) or '0')
if ver ~= tonumber(ARGV[2]) then
  return 0
end
redis.call('SET', KEYS[1], ARGV[1])
redis.call('INCR', KEYS[2])
return 1`)

	putScript = redis.NewScript(`
redis.call('SET', KEYS[1], ARGV[1])
redis.call('INCR', KEYS[2])
return 1`)

	getScript = redis.NewScript(`
local value = redis.call('GET', KEYS[1])
if not value then
  return false
end
local ver = redis.call('GET', KEYS[2]) or '1'
return {value, ver}`)
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// ConnectRedis opens and pings a redis client.
func ConnectRedis(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func versionKey(key string) string {
	return key + ":ver"
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, error) {
	result, err := getScript.Run(ctx, s.client, []string{key, versionKey(key)}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, ErrKeyNotFound
		}
		return Entry{}, err
	}

	pair, ok := result.([]any)
	if !ok || len(pair) != 2 {
		return Entry{}, fmt.Errorf("unexpected reply shape for key %q", key)
	}

	value, ok := pair[0].(string)
	if !ok {
		return Entry{}, fmt.Errorf("unexpected value type for key %q", key)
	}
	verStr, ok := pair[1].(string)
	if !ok {
		return Entry{}, fmt.Errorf("unexpected version type for key %q", key)
	}
	version, err := strconv.ParseInt(verStr, 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("corrupt version for key %q: %w", key, err)
	}

	return Entry{Value: []byte(value), Version: version}, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	return putScript.Run(ctx, s.client, []string{key, versionKey(key)}, value).Err()
}

func (s *RedisStore) CompareAndSwap(ctx context.Context, key string, expectedVersion int64, value []byte) error {
	ok, err := casScript.Run(ctx, s.client, []string{key, versionKey(key)}, value, expectedVersion).Int()
	if err != nil {
		return err
	}
	if ok == 0 {
		return ErrVersionMismatch
	}
	return nil
}
