package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/inventory-intelligence-api/internal/config"
)

const scanBatchSize = 100

// RedisCache guarda relatórios no Redis sob um prefixo de chave
type RedisCache struct {
	client *redis.Client
	prefix string
	stats  Stats
}

// NewRedisClient cria o cliente Redis a partir da configuração
func NewRedisClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix != "" {
		prefix += ":"
	}
	return &RedisCache{
		client: client,
		prefix: prefix,
	}
}

// Get retorna o valor da chave e se ele existe. Chave ausente não é erro.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.stats.misses.Add(1)
			return nil, false, nil
		}
		c.stats.errors.Add(1)
		return nil, false, errors.Wrap(err, "erro ao ler do redis")
	}

	c.stats.hits.Add(1)
	return data, true, nil
}

// Set grava o valor com TTL. TTL zero grava sem expiração.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		c.stats.errors.Add(1)
		return errors.Wrap(err, "erro ao gravar no redis")
	}

	c.stats.sets.Add(1)
	return nil
}

// DeletePattern remove as chaves que casam com o padrão glob (SCAN + DEL)
func (c *RedisCache) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	var deleted int

	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+pattern, scanBatchSize).Result()
		if err != nil {
			c.stats.errors.Add(1)
			return errors.Wrap(err, "erro ao varrer chaves no redis")
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.stats.errors.Add(1)
				return errors.Wrap(err, "erro ao remover chaves no redis")
			}
			deleted += len(keys)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.stats.deletes.Add(uint64(deleted))
	return nil
}

func (c *RedisCache) Stats() StatsSnapshot {
	return c.stats.snapshot("redis")
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
