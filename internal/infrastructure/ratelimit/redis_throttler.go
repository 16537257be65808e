package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
)

// Options controla limites de tentativa de login
type Options struct {
	Limit         int64         // tentativas por janela
	Window        time.Duration // janela do limite
	LockThreshold int64         // falhas seguidas até bloquear
	LockTTL       time.Duration // duração do bloqueio
}

// RedisThrottler implementa ports.LoginThrottler com contadores no Redis
type RedisThrottler struct {
	client *redis.Client
	opts   Options
}

// NewRedisClient cria um cliente a partir de REDIS_URL
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return redis.NewClient(opt), nil
}

// NewRedisThrottler cria um RedisThrottler
func NewRedisThrottler(client *redis.Client, opts Options) ports.LoginThrottler {
	return &RedisThrottler{client: client, opts: opts}
}

func rateKey(key string) string { return "login:rate:" + key }
func failKey(key string) string { return "login:fail:" + key }
func lockKey(key string) string { return "login:lock:" + key }

// Allow conta a tentativa na janela atual (INCR + EXPIRE em pipeline)
func (t *RedisThrottler) Allow(ctx context.Context, key string) (bool, error) {
	locked, err := t.isLocked(ctx, key)
	if err != nil {
		return true, err
	}
	if locked {
		return false, nil
	}

	pipe := t.client.Pipeline()
	incr := pipe.Incr(ctx, rateKey(key))
	pipe.Expire(ctx, rateKey(key), t.opts.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, err
	}
	return incr.Val() <= t.opts.Limit, nil
}

// RegisterFailure bloqueia a chave ao atingir LockThreshold falhas
func (t *RedisThrottler) RegisterFailure(ctx context.Context, key string) error {
	pipe := t.client.Pipeline()
	incr := pipe.Incr(ctx, failKey(key))
	pipe.Expire(ctx, failKey(key), t.opts.LockTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if incr.Val() >= t.opts.LockThreshold {
		return t.client.Set(ctx, lockKey(key), "1", t.opts.LockTTL).Err()
	}
	return nil
}

func (t *RedisThrottler) Reset(ctx context.Context, key string) error {
	return t.client.Del(ctx, rateKey(key), failKey(key), lockKey(key)).Err()
}

func (t *RedisThrottler) isLocked(ctx context.Context, key string) (bool, error) {
	err := t.client.Get(ctx, lockKey(key)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NoopThrottler nunca limita (REDIS_URL vazio)
type NoopThrottler struct{}

// NewNoopThrottler cria um NoopThrottler
func NewNoopThrottler() ports.LoginThrottler {
	return NoopThrottler{}
}

func (NoopThrottler) Allow(context.Context, string) (bool, error)  { return true, nil }
func (NoopThrottler) RegisterFailure(context.Context, string) error { return nil }
func (NoopThrottler) Reset(context.Context, string) error           { return nil }
