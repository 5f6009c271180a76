package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrLock возвращается, когда Redis не ответил на попытку взять блокировку
var ErrLock = errors.New("locker: failed to acquire lock")

// Client часть redis.Cmdable, нужная блокировке
type Client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Locker блокировка на SET NX с TTL. Снимается только по истечении TTL.
type Locker struct {
	client Client
	prefix string
	owner  string
}

// New создает блокировку. С nil клиентом любая попытка успешна (Redis выключен).
func New(client Client, prefix, owner string) *Locker {
	return &Locker{client: client, prefix: prefix, owner: owner}
}

// TryLock пытается занять ключ на ttl; false - ключ уже занят
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if l.client == nil {
		return true, nil
	}

	ok, err := l.client.SetNX(ctx, l.prefix+key, l.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrLock, key, err)
	}
	return ok, nil
}

// NewRedisClient создает клиента и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int, timeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return client, nil
}
