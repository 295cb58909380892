package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

var _ inventory.ItemLocker = (*RedisLocker)(nil)

const (
	retryInterval = 50 * time.Millisecond
	retryAttempts = 40
)

// RedisLocker candado por artículo compartido entre instancias del servicio.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	prefix string
	log    *logger.Logger
}

// NewRedisClient abre el cliente y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewRedisLocker construye el candado distribuido. ttl acota cuánto sobrevive un candado huérfano.
func NewRedisLocker(rdb redis.UniversalClient, ttl time.Duration, prefix string, log *logger.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RedisLocker{client: redislock.New(rdb), ttl: ttl, prefix: prefix, log: log.Named("redislock")}
}

func (l *RedisLocker) key(itemID int64) string {
	return fmt.Sprintf("%s:item:%d", l.prefix, itemID)
}

// Lock reintenta durante unos dos segundos antes de rendirse con redislock.ErrNotObtained.
func (l *RedisLocker) Lock(ctx context.Context, itemID int64) (func(), error) {
	key := l.key(itemID)
	lk, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(retryInterval), retryAttempts),
	})
	if err != nil {
		return nil, fmt.Errorf("obtain %s: %w", key, err)
	}
	return func() {
		// Contexto propio: el del request puede estar cancelado cuando se libera.
		relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := lk.Release(relCtx); err != nil && err != redislock.ErrLockNotHeld {
			l.log.Warn().Err(err).Str("key", key).Msg("no se pudo liberar el candado")
		}
	}, nil
}
