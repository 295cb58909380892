package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/pkg/logger"
)

func TestKeyedMutex_ExclusionPorArticulo(t *testing.T) {
	k := NewKeyedMutex()
	var (
		mu      sync.Mutex
		inside  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := k.Lock(context.Background(), 1)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, k.size())
}

func TestKeyedMutex_ArticulosDistintosNoSeBloquean(t *testing.T) {
	k := NewKeyedMutex()
	u1, err := k.Lock(context.Background(), 1)
	require.NoError(t, err)
	defer u1()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	u2, err := k.Lock(ctx, 2)
	require.NoError(t, err)
	u2()
}

func TestKeyedMutex_RespetaContexto(t *testing.T) {
	k := NewKeyedMutex()
	unlock, err := k.Lock(context.Background(), 7)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = k.Lock(ctx, 7)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock() // idempotente
	assert.Equal(t, 0, k.size())
}

func TestRedisLocker_ServidorInaccesible(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer rdb.Close()

	l := NewRedisLocker(rdb, time.Second, "test", logger.Nop())
	assert.Equal(t, "test:item:9", l.key(9))

	_, err := l.Lock(context.Background(), 9)
	assert.Error(t, err)
}
