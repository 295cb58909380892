// Package lock implementa inventory.ItemLocker: en proceso (KeyedMutex) o distribuido sobre Redis.
package lock

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
)

var _ inventory.ItemLocker = (*KeyedMutex)(nil)

type keyedEntry struct {
	sem  chan struct{}
	refs int
}

// KeyedMutex un mutex por artículo dentro del proceso. Las entradas se liberan cuando nadie las usa.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[int64]*keyedEntry
}

// NewKeyedMutex crea el candado por artículo.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[int64]*keyedEntry)}
}

// Lock espera el candado del artículo o hasta que ctx termine.
func (k *KeyedMutex) Lock(ctx context.Context, itemID int64) (func(), error) {
	k.mu.Lock()
	e, ok := k.entries[itemID]
	if !ok {
		e = &keyedEntry{sem: make(chan struct{}, 1)}
		k.entries[itemID] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		k.release(itemID, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			k.release(itemID, e)
		})
	}, nil
}

func (k *KeyedMutex) release(itemID int64, e *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.entries, itemID)
	}
}

// size cantidad de artículos con candado en uso o en espera.
func (k *KeyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
