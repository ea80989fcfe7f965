package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/reusedev/plant-hub/internal/modules/history"
	"github.com/reusedev/plant-hub/internal/modules/logs"
)

const HistoryListKey = "history_list"

type Manager[T any] struct {
	cache *cache.Cache[T]
}

var (
	historyCacheManager *Manager[[]history.Entry]
)

func init() {
	historyCacheManager = NewManager[[]history.Entry](5*time.Minute, 5*time.Minute)
}

func NewManager[T any](defaultExpiration, cleanupInterval time.Duration) *Manager[T] {
	client := gocache.New(defaultExpiration, cleanupInterval)
	return &Manager[T]{
		cache: cache.New[T](go_cache.NewGoCache(client)),
	}
}

func HistoryCacheManager() *Manager[[]history.Entry] {
	return historyCacheManager
}

func (m *Manager[T]) SetWithExpiration(key string, value T, expir time.Duration) error {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return m.cache.Set(timeout, key, value, store.WithExpiration(expir))
}

// GetValue reports ok=false without an error when key is absent or expired.
func (m *Manager[T]) GetValue(key string) (value T, ok bool, err error) {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	const errorMessage = "value not found"
	value, err = m.cache.Get(timeout, key)
	if err != nil {
		if strings.Contains(err.Error(), errorMessage) {
			err = nil
		}
		return
	}
	ok = true
	return
}

func (m *Manager[T]) Delete(key string) error {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return m.cache.Delete(timeout, key)
}

// historyGeneration counts history writes. A list read before a write must
// not be cached after it.
var historyGeneration struct {
	lock  sync.Mutex
	value uint64
}

// HistoryGeneration is taken before reading the store for CacheHistoryList.
func HistoryGeneration() uint64 {
	historyGeneration.lock.Lock()
	defer historyGeneration.lock.Unlock()
	return historyGeneration.value
}

// CacheHistoryList stores entries only if no write happened since generation
// was taken, and reports whether it did.
func CacheHistoryList(generation uint64, entries []history.Entry, expir time.Duration) (bool, error) {
	historyGeneration.lock.Lock()
	defer historyGeneration.lock.Unlock()
	if generation != historyGeneration.value {
		return false, nil
	}
	return true, historyCacheManager.SetWithExpiration(HistoryListKey, entries, expir)
}

// HistoryInvalidator drops the cached history list whenever the store changes.
type HistoryInvalidator struct{}

func (HistoryInvalidator) Update(event string, _ interface{}) {
	historyGeneration.lock.Lock()
	defer historyGeneration.lock.Unlock()
	historyGeneration.value++
	if err := historyCacheManager.Delete(HistoryListKey); err != nil {
		logs.Logger.Warn().Err(err).Str("event", event).Msg("history-invalidateCache")
	}
}
