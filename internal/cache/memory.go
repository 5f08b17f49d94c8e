package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// InitMemory initialises the package singleton with an in-process map,
// used by tests and by single-node deployments that run without Redis
func InitMemory() {
	instance = &memoryCache{
		entries: map[string]memoryEntry{},
	}
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryCache struct {
	entries map[string]memoryEntry
	mutex   sync.Mutex
}

func (m *memoryCache) Set(key string, value string, ttl time.Duration) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (m *memoryCache) Get(key string) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return "", fmt.Errorf("failed to get key[%s]", key)
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.entries, key)
		return "", fmt.Errorf("failed to get key[%s]: expired", key)
	}
	return entry.value, nil
}

func (m *memoryCache) Scan(prefix string) ([]string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	keys := []string{}
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (m *memoryCache) Del(key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.entries, key)
	return nil
}
