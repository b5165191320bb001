package trajectory

import (
	"bytes"
	"sync"
)

// responseCache memoizes rendered query responses. Position queries for a
// fixed (query, time) pair are deterministic between feed updates, so the
// whole cache is dropped whenever a realtime snapshot lands.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func newResponseCache() *responseCache {
	return &responseCache{entries: map[string][]byte{}}
}

func memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func (rc *responseCache) get(key string) ([]byte, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	buf, ok := rc.entries[key]
	return buf, ok
}

func (rc *responseCache) set(key string, buf []byte) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries[key] = buf
}

func (rc *responseCache) clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = map[string][]byte{}
}
