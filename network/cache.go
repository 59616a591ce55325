package network

import "sync"

// ClientCache is an explicit endpoint-to-client map with insert-if-absent
// semantics. Callers that talk to several nodes own one of these instead
// of a process-wide global; clients are keyed by endpoint URL and reused.
type ClientCache struct {
	mu      sync.Mutex
	clients map[string]*Client
}

// NewClientCache creates an empty cache.
func NewClientCache() *ClientCache {
	return &ClientCache{clients: make(map[string]*Client)}
}

// GetOrCreate returns the cached client for cfg.URL, creating and caching
// one on first use. Two calls with the same URL return the same client.
func (cc *ClientCache) GetOrCreate(cfg NodeConfig) *Client {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if c, ok := cc.clients[cfg.URL]; ok {
		return c
	}
	c := NewClient(cfg)
	cc.clients[cfg.URL] = c
	return c
}

// Len reports the number of cached clients.
func (cc *ClientCache) Len() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return len(cc.clients)
}
