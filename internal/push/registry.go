package push

import (
	"sync"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/metrics"
)

// Registry maps a transaction reference to at most one live push channel.
// It is volatile by design: nothing survives a restart, clients resubscribe.
type Registry struct {
	mu       sync.Mutex
	channels map[string]domain.PushChannel
	metrics  *metrics.TopupMetrics
}

func NewRegistry(m *metrics.TopupMetrics) *Registry {
	return &Registry{
		channels: make(map[string]domain.PushChannel),
		metrics:  m,
	}
}

// Subscribe registers the channel for refID. A prior channel under the same
// key is replaced, not queued behind.
func (r *Registry) Subscribe(refID string, ch domain.PushChannel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, replaced := r.channels[refID]; !replaced {
		r.metrics.RecordSubscriptionAdded()
	}
	r.channels[refID] = ch
}

// Unsubscribe removes every mapping whose value is this channel. A channel
// could in principle sit under more than one key over its life.
func (r *Registry) Unsubscribe(ch domain.PushChannel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for refID, registered := range r.channels {
		if registered == ch {
			delete(r.channels, refID)
			r.metrics.RecordSubscriptionRemoved()
		}
	}
}

func (r *Registry) Lookup(refID string) (domain.PushChannel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[refID]
	return ch, ok
}

// Snapshot copies the current mapping for the liveness monitor, so probing
// never holds the registry lock across network writes.
func (r *Registry) Snapshot() map[string]domain.PushChannel {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]domain.PushChannel, len(r.channels))
	for refID, ch := range r.channels {
		out[refID] = ch
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.channels)
}
