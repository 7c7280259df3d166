package push

import (
	"context"
	"log"
	"time"

	"github.com/jawirlabs/topup-order-service/internal/infrastructure/metrics"
)

// LivenessMonitor probes every registered channel on a fixed interval. A
// channel that did not confirm the previous probe is closed and removed, so
// the registry stays bounded by actually-live clients.
type LivenessMonitor struct {
	registry *Registry
	interval time.Duration
	metrics  *metrics.TopupMetrics
}

func NewLivenessMonitor(registry *Registry, interval time.Duration, m *metrics.TopupMetrics) *LivenessMonitor {
	return &LivenessMonitor{
		registry: registry,
		interval: interval,
		metrics:  m,
	}
}

func (lm *LivenessMonitor) Start(ctx context.Context) {
	ticker := time.NewTicker(lm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			lm.Sweep()
		}
	}
}

// Sweep runs one probe round: reap unconfirmed channels, mark the rest
// unconfirmed and probe them again.
func (lm *LivenessMonitor) Sweep() {
	for refID, ch := range lm.registry.Snapshot() {
		if !ch.Confirmed() {
			ch.Close()
			lm.registry.Unsubscribe(ch)
			lm.metrics.RecordChannelReaped()
			log.Printf("push channel for %s failed liveness probe, removed", refID)
			continue
		}
		if err := ch.Probe(); err != nil {
			ch.Close()
			lm.registry.Unsubscribe(ch)
			lm.metrics.RecordChannelReaped()
		}
	}
}
