package push

import (
	"encoding/json"
	"log/slog"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/metrics"
)

// StatusPublisher delivers the full current record to a subscribed channel.
// Delivery is best effort: the record is already persisted, so every failure
// here is logged and swallowed, never propagated.
type StatusPublisher struct {
	registry *Registry
	store    domain.TransactionRepository
	metrics  *metrics.TopupMetrics
}

func NewStatusPublisher(registry *Registry, store domain.TransactionRepository, m *metrics.TopupMetrics) *StatusPublisher {
	return &StatusPublisher{
		registry: registry,
		store:    store,
		metrics:  m,
	}
}

// Publish sends trx to the channel subscribed for refID, if one is present
// and open. The whole record is serialized, not a diff, so a client that
// missed earlier pushes still ends up with the latest truth.
func (p *StatusPublisher) Publish(refID string, trx *domain.Transaction) {
	ch, ok := p.registry.Lookup(refID)
	if !ok || !ch.IsOpen() {
		return
	}

	payload, err := json.Marshal(trx)
	if err != nil {
		slog.Error("failed to marshal transaction for push", "ref_id", refID, "error", err.Error())
		return
	}

	if err := ch.Send(payload); err != nil {
		slog.Error("failed to push status update", "ref_id", refID, "error", err.Error())
		p.metrics.RecordPushSendError()
		return
	}
	p.metrics.RecordPushSent()
}

// Subscribe registers the channel and immediately delivers a snapshot if the
// record already exists, closing the race between creation and first push.
func (p *StatusPublisher) Subscribe(refID string, ch domain.PushChannel) {
	p.registry.Subscribe(refID, ch)
	trx, err := p.store.GetTransactionByRefID(refID)
	if err != nil {
		return
	}
	p.Publish(refID, trx)
}

func (p *StatusPublisher) Unsubscribe(ch domain.PushChannel) {
	p.registry.Unsubscribe(ch)
}
