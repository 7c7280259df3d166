package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type TopupMetrics struct {
	TransactionsCreatedTotal prometheus.CounterVec
	TransactionsSettledTotal prometheus.CounterVec

	ProviderCallDuration prometheus.HistogramVec
	ProviderErrorsTotal  prometheus.Counter

	CallbacksTotal prometheus.CounterVec

	PushMessagesSentTotal prometheus.Counter
	PushSendErrorsTotal   prometheus.Counter
	SubscriptionsActive   prometheus.Gauge
	ChannelsReapedTotal   prometheus.Counter
}

func NewTopupMetrics() *TopupMetrics {
	return &TopupMetrics{
		TransactionsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "topup_transactions_created_total",
				Help: "Total transactions created",
			},
			[]string{"sku"},
		),

		TransactionsSettledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "topup_transactions_settled_total",
				Help: "Total transactions that reached a terminal status",
			},
			[]string{"status"},
		),

		ProviderCallDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "topup_provider_call_duration_seconds",
				Help:    "Fulfillment provider call duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"outcome"},
		),

		ProviderErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "topup_provider_errors_total",
				Help: "Total failed fulfillment provider calls",
			},
		),

		CallbacksTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "topup_provider_callbacks_total",
				Help: "Total provider callbacks by result",
			},
			[]string{"result"},
		),

		PushMessagesSentTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "topup_push_messages_sent_total",
				Help: "Total status records delivered over push channels",
			},
		),

		PushSendErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "topup_push_send_errors_total",
				Help: "Total push deliveries that failed and were dropped",
			},
		),

		SubscriptionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "topup_push_subscriptions_active",
				Help: "Currently registered push subscriptions",
			},
		),

		ChannelsReapedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "topup_push_channels_reaped_total",
				Help: "Push channels closed by the liveness monitor",
			},
		),
	}
}

// Record methods tolerate a nil receiver so wiring metrics stays optional
// (tests run without a registry).

func (m *TopupMetrics) RecordTransactionCreated(sku string) {
	if m == nil {
		return
	}
	m.TransactionsCreatedTotal.WithLabelValues(sku).Inc()
}

func (m *TopupMetrics) RecordTransactionSettled(status string) {
	if m == nil {
		return
	}
	m.TransactionsSettledTotal.WithLabelValues(status).Inc()
}

func (m *TopupMetrics) RecordProviderCall(outcome string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.ProviderCallDuration.WithLabelValues(outcome).Observe(durationSeconds)
	if outcome == "error" {
		m.ProviderErrorsTotal.Inc()
	}
}

func (m *TopupMetrics) RecordCallback(result string) {
	if m == nil {
		return
	}
	m.CallbacksTotal.WithLabelValues(result).Inc()
}

func (m *TopupMetrics) RecordPushSent() {
	if m == nil {
		return
	}
	m.PushMessagesSentTotal.Inc()
}

func (m *TopupMetrics) RecordPushSendError() {
	if m == nil {
		return
	}
	m.PushSendErrorsTotal.Inc()
}

func (m *TopupMetrics) RecordSubscriptionAdded() {
	if m == nil {
		return
	}
	m.SubscriptionsActive.Inc()
}

func (m *TopupMetrics) RecordSubscriptionRemoved() {
	if m == nil {
		return
	}
	m.SubscriptionsActive.Dec()
}

func (m *TopupMetrics) RecordChannelReaped() {
	if m == nil {
		return
	}
	m.ChannelsReapedTotal.Inc()
}
