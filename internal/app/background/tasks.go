package background

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/kafka"
	"github.com/jawirlabs/topup-order-service/internal/push"
	trxusecase "github.com/jawirlabs/topup-order-service/internal/usecase/transaction"
)

const paymentConsumerGroup = "topup-order-service"

type BackgroundTasks struct {
	TrxUsecase trxusecase.TransactionUsecase
	Monitor    *push.LivenessMonitor
	Subscriber domain.SubscriberPort
}

func NewBackgroundTasks(trxUC trxusecase.TransactionUsecase, monitor *push.LivenessMonitor, subscriber domain.SubscriberPort) *BackgroundTasks {
	return &BackgroundTasks{
		TrxUsecase: trxUC,
		Monitor:    monitor,
		Subscriber: subscriber,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.Monitor.Start(ctx)
	if bt.Subscriber != nil {
		go bt.startPaymentEventsConsumer(ctx)
	}
}

// startPaymentEventsConsumer applies payment confirmations arriving from the
// payment gateway topic. Confirming an already-processed transaction is a
// no-op, so redelivery is safe.
func (bt *BackgroundTasks) startPaymentEventsConsumer(ctx context.Context) {
	messages, err := bt.Subscriber.Subscribe(kafka.TopicPaymentEvents, paymentConsumerGroup)
	if err != nil {
		slog.Error("failed to subscribe to payment events", "error", err.Error())
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			var event kafka.PaymentEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				slog.Error("malformed payment event", "error", err.Error())
				continue
			}
			if err := bt.TrxUsecase.ConfirmPayment(ctx, event.RefID); err != nil {
				slog.Error("payment event processing failed",
					"ref_id", event.RefID,
					"error", err.Error())
			}
		}
	}
}
