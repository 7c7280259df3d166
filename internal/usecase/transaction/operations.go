package usecase

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/jawirlabs/topup-order-service/internal/domain"
	publisher "github.com/jawirlabs/topup-order-service/internal/infrastructure/kafka"
)

// applyTransition persists the update, mirrors it onto the in-memory record,
// and only then publishes, so a push payload never reflects unpersisted state.
// A persistence failure aborts the transition and surfaces to the caller.
func (uc *DefaultTransactionUsecase) applyTransition(trx *domain.Transaction, update domain.StatusUpdate) error {
	if err := uc.TrxRepo.UpdateTransactionStatus(trx.RefID, update); err != nil {
		return err
	}

	trx.Status = update.Status
	trx.Message = update.Message
	if update.SN != "" {
		trx.SN = update.SN
	}

	if update.Status.IsTerminal() {
		uc.Metrics.RecordTransactionSettled(string(update.Status))
		uc.Scheduler.Cancel(paymentKey(trx.RefID))
		uc.Scheduler.Cancel(settleKey(trx.RefID))
	}

	uc.StatusPub.Publish(trx.RefID, trx)
	uc.emitEvent(trx)
	return nil
}

func (uc *DefaultTransactionUsecase) emitEvent(trx *domain.Transaction) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.TransactionEvent) {
		if err := publisher.PublishTransaction(uc.Publisher, event); err != nil {
			slog.Error("failed to publish kafka TransactionEvent", "ref_id", event.RefID, "error", err.Error())
		}
	}(publisher.TransactionEvent{
		EventID:    uuid.NewString(),
		RefID:      trx.RefID,
		CustomerNo: trx.CustomerNo,
		SKU:        trx.SKU,
		TotalPrice: trx.TotalPrice,
		Status:     string(trx.Status),
		Message:    trx.Message,
	})
}
