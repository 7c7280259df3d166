package usecase

import (
	"github.com/jawirlabs/topup-order-service/internal/domain"
	trxdto "github.com/jawirlabs/topup-order-service/internal/usecase/dto/transaction"
)

// HandleProviderCallback applies the provider's asynchronous verdict. Unlike
// the payment-confirmed transition it is not guarded by the current status:
// the callback is authoritative and overwrites even a settled transaction.
// Duplicate callbacks are naturally idempotent, they write the same fields.
func (uc *DefaultTransactionUsecase) HandleProviderCallback(input *trxdto.ProviderCallbackInput) error {
	unlock := uc.locks.Lock(input.RefID)
	defer unlock()

	trx, err := uc.TrxRepo.GetTransactionByRefID(input.RefID)
	if err != nil {
		uc.Metrics.RecordCallback("unknown_ref")
		return err
	}

	update := domain.StatusUpdate{
		Status:  domain.NormalizeStatus(input.Status),
		Message: input.Message,
		SN:      input.SN,
	}
	if err := uc.applyTransition(trx, update); err != nil {
		uc.Metrics.RecordCallback("error")
		return err
	}

	// A pending verdict keeps the record non-terminal, so it needs the same
	// fallback settlement a pending fulfillment response gets.
	if update.Status == domain.StatusPendingProvider {
		uc.Scheduler.Schedule(settleKey(input.RefID), uc.cfg.SettleAfter, func() {
			uc.settlePendingProvider(input.RefID)
		})
	}

	uc.Metrics.RecordCallback("ok")
	return nil
}
