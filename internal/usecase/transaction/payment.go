package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/jawirlabs/topup-order-service/internal/domain"
)

const (
	msgProcessing    = "Pembayaran berhasil! Kami sedang memproses pesanan Anda."
	msgProviderError = "Terjadi kesalahan saat menghubungi provider."
	msgAutoSettled   = "Transaksi berhasil diselesaikan."
)

func paymentKey(refID string) string { return "pay:" + refID }
func settleKey(refID string) string  { return "settle:" + refID }

// ConfirmPayment is the payment-confirmed transition. It is guarded by the
// current status, so a duplicate or late trigger on an already-advanced
// transaction is a no-op, and the fulfillment call runs at most once.
func (uc *DefaultTransactionUsecase) ConfirmPayment(ctx context.Context, refID string) error {
	unlock := uc.locks.Lock(refID)
	defer unlock()

	trx, err := uc.TrxRepo.GetTransactionByRefID(refID)
	if err != nil {
		return err
	}
	if trx.Status != domain.StatusPendingPayment {
		return nil
	}

	if err := uc.applyTransition(trx, domain.StatusUpdate{
		Status:  domain.StatusProcessing,
		Message: msgProcessing,
	}); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.ProviderTimeout)
	defer cancel()

	start := time.Now()
	res, err := uc.Provider.Topup(callCtx, domain.TopupRequest{
		RefID:      refID,
		SKU:        trx.SKU,
		CustomerNo: trx.CustomerNo,
	})
	if err != nil {
		uc.Metrics.RecordProviderCall("error", time.Since(start).Seconds())
		slog.Error("fulfillment call failed", "ref_id", refID, "error", err.Error())
		// Terminal from our side. No automatic retry; a later provider
		// callback may still overwrite this.
		return uc.applyTransition(trx, domain.StatusUpdate{
			Status:  domain.StatusFailed,
			Message: msgProviderError,
		})
	}
	uc.Metrics.RecordProviderCall("ok", time.Since(start).Seconds())

	status := domain.NormalizeStatus(res.Status)
	if status == domain.StatusPendingProvider {
		if err := uc.applyTransition(trx, domain.StatusUpdate{
			Status:  domain.StatusPendingProvider,
			Message: res.Message,
			SN:      res.SN,
		}); err != nil {
			return err
		}
		// Fallback settlement: if no callback resolves the transaction
		// within the window, settle it deterministically. The guard inside
		// re-checks the current status, so a callback arriving first wins.
		uc.Scheduler.Schedule(settleKey(refID), uc.cfg.SettleAfter, func() {
			uc.settlePendingProvider(refID)
		})
		return nil
	}

	return uc.applyTransition(trx, domain.StatusUpdate{
		Status:  status,
		Message: res.Message,
		SN:      res.SN,
	})
}

func (uc *DefaultTransactionUsecase) settlePendingProvider(refID string) {
	unlock := uc.locks.Lock(refID)
	defer unlock()

	trx, err := uc.TrxRepo.GetTransactionByRefID(refID)
	if err != nil {
		slog.Error("fallback settlement lookup failed", "ref_id", refID, "error", err.Error())
		return
	}
	if trx.Status != domain.StatusPendingProvider {
		return
	}

	if err := uc.applyTransition(trx, domain.StatusUpdate{
		Status:  domain.StatusSuccess,
		Message: msgAutoSettled,
	}); err != nil {
		slog.Error("fallback settlement failed", "ref_id", refID, "error", err.Error())
	}
}

func (uc *DefaultTransactionUsecase) logConfirmError(refID string, err error) {
	slog.Error("payment confirmation failed", "ref_id", refID, "error", err.Error())
}
