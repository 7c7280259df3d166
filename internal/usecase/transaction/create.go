package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	trxdto "github.com/jawirlabs/topup-order-service/internal/usecase/dto/transaction"
)

const (
	qrisImageURL = "https://www.inspiredpocus.com/wp-content/uploads/2020/03/qr-code-bc-asset-1.png"

	msgAwaitingPayment = "Silakan pindai kode QR untuk menyelesaikan pembayaran."
)

func (uc *DefaultTransactionUsecase) CreateTransaction(input *trxdto.CreateTransactionInput) (*domain.Transaction, error) {
	if input.CustomerNo == "" || input.SKU == "" || input.Price <= 0 {
		return nil, fmt.Errorf("%w: customer_no, sku and price are required", domain.ErrInvalidInput)
	}

	refID := uc.RefIDs.Next()
	trx := &domain.Transaction{
		RefID:      refID,
		CustomerNo: input.CustomerNo,
		SKU:        input.SKU,
		TotalPrice: input.Price,
		Status:     domain.StatusPendingPayment,
		Message:    msgAwaitingPayment,
		PaymentDetail: &domain.PaymentDetail{
			QrisImageURL: qrisImageURL,
			Reference:    uc.PaymentRef(),
		},
		CreatedAt: time.Now(),
	}

	if err := uc.TrxRepo.CreateTransaction(trx); err != nil {
		return nil, err
	}

	uc.Metrics.RecordTransactionCreated(trx.SKU)
	uc.emitEvent(trx)

	// Simulated payment gateway: the confirmed trigger fires after a fixed
	// delay. A real gateway webhook or a payment-events message lands on the
	// same guarded transition.
	uc.Scheduler.Schedule(paymentKey(refID), uc.cfg.ConfirmAfter, func() {
		if err := uc.ConfirmPayment(context.Background(), refID); err != nil {
			uc.logConfirmError(refID, err)
		}
	})

	return trx, nil
}
