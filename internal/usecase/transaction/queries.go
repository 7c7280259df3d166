package usecase

import "github.com/jawirlabs/topup-order-service/internal/domain"

func (uc *DefaultTransactionUsecase) GetTransactionByRefID(refID string) (*domain.Transaction, error) {
	return uc.TrxRepo.GetTransactionByRefID(refID)
}
