package mappers

import (
	"github.com/jawirlabs/topup-order-service/internal/domain"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	trx := &domain.Transaction{
		RefID:      model.RefID,
		CustomerNo: model.CustomerNo,
		SKU:        model.SKU,
		TotalPrice: model.TotalPrice,
		Status:     model.Status,
		Message:    model.Message,
		SN:         model.SN,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
	if model.QrisImageURL != "" || model.PaymentRef != "" {
		trx.PaymentDetail = &domain.PaymentDetail{
			QrisImageURL: model.QrisImageURL,
			Reference:    model.PaymentRef,
		}
	}
	return trx
}

func ToGORMTransaction(trx *domain.Transaction) *models.TransactionModel {
	model := &models.TransactionModel{
		RefID:      trx.RefID,
		CustomerNo: trx.CustomerNo,
		SKU:        trx.SKU,
		TotalPrice: trx.TotalPrice,
		Status:     trx.Status,
		Message:    trx.Message,
		SN:         trx.SN,
		CreatedAt:  trx.CreatedAt,
		UpdatedAt:  trx.UpdatedAt,
	}
	if trx.PaymentDetail != nil {
		model.QrisImageURL = trx.PaymentDetail.QrisImageURL
		model.PaymentRef = trx.PaymentDetail.Reference
	}
	return model
}
