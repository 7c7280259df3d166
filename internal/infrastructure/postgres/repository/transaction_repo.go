package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/postgres/mappers"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(trx *domain.Transaction) error {
	model := mappers.ToGORMTransaction(trx)
	if err := r.DB.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRefIDTaken
		}
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionByRefID(refID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.First(&model, "ref_id = ?", refID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) UpdateTransactionStatus(refID string, update domain.StatusUpdate) error {
	fields := map[string]interface{}{
		"status":     update.Status,
		"message":    update.Message,
		"updated_at": time.Now(),
	}
	// Empty serial keeps the stored one: sn is set at most once.
	if update.SN != "" {
		fields["sn"] = update.SN
	}

	res := r.DB.Model(&models.TransactionModel{}).
		Where("ref_id = ?", refID).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update transaction status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
