package models

import (
	"time"

	"github.com/jawirlabs/topup-order-service/internal/domain"
)

type TransactionModel struct {
	RefID         string `gorm:"primaryKey"`
	CustomerNo    string
	SKU           string
	TotalPrice    int64
	Status        domain.TransactionStatus `gorm:"index:idx_status"`
	Message       string
	SN            string
	QrisImageURL  string
	PaymentRef    string
	CreatedAt     time.Time `gorm:"index:idx_created_at"`
	UpdatedAt     time.Time
}
