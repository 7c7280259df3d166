package domain

import (
	"strings"
	"time"
)

type TransactionStatus string

const (
	StatusPendingPayment  TransactionStatus = "PENDING_PAYMENT"
	StatusProcessing      TransactionStatus = "PROCESSING"
	StatusPendingProvider TransactionStatus = "PENDING_PROVIDER"
	StatusSuccess         TransactionStatus = "SUCCESS"
	StatusFailed          TransactionStatus = "FAILED"
)

// statusRank orders the lifecycle. Terminal states share the highest rank:
// a callback may rewrite SUCCESS/FAILED but never move a record backward.
var statusRank = map[TransactionStatus]int{
	StatusPendingPayment:  0,
	StatusProcessing:      1,
	StatusPendingProvider: 2,
	StatusSuccess:         3,
	StatusFailed:          3,
}

func (s TransactionStatus) Rank() int {
	return statusRank[s]
}

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// NormalizeStatus maps the provider's status vocabulary onto the canonical
// enum. DigiFlazz answers in mixed case and mixed language ("Sukses",
// "Gagal", "Pending"); anything unrecognized settles as FAILED so a garbage
// callback can never park a transaction in an undefined state.
func NormalizeStatus(raw string) TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sukses", "success", "berhasil":
		return StatusSuccess
	case "pending", "diproses", "proses", "processing":
		return StatusPendingProvider
	default:
		return StatusFailed
	}
}

type PaymentDetail struct {
	QrisImageURL string `json:"qris_image_url"`
	Reference    string `json:"reference"`
}

type Transaction struct {
	RefID         string            `json:"ref_id"`
	CustomerNo    string            `json:"customer_no"`
	SKU           string            `json:"sku"`
	TotalPrice    int64             `json:"total_price"`
	Status        TransactionStatus `json:"status"`
	Message       string            `json:"message"`
	SN            string            `json:"sn,omitempty"`
	PaymentDetail *PaymentDetail    `json:"payment_detail,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"-"`
}

// StatusUpdate is the mutable slice of a transaction applied on a transition.
// An empty SN keeps the previously stored serial: a serial is set at most
// once and never cleared.
type StatusUpdate struct {
	Status  TransactionStatus
	Message string
	SN      string
}
