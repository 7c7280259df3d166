package response

import "github.com/jawirlabs/topup-order-service/internal/domain"

type CreateTransactionResponse struct {
	RefID         string                `json:"ref_id"`
	Status        string                `json:"status"`
	TotalPrice    int64                 `json:"total_price"`
	PaymentDetail *domain.PaymentDetail `json:"payment_detail,omitempty"`
}

type CallbackAckResponse struct {
	Ok bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
