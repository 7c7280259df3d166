package kafka

// Topics consumed and produced by the service.
const (
	TopicTransactionEvents = "transaction-events"
	TopicPaymentEvents     = "payment-events"
)

// TransactionEvent is emitted on every state transition of a transaction.
type TransactionEvent struct {
	EventID    string `json:"event_id"`
	RefID      string `json:"ref_id"`
	CustomerNo string `json:"customer_no"`
	SKU        string `json:"sku"`
	TotalPrice int64  `json:"total_price"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// PaymentEvent is the inbound payment-confirmed trigger read from the
// payment-events topic.
type PaymentEvent struct {
	RefID string `json:"ref_id"`
}
