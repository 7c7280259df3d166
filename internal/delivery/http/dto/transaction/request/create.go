package request

type CreateTransactionRequest struct {
	CustomerNo string `json:"customer_no"`
	SKU        string `json:"sku"`
	Price      int64  `json:"price"`
}
