package trxdto

type CreateTransactionInput struct {
	CustomerNo string
	SKU        string
	Price      int64
}

// ProviderCallbackInput is the asynchronous provider notification, already
// authenticated at the boundary. Status carries the provider's raw
// vocabulary.
type ProviderCallbackInput struct {
	RefID   string
	Status  string
	Message string
	SN      string
}
