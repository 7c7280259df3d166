package domain

import "context"

type TopupRequest struct {
	RefID      string
	SKU        string
	CustomerNo string
}

// TopupResult carries the provider's verdict verbatim. Status is the raw
// provider vocabulary; callers normalize it with NormalizeStatus.
type TopupResult struct {
	Status  string
	Message string
	SN      string
}

type Product struct {
	SKU   string `json:"buyer_sku_code"`
	Name  string `json:"product_name"`
	Brand string `json:"brand"`
	Price int64  `json:"price"`
}

// FulfillmentProvider is the outbound boundary to the digital-goods supplier.
// Topup must honor ctx cancellation so a hung provider cannot stall the
// orchestrator.
type FulfillmentProvider interface {
	Topup(ctx context.Context, req TopupRequest) (*TopupResult, error)
	PriceList(ctx context.Context) ([]Product, error)
}
