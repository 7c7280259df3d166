package request

type ProviderCallbackRequest struct {
	RefID   string `json:"ref_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
	SN      string `json:"sn"`
}
