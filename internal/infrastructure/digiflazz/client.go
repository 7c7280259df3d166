package digiflazz

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jawirlabs/topup-order-service/internal/domain"
)

const (
	transactionEndpoint = "/v1/transaction"
	priceListEndpoint   = "/v1/price-list"
)

type Config struct {
	BaseURL  string
	Username string
	APIKey   string
	Timeout  time.Duration
}

// Client talks to the DigiFlazz-compatible fulfillment API. Every request is
// signed with md5(username + api_key + salt), where the salt is the ref_id
// for transactions and the literal "pricelist" for the price list.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) sign(salt string) string {
	sum := md5.Sum([]byte(c.cfg.Username + c.cfg.APIKey + salt))
	return hex.EncodeToString(sum[:])
}

type transactionRequest struct {
	Username     string `json:"username"`
	BuyerSKUCode string `json:"buyer_sku_code"`
	CustomerNo   string `json:"customer_no"`
	RefID        string `json:"ref_id"`
	Sign         string `json:"sign"`
	Testing      bool   `json:"testing"`
}

type transactionResponse struct {
	Data struct {
		RefID   string `json:"ref_id"`
		Status  string `json:"status"`
		Message string `json:"message"`
		SN      string `json:"sn"`
	} `json:"data"`
}

type priceListRequest struct {
	Cmd      string `json:"cmd"`
	Username string `json:"username"`
	Sign     string `json:"sign"`
}

type priceListResponse struct {
	Data []domain.Product `json:"data"`
}

func (c *Client) Topup(ctx context.Context, req domain.TopupRequest) (*domain.TopupResult, error) {
	body := transactionRequest{
		Username:     c.cfg.Username,
		BuyerSKUCode: req.SKU,
		CustomerNo:   req.CustomerNo,
		RefID:        req.RefID,
		Sign:         c.sign(req.RefID),
		Testing:      false,
	}

	var resp transactionResponse
	if err := c.post(ctx, transactionEndpoint, body, &resp); err != nil {
		return nil, err
	}

	return &domain.TopupResult{
		Status:  resp.Data.Status,
		Message: resp.Data.Message,
		SN:      resp.Data.SN,
	}, nil
}

func (c *Client) PriceList(ctx context.Context) ([]domain.Product, error) {
	body := priceListRequest{
		Cmd:      "prepaid",
		Username: c.cfg.Username,
		Sign:     c.sign("pricelist"),
	}

	var resp priceListResponse
	if err := c.post(ctx, priceListEndpoint, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %s", domain.ErrProviderUnavailable, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
