package digiflazz

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jawirlabs/topup-order-service/internal/domain"
)

func expectedSign(username, apiKey, salt string) string {
	sum := md5.Sum([]byte(username + apiKey + salt))
	return hex.EncodeToString(sum[:])
}

func TestTopup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != transactionEndpoint {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Sign != expectedSign("acme", "key", "TOPUP-1") {
			t.Errorf("bad signature %q", req.Sign)
		}
		if req.BuyerSKUCode != "ML100" || req.CustomerNo != "081234" {
			t.Errorf("unexpected request body: %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"ref_id":  req.RefID,
				"status":  "Sukses",
				"message": "Transaksi Sukses",
				"sn":      "SN-001",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Username: "acme", APIKey: "key"})
	res, err := client.Topup(context.Background(), domain.TopupRequest{
		RefID:      "TOPUP-1",
		SKU:        "ML100",
		CustomerNo: "081234",
	})
	if err != nil {
		t.Fatalf("topup: %v", err)
	}
	if res.Status != "Sukses" || res.SN != "SN-001" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestTopupNon2xxIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Username: "acme", APIKey: "key"})
	_, err := client.Topup(context.Background(), domain.TopupRequest{RefID: "TOPUP-2"})
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestTopupTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Username: "acme", APIKey: "key", Timeout: 20 * time.Millisecond})
	_, err := client.Topup(context.Background(), domain.TopupRequest{RefID: "TOPUP-3"})
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestPriceList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req priceListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Sign != expectedSign("acme", "key", "pricelist") {
			t.Errorf("bad price-list signature %q", req.Sign)
		}
		if req.Cmd != "prepaid" {
			t.Errorf("cmd = %q, want prepaid", req.Cmd)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"buyer_sku_code": "ML100", "product_name": "Mobile 100", "brand": "MOBILE", "price": 14500},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Username: "acme", APIKey: "key"})
	products, err := client.PriceList(context.Background())
	if err != nil {
		t.Fatalf("price list: %v", err)
	}
	if len(products) != 1 || products[0].SKU != "ML100" || products[0].Price != 14500 {
		t.Errorf("unexpected products: %+v", products)
	}
}
