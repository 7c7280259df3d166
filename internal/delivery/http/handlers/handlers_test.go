package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	authdto "github.com/jawirlabs/topup-order-service/internal/usecase/dto/auth"
	trxdto "github.com/jawirlabs/topup-order-service/internal/usecase/dto/transaction"
)

type trxUsecaseStub struct {
	created     *domain.Transaction
	createErr   error
	found       *domain.Transaction
	foundErr    error
	callbackErr error
	callbacks   []trxdto.ProviderCallbackInput
}

func (s *trxUsecaseStub) CreateTransaction(input *trxdto.CreateTransactionInput) (*domain.Transaction, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *trxUsecaseStub) ConfirmPayment(_ context.Context, _ string) error { return nil }

func (s *trxUsecaseStub) HandleProviderCallback(input *trxdto.ProviderCallbackInput) error {
	s.callbacks = append(s.callbacks, *input)
	return s.callbackErr
}

func (s *trxUsecaseStub) GetTransactionByRefID(_ string) (*domain.Transaction, error) {
	if s.foundErr != nil {
		return nil, s.foundErr
	}
	return s.found, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCreateTransactionHandler(t *testing.T) {
	stub := &trxUsecaseStub{created: &domain.Transaction{
		RefID:      "TOPUP-1700000000000",
		Status:     domain.StatusPendingPayment,
		TotalPrice: 15000,
		PaymentDetail: &domain.PaymentDetail{
			QrisImageURL: "https://example.com/qris.png",
			Reference:    "pay-1",
		},
	}}
	h := NewTransactionHandler(stub, "secret")

	rec := postJSON(t, h.Create, map[string]any{
		"customer_no": "081234",
		"sku":         "ML100",
		"price":       15000,
	}, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var resp struct {
		RefID  string `json:"ref_id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RefID != "TOPUP-1700000000000" || resp.Status != "PENDING_PAYMENT" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateTransactionHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: customer_no, sku and price are required", domain.ErrInvalidInput), http.StatusBadRequest},
		{"duplicate ref", domain.ErrRefIDTaken, http.StatusConflict},
		{"store failure", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewTransactionHandler(&trxUsecaseStub{createErr: tc.err}, "secret")
			rec := postJSON(t, h.Create, map[string]any{
				"customer_no": "081234",
				"sku":         "ML100",
				"price":       15000,
			}, nil)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestCreateTransactionHandlerBadBody(t *testing.T) {
	h := NewTransactionHandler(&trxUsecaseStub{}, "secret")
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStatusHandler(t *testing.T) {
	stub := &trxUsecaseStub{found: &domain.Transaction{
		RefID:  "TOPUP-1",
		Status: domain.StatusSuccess,
		SN:     "SN-1",
	}}
	h := NewTransactionHandler(stub, "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/status?ref_id=TOPUP-1", nil)
	rec := httptest.NewRecorder()
	h.Status(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Status string `json:"status"`
		SN     string `json:"sn"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "SUCCESS" || resp.SN != "SN-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestStatusHandlerMissingRefID(t *testing.T) {
	h := NewTransactionHandler(&trxUsecaseStub{}, "secret")
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	h.Status(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStatusHandlerNotFound(t *testing.T) {
	h := NewTransactionHandler(&trxUsecaseStub{foundErr: domain.ErrTransactionNotFound}, "secret")
	req := httptest.NewRequest(http.MethodGet, "/api/status?ref_id=TOPUP-404", nil)
	rec := httptest.NewRecorder()
	h.Status(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCallbackHandlerInvalidSecret(t *testing.T) {
	stub := &trxUsecaseStub{}
	h := NewTransactionHandler(stub, "secret")

	rec := postJSON(t, h.Callback, map[string]string{"ref_id": "TOPUP-1", "status": "Sukses"},
		map[string]string{callbackSecretHeader: "wrong"})

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if len(stub.callbacks) != 0 {
		t.Error("callback applied despite invalid secret")
	}
}

func TestCallbackHandler(t *testing.T) {
	stub := &trxUsecaseStub{}
	h := NewTransactionHandler(stub, "secret")

	rec := postJSON(t, h.Callback, map[string]string{
		"ref_id":  "TOPUP-1",
		"status":  "Sukses",
		"message": "Transaksi Sukses",
		"sn":      "SN-9",
	}, map[string]string{callbackSecretHeader: "secret"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(stub.callbacks) != 1 {
		t.Fatalf("callbacks applied = %d, want 1", len(stub.callbacks))
	}
	if stub.callbacks[0].SN != "SN-9" || stub.callbacks[0].Status != "Sukses" {
		t.Errorf("callback input = %+v", stub.callbacks[0])
	}
}

func TestCallbackHandlerMissingRefID(t *testing.T) {
	h := NewTransactionHandler(&trxUsecaseStub{}, "secret")
	rec := postJSON(t, h.Callback, map[string]string{"status": "Sukses"},
		map[string]string{callbackSecretHeader: "secret"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCallbackHandlerUnknownRef(t *testing.T) {
	h := NewTransactionHandler(&trxUsecaseStub{callbackErr: domain.ErrTransactionNotFound}, "secret")
	rec := postJSON(t, h.Callback, map[string]string{"ref_id": "TOPUP-404", "status": "Sukses"},
		map[string]string{callbackSecretHeader: "secret"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

type authUsecaseStub struct {
	user *domain.User
	err  error
}

func (s *authUsecaseStub) Register(_ *authdto.RegisterInput) (*domain.User, error) {
	return s.user, s.err
}

func (s *authUsecaseStub) Login(_ *authdto.LoginInput) (*domain.User, error) {
	return s.user, s.err
}

func TestRegisterHandler(t *testing.T) {
	h := NewAuthHandler(&authUsecaseStub{user: &domain.User{
		ID: "u-1", Username: "budi", Role: domain.RoleMember,
	}})

	rec := postJSON(t, h.Register, map[string]string{"username": "budi", "password": "rahasia"}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("rahasia")) {
		t.Error("response leaked the password")
	}
}

func TestRegisterHandlerConflict(t *testing.T) {
	h := NewAuthHandler(&authUsecaseStub{err: domain.ErrUserExists})
	rec := postJSON(t, h.Register, map[string]string{"username": "budi", "password": "x"}, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestLoginHandlerUnauthorized(t *testing.T) {
	h := NewAuthHandler(&authUsecaseStub{err: domain.ErrInvalidCredentials})
	rec := postJSON(t, h.Login, map[string]string{"username": "budi", "password": "salah"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

type catalogUsecaseStub struct {
	products []domain.Product
	err      error
	brand    string
	role     string
}

func (s *catalogUsecaseStub) ListProducts(_ context.Context, brand, role string) ([]domain.Product, error) {
	s.brand = brand
	s.role = role
	return s.products, s.err
}

type userRepoStub struct {
	users map[string]domain.User
}

func (r *userRepoStub) CreateUser(user *domain.User) error {
	r.users[user.Username] = *user
	return nil
}

func (r *userRepoStub) GetUserByUsername(username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := user
	return &out, nil
}

func TestProductsHandler(t *testing.T) {
	stub := &catalogUsecaseStub{products: []domain.Product{{SKU: "ML100", Price: 25250}}}
	users := &userRepoStub{users: map[string]domain.User{
		"sultan": {Username: "sultan", Role: domain.RoleVIP},
	}}
	h := NewCatalogHandler(stub, users)

	req := httptest.NewRequest(http.MethodGet, "/api/products?brand=mobile+legends&username=sultan", nil)
	rec := httptest.NewRecorder()
	h.Products(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.brand != "mobile legends" || stub.role != domain.RoleVIP {
		t.Errorf("forwarded brand=%q role=%q", stub.brand, stub.role)
	}
}

func TestProductsHandlerDefaultsRole(t *testing.T) {
	stub := &catalogUsecaseStub{}
	h := NewCatalogHandler(stub, &userRepoStub{users: map[string]domain.User{}})

	req := httptest.NewRequest(http.MethodGet, "/api/products?username=nobody", nil)
	rec := httptest.NewRecorder()
	h.Products(rec, req)

	if stub.role != domain.RoleMember {
		t.Errorf("role = %q, want member fallback", stub.role)
	}
}

func TestProductsHandlerProviderDown(t *testing.T) {
	h := NewCatalogHandler(&catalogUsecaseStub{err: domain.ErrProviderUnavailable}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	h.Products(rec, req)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}
