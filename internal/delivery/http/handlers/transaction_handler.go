package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	trxRequest "github.com/jawirlabs/topup-order-service/internal/delivery/http/dto/transaction/request"
	trxResponse "github.com/jawirlabs/topup-order-service/internal/delivery/http/dto/transaction/response"
	"github.com/jawirlabs/topup-order-service/internal/domain"
	trxusecase "github.com/jawirlabs/topup-order-service/internal/usecase/transaction"
	trxdto "github.com/jawirlabs/topup-order-service/internal/usecase/dto/transaction"
)

const callbackSecretHeader = "x-digiflazz-secret"

type TransactionHandler struct {
	uc            trxusecase.TransactionUsecase
	webhookSecret string
}

func NewTransactionHandler(uc trxusecase.TransactionUsecase, webhookSecret string) *TransactionHandler {
	return &TransactionHandler{uc: uc, webhookSecret: webhookSecret}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req trxRequest.CreateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	trx, err := h.uc.CreateTransaction(&trxdto.CreateTransactionInput{
		CustomerNo: req.CustomerNo,
		SKU:        req.SKU,
		Price:      req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrRefIDTaken):
			writeError(w, http.StatusConflict, "duplicate transaction reference")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create transaction")
		}
		return
	}

	writeJSON(w, http.StatusCreated, trxResponse.CreateTransactionResponse{
		RefID:         trx.RefID,
		Status:        string(trx.Status),
		TotalPrice:    trx.TotalPrice,
		PaymentDetail: trx.PaymentDetail,
	})
}

func (h *TransactionHandler) Status(w http.ResponseWriter, r *http.Request) {
	refID := r.URL.Query().Get("ref_id")
	if refID == "" {
		writeError(w, http.StatusBadRequest, "ref_id is required")
		return
	}

	trx, err := h.uc.GetTransactionByRefID(refID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load transaction")
		return
	}
	writeJSON(w, http.StatusOK, trx)
}

func (h *TransactionHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(callbackSecretHeader) != h.webhookSecret {
		slog.Warn("provider callback rejected, invalid secret", "remote", r.RemoteAddr)
		writeError(w, http.StatusForbidden, "invalid webhook secret")
		return
	}

	var req trxRequest.ProviderCallbackRequest
	if err := decodeJSON(r, &req); err != nil || req.RefID == "" {
		writeError(w, http.StatusBadRequest, "invalid callback body")
		return
	}

	err := h.uc.HandleProviderCallback(&trxdto.ProviderCallbackInput{
		RefID:   req.RefID,
		Status:  req.Status,
		Message: req.Message,
		SN:      req.SN,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			writeError(w, http.StatusNotFound, "unknown ref_id")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to apply callback")
		return
	}
	writeJSON(w, http.StatusOK, trxResponse.CallbackAckResponse{Ok: true})
}
