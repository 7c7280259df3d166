package handlers

import (
	"errors"
	"net/http"

	authRequest "github.com/jawirlabs/topup-order-service/internal/delivery/http/dto/auth/request"
	authResponse "github.com/jawirlabs/topup-order-service/internal/delivery/http/dto/auth/response"
	"github.com/jawirlabs/topup-order-service/internal/domain"
	authusecase "github.com/jawirlabs/topup-order-service/internal/usecase/auth"
	authdto "github.com/jawirlabs/topup-order-service/internal/usecase/dto/auth"
)

type AuthHandler struct {
	uc authusecase.AuthUsecase
}

func NewAuthHandler(uc authusecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.uc.Register(&authdto.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			writeError(w, http.StatusConflict, "username already taken")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, authResponse.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.uc.Login(&authdto.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, authResponse.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}
