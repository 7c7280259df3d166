package handlers

import (
	"errors"
	"net/http"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	catalogusecase "github.com/jawirlabs/topup-order-service/internal/usecase/catalog"
)

type CatalogHandler struct {
	uc    catalogusecase.CatalogUsecase
	users domain.UserRepository
}

func NewCatalogHandler(uc catalogusecase.CatalogUsecase, users domain.UserRepository) *CatalogHandler {
	return &CatalogHandler{uc: uc, users: users}
}

// Products lists the repriced catalog. Brand is an optional filter; the
// margin tier comes from the username's stored role, falling back to member
// pricing for anonymous or unknown callers.
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")
	role := h.resolveRole(r.URL.Query().Get("username"))

	products, err := h.uc.ListProducts(r.Context(), brand, role)
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			writeError(w, http.StatusBadGateway, "price list unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) resolveRole(username string) string {
	if username == "" || h.users == nil {
		return domain.RoleMember
	}
	user, err := h.users.GetUserByUsername(username)
	if err != nil {
		return domain.RoleMember
	}
	return user.Role
}
