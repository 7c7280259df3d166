package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jawirlabs/topup-order-service/internal/delivery/http/handlers"
)

type Handlers struct {
	Transaction *handlers.TransactionHandler
	Auth        *handlers.AuthHandler
	Catalog     *handlers.CatalogHandler
	WS          *handlers.WSHandler
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/transactions", h.Transaction.Create)
		r.Get("/status", h.Transaction.Status)
		r.Post("/provider-callback", h.Transaction.Callback)
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Get("/products", h.Catalog.Products)
	})

	r.Get("/ws", h.WS.Serve)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
