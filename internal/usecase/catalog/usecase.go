package usecase

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/jawirlabs/topup-order-service/internal/domain"
)

// PriceListCache decouples the usecase from the concrete redis cache.
// Get returns (nil, nil) on a miss.
type PriceListCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
}

type CatalogUsecase interface {
	ListProducts(ctx context.Context, brand, role string) ([]domain.Product, error)
}

type DefaultCatalogUsecase struct {
	Provider domain.FulfillmentProvider
	Cache    PriceListCache
}

func NewDefaultCatalogUsecase(provider domain.FulfillmentProvider, cache PriceListCache) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{Provider: provider, Cache: cache}
}

// marginFor returns the resale margin applied on top of the provider price.
func marginFor(role string) float64 {
	if role == domain.RoleVIP {
		return 0.01
	}
	return 0.02
}

// ListProducts serves the price list from cache when possible, filters by
// brand and reprices each product for the caller's role.
func (uc *DefaultCatalogUsecase) ListProducts(ctx context.Context, brand, role string) ([]domain.Product, error) {
	products, err := uc.fetchPriceList(ctx)
	if err != nil {
		return nil, err
	}

	margin := marginFor(role)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if brand != "" && !strings.EqualFold(p.Brand, brand) {
			continue
		}
		p.Price += int64(math.Ceil(float64(p.Price) * margin))
		out = append(out, p)
	}
	return out, nil
}

func (uc *DefaultCatalogUsecase) fetchPriceList(ctx context.Context) ([]domain.Product, error) {
	if uc.Cache != nil {
		cached, err := uc.Cache.Get(ctx)
		if err != nil {
			slog.Error("price list cache read failed", "error", err.Error())
		} else if cached != nil {
			return cached, nil
		}
	}

	products, err := uc.Provider.PriceList(ctx)
	if err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, products); err != nil {
			slog.Error("price list cache write failed", "error", err.Error())
		}
	}
	return products, nil
}
