package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jawirlabs/topup-order-service/internal/domain"
)

const priceListKey = "pricelist:prepaid"

func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// PriceListCache keeps the provider price list for a TTL so the catalog
// endpoint does not hit the provider on every request.
type PriceListCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewPriceListCache(client *goredis.Client, ttl time.Duration) *PriceListCache {
	return &PriceListCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) on a cache miss.
func (c *PriceListCache) Get(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.client.Get(ctx, priceListKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price list from cache: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode cached price list: %w", err)
	}
	return products, nil
}

func (c *PriceListCache) Set(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode price list: %w", err)
	}
	if err := c.client.Set(ctx, priceListKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set price list cache: %w", err)
	}
	return nil
}
