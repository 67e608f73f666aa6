package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jcastano/moda-admin-api/internal/application/dto"
	appinventory "github.com/jcastano/moda-admin-api/internal/application/inventory"
)

var _ appinventory.StockViewCache = (*RedisStockViewCache)(nil)

const stockViewKeyPrefix = "stock:view:"

// RedisStockViewCache cachea la vista de stock por producto en Redis con TTL.
// UpdateStock sobreescribe la entrada con la vista fresca, así un solo nodo
// nunca sirve una vista anterior a su propia escritura.
type RedisStockViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStockViewCache construye la caché. ttl <= 0 usa 5 minutos.
func NewRedisStockViewCache(client *redis.Client, ttl time.Duration) *RedisStockViewCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisStockViewCache{client: client, ttl: ttl}
}

// GetProductView devuelve la vista cacheada o (nil, nil) si no hay entrada.
func (c *RedisStockViewCache) GetProductView(ctx context.Context, productID string) (*dto.VariantProductResponse, error) {
	raw, err := c.client.Get(ctx, stockViewKeyPrefix+productID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var view dto.VariantProductResponse
	if err := json.Unmarshal(raw, &view); err != nil {
		// Entrada corrupta: descartarla y tratar como miss.
		_ = c.client.Del(ctx, stockViewKeyPrefix+productID).Err()
		return nil, nil
	}
	return &view, nil
}

// SetProductView guarda la vista con TTL.
func (c *RedisStockViewCache) SetProductView(ctx context.Context, productID string, view *dto.VariantProductResponse) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, stockViewKeyPrefix+productID, raw, c.ttl).Err()
}

// InvalidateProduct borra la entrada del producto.
func (c *RedisStockViewCache) InvalidateProduct(ctx context.Context, productID string) error {
	return c.client.Del(ctx, stockViewKeyPrefix+productID).Err()
}
