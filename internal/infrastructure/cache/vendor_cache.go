// Package cache decoradores de repositorios respaldados por Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
	"github.com/jhoicas/vendor-earnings-api/pkg/logger"
)

const vendorKeyPrefix = "vendor:profile:"

var _ repository.VendorRepository = (*VendorCache)(nil)

// VendorCache envuelve un VendorRepository y guarda el perfil en Redis durante ttl.
// Solo se cachean lecturas exitosas; si Redis falla se consulta el repositorio sin cortar
// la petición.
type VendorCache struct {
	next   repository.VendorRepository
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewVendorCache construye el decorador. Con client nil se comporta como next.
func NewVendorCache(next repository.VendorRepository, client *redis.Client, ttl time.Duration, log *logger.Logger) *VendorCache {
	if log == nil {
		log = logger.Nop()
	}
	return &VendorCache{next: next, client: client, ttl: ttl, log: log}
}

type cachedVendor struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Commission *float64  `json:"commission"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GetByID lee de Redis o carga desde el repositorio envuelto.
func (c *VendorCache) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	if c.client == nil {
		return c.next.GetByID(ctx, id)
	}
	key := vendorKeyPrefix + id

	payload, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cv cachedVendor
		if jsonErr := json.Unmarshal(payload, &cv); jsonErr == nil {
			return cv.toEntity(), nil
		}
		c.log.Warn().Str("key", key).Msg("cache: entrada corrupta, se recarga")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("cache: redis no disponible")
	}

	v, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Una comisión NaN no se puede serializar: ese perfil simplemente no se cachea.
	raw, err := json.Marshal(fromEntity(v))
	if err != nil {
		return v, nil
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache: no se pudo guardar")
	}
	return v, nil
}

// Invalidate borra el perfil cacheado del vendedor.
func (c *VendorCache) Invalidate(ctx context.Context, id string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, vendorKeyPrefix+id).Err()
}

func fromEntity(v *entity.Vendor) cachedVendor {
	return cachedVendor{
		ID:         v.ID,
		Name:       v.Name,
		Email:      v.Email,
		Phone:      v.Phone,
		Address:    v.Address,
		Commission: v.Commission,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func (cv cachedVendor) toEntity() *entity.Vendor {
	return &entity.Vendor{
		ID:         cv.ID,
		Name:       cv.Name,
		Email:      cv.Email,
		Phone:      cv.Phone,
		Address:    cv.Address,
		Commission: cv.Commission,
		Status:     cv.Status,
		CreatedAt:  cv.CreatedAt,
		UpdatedAt:  cv.UpdatedAt,
	}
}
