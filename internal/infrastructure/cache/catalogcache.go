package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/constants"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/utils"
)

// CachedPurchaseType is a cache hit for a purchase type token.
type CachedPurchaseType struct {
	Ref      *procurement.PurchaseTypeRef
	NotFound bool // Null marker: token confirmed unknown
}

// CachedPurchaseSubType is a cache hit for a sub-type token under a parent.
type CachedPurchaseSubType struct {
	Ref      *procurement.PurchaseSubTypeRef
	NotFound bool
}

// CachedBillingType is a cache hit for a billing type ID.
type CachedBillingType struct {
	BillingType *procurement.BillingType
	NotFound    bool
}

// CatalogCache stores catalog lookups. A nil result with a nil error is a miss.
type CatalogCache interface {
	GetPurchaseType(ctx context.Context, token string) (*CachedPurchaseType, error)
	SetPurchaseType(ctx context.Context, token string, ref *procurement.PurchaseTypeRef) error
	GetPurchaseSubType(ctx context.Context, typeID int, token string) (*CachedPurchaseSubType, error)
	SetPurchaseSubType(ctx context.Context, typeID int, token string, ref *procurement.PurchaseSubTypeRef) error
	GetBillingType(ctx context.Context, id int) (*CachedBillingType, error)
	SetBillingType(ctx context.Context, id int, bt *procurement.BillingType) error
	GetBillingTypes(ctx context.Context) ([]*procurement.BillingType, error)
	SetBillingTypes(ctx context.Context, list []*procurement.BillingType) error
	// InvalidateAll drops every cached catalog entry, e.g. after a reseed.
	InvalidateAll(ctx context.Context) error
}

const (
	baseCatalogTTL   = 30 * time.Minute
	catalogTTLJitter = 10 * time.Minute // TTL range: 30-40 min
	nullMarkerTTL    = 2 * time.Minute

	fieldID              = "id"
	fieldLabel           = "label"
	fieldCategory        = "category"
	fieldParentTypeID    = "parent_type_id"
	fieldName            = "name"
	fieldDescription     = "description"
	fieldMonthsPerPeriod = "months_per_period"
	fieldNullMarker      = "_null"

	catalogKeyPattern = "procurement:*"
	invalidateBatch   = 100
)

// RedisCatalogCache implements CatalogCache with one Redis hash per entry.
// The billing type list is a single JSON string.
type RedisCatalogCache struct {
	client    *redis.Client
	ttl       time.Duration
	ttlJitter time.Duration
	nullTTL   time.Duration
	logger    logger.Interface
}

func NewRedisCatalogCache(client *redis.Client, logger logger.Interface) *RedisCatalogCache {
	return &RedisCatalogCache{
		client:    client,
		ttl:       baseCatalogTTL,
		ttlJitter: catalogTTLJitter,
		nullTTL:   nullMarkerTTL,
		logger:    logger,
	}
}

// WithTTL overrides the entry lifetimes. Non-positive values keep the defaults.
func (c *RedisCatalogCache) WithTTL(ttl, jitter, nullTTL time.Duration) *RedisCatalogCache {
	if ttl > 0 {
		c.ttl = ttl
	}
	if jitter > 0 {
		c.ttlJitter = jitter
	}
	if nullTTL > 0 {
		c.nullTTL = nullTTL
	}
	return c
}

func purchaseTypeKey(token string) string {
	return constants.CacheKeyPurchaseType + utils.FoldKey(token)
}

func purchaseSubTypeKey(typeID int, token string) string {
	return fmt.Sprintf("%s%d:%s", constants.CacheKeyPurchaseSubType, typeID, utils.FoldKey(token))
}

func billingTypeKey(id int) string {
	return fmt.Sprintf("%s%d", constants.CacheKeyBillingType, id)
}

func (c *RedisCatalogCache) GetPurchaseType(ctx context.Context, token string) (*CachedPurchaseType, error) {
	result, err := c.client.HGetAll(ctx, purchaseTypeKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase type from cache: %w", err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	if result[fieldNullMarker] == "1" {
		return &CachedPurchaseType{NotFound: true}, nil
	}

	id, _ := strconv.Atoi(result[fieldID])
	return &CachedPurchaseType{
		Ref: &procurement.PurchaseTypeRef{
			ID:       id,
			Label:    result[fieldLabel],
			Category: result[fieldCategory],
		},
	}, nil
}

// SetPurchaseType caches ref under token. A nil ref stores a null marker.
func (c *RedisCatalogCache) SetPurchaseType(ctx context.Context, token string, ref *procurement.PurchaseTypeRef) error {
	if ref == nil {
		return c.setNullMarker(ctx, purchaseTypeKey(token))
	}
	return c.setHash(ctx, purchaseTypeKey(token), map[string]any{
		fieldID:       ref.ID,
		fieldLabel:    ref.Label,
		fieldCategory: ref.Category,
	})
}

func (c *RedisCatalogCache) GetPurchaseSubType(ctx context.Context, typeID int, token string) (*CachedPurchaseSubType, error) {
	result, err := c.client.HGetAll(ctx, purchaseSubTypeKey(typeID, token)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase sub-type from cache: %w", err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	if result[fieldNullMarker] == "1" {
		return &CachedPurchaseSubType{NotFound: true}, nil
	}

	id, _ := strconv.Atoi(result[fieldID])
	parentID, _ := strconv.Atoi(result[fieldParentTypeID])
	return &CachedPurchaseSubType{
		Ref: &procurement.PurchaseSubTypeRef{
			ID:           id,
			Label:        result[fieldLabel],
			ParentTypeID: parentID,
		},
	}, nil
}

func (c *RedisCatalogCache) SetPurchaseSubType(ctx context.Context, typeID int, token string, ref *procurement.PurchaseSubTypeRef) error {
	key := purchaseSubTypeKey(typeID, token)
	if ref == nil {
		return c.setNullMarker(ctx, key)
	}
	return c.setHash(ctx, key, map[string]any{
		fieldID:           ref.ID,
		fieldLabel:        ref.Label,
		fieldParentTypeID: ref.ParentTypeID,
	})
}

func (c *RedisCatalogCache) GetBillingType(ctx context.Context, id int) (*CachedBillingType, error) {
	result, err := c.client.HGetAll(ctx, billingTypeKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get billing type from cache: %w", err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	if result[fieldNullMarker] == "1" {
		return &CachedBillingType{NotFound: true}, nil
	}

	months, _ := strconv.Atoi(result[fieldMonthsPerPeriod])
	return &CachedBillingType{
		BillingType: &procurement.BillingType{
			ID:              id,
			Name:            result[fieldName],
			Description:     result[fieldDescription],
			MonthsPerPeriod: months,
		},
	}, nil
}

func (c *RedisCatalogCache) SetBillingType(ctx context.Context, id int, bt *procurement.BillingType) error {
	if bt == nil {
		return c.setNullMarker(ctx, billingTypeKey(id))
	}
	return c.setHash(ctx, billingTypeKey(id), map[string]any{
		fieldName:            bt.Name,
		fieldDescription:     bt.Description,
		fieldMonthsPerPeriod: bt.MonthsPerPeriod,
	})
}

type cachedBillingTypeItem struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	MonthsPerPeriod int    `json:"months_per_period"`
}

// GetBillingTypes returns the cached list, or nil on a miss.
func (c *RedisCatalogCache) GetBillingTypes(ctx context.Context) ([]*procurement.BillingType, error) {
	raw, err := c.client.Get(ctx, constants.CacheKeyBillingTypeList).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get billing types from cache: %w", err)
	}

	var items []cachedBillingTypeItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cached billing types: %w", err)
	}

	list := make([]*procurement.BillingType, 0, len(items))
	for _, item := range items {
		list = append(list, &procurement.BillingType{
			ID:              item.ID,
			Name:            item.Name,
			Description:     item.Description,
			MonthsPerPeriod: item.MonthsPerPeriod,
		})
	}
	return list, nil
}

func (c *RedisCatalogCache) SetBillingTypes(ctx context.Context, list []*procurement.BillingType) error {
	items := make([]cachedBillingTypeItem, 0, len(list))
	for _, bt := range list {
		items = append(items, cachedBillingTypeItem{
			ID:              bt.ID,
			Name:            bt.Name,
			Description:     bt.Description,
			MonthsPerPeriod: bt.MonthsPerPeriod,
		})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode billing types: %w", err)
	}
	if err := c.client.Set(ctx, constants.CacheKeyBillingTypeList, raw, c.ttlWithJitter()).Err(); err != nil {
		return fmt.Errorf("failed to set billing types in cache: %w", err)
	}
	return nil
}

func (c *RedisCatalogCache) InvalidateAll(ctx context.Context) error {
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, catalogKeyPattern, invalidateBatch).Result()
		if err != nil {
			return fmt.Errorf("failed to scan catalog cache: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to invalidate catalog cache: %w", err)
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.logger.Infow("catalog cache invalidated", "keys", removed)
	return nil
}

func (c *RedisCatalogCache) setHash(ctx context.Context, key string, fields map[string]any) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, c.ttlWithJitter())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set catalog entry in cache: %w", err)
	}

	c.logger.Debugw("catalog entry cached", "key", key)
	return nil
}

func (c *RedisCatalogCache) setNullMarker(ctx context.Context, key string) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fieldNullMarker, "1")
	pipe.Expire(ctx, key, c.nullTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set null marker in cache: %w", err)
	}

	c.logger.Debugw("catalog null marker set", "key", key, "ttl", c.nullTTL)
	return nil
}

// ttlWithJitter returns a TTL in [ttl, ttl+ttlJitter).
func (c *RedisCatalogCache) ttlWithJitter() time.Duration {
	return c.ttl + time.Duration(rand.Int64N(int64(c.ttlJitter)))
}
