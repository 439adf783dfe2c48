package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/utils"
)

// CachedTypeCatalog wraps a TypeCatalog with a read-through cache. Misses are
// cached as null markers. Cache failures fall through to the wrapped catalog.
type CachedTypeCatalog struct {
	next   procurement.TypeCatalog
	cache  CatalogCache
	group  singleflight.Group
	logger logger.Interface
}

func NewCachedTypeCatalog(next procurement.TypeCatalog, cache CatalogCache, logger logger.Interface) *CachedTypeCatalog {
	return &CachedTypeCatalog{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

func (c *CachedTypeCatalog) ResolveType(ctx context.Context, token string) (*procurement.PurchaseTypeRef, error) {
	cached, err := c.cache.GetPurchaseType(ctx, token)
	if err != nil {
		c.logger.Warnw("purchase type cache read failed", "token", token, "error", err)
	} else if cached != nil {
		if cached.NotFound {
			return nil, fmt.Errorf("purchase type %q: %w", token, procurement.ErrNotFound)
		}
		return cached.Ref, nil
	}

	v, err, _ := c.group.Do("type:"+utils.FoldKey(token), func() (any, error) {
		ref, err := c.next.ResolveType(ctx, token)
		if err != nil {
			if errors.Is(err, procurement.ErrNotFound) {
				c.store(c.cache.SetPurchaseType(ctx, token, nil))
			}
			return nil, err
		}
		c.store(c.cache.SetPurchaseType(ctx, token, ref))
		return ref, nil
	})
	if err != nil {
		return nil, err
	}

	ref := *v.(*procurement.PurchaseTypeRef)
	return &ref, nil
}

func (c *CachedTypeCatalog) ResolveSubType(ctx context.Context, typeID int, token string) (*procurement.PurchaseSubTypeRef, error) {
	cached, err := c.cache.GetPurchaseSubType(ctx, typeID, token)
	if err != nil {
		c.logger.Warnw("purchase sub-type cache read failed", "type_id", typeID, "token", token, "error", err)
	} else if cached != nil {
		if cached.NotFound {
			return nil, fmt.Errorf("purchase sub-type %q of type %d: %w", token, typeID, procurement.ErrNotFound)
		}
		return cached.Ref, nil
	}

	key := "sub:" + strconv.Itoa(typeID) + ":" + utils.FoldKey(token)
	v, err, _ := c.group.Do(key, func() (any, error) {
		ref, err := c.next.ResolveSubType(ctx, typeID, token)
		if err != nil {
			if errors.Is(err, procurement.ErrNotFound) {
				c.store(c.cache.SetPurchaseSubType(ctx, typeID, token, nil))
			}
			return nil, err
		}
		c.store(c.cache.SetPurchaseSubType(ctx, typeID, token, ref))
		return ref, nil
	})
	if err != nil {
		return nil, err
	}

	ref := *v.(*procurement.PurchaseSubTypeRef)
	return &ref, nil
}

func (c *CachedTypeCatalog) store(err error) {
	if err != nil {
		c.logger.Warnw("catalog cache write failed", "error", err)
	}
}

// CachedBillingTypeCatalog is the BillingTypeCatalog counterpart of CachedTypeCatalog.
type CachedBillingTypeCatalog struct {
	next   procurement.BillingTypeCatalog
	cache  CatalogCache
	group  singleflight.Group
	logger logger.Interface
}

func NewCachedBillingTypeCatalog(next procurement.BillingTypeCatalog, cache CatalogCache, logger logger.Interface) *CachedBillingTypeCatalog {
	return &CachedBillingTypeCatalog{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

func (c *CachedBillingTypeCatalog) Get(ctx context.Context, id int) (*procurement.BillingType, error) {
	cached, err := c.cache.GetBillingType(ctx, id)
	if err != nil {
		c.logger.Warnw("billing type cache read failed", "billing_type_id", id, "error", err)
	} else if cached != nil {
		if cached.NotFound {
			return nil, fmt.Errorf("billing type %d: %w", id, procurement.ErrNotFound)
		}
		return cached.BillingType, nil
	}

	v, err, _ := c.group.Do("billing:"+strconv.Itoa(id), func() (any, error) {
		bt, err := c.next.Get(ctx, id)
		if err != nil {
			if errors.Is(err, procurement.ErrNotFound) {
				c.store(c.cache.SetBillingType(ctx, id, nil))
			}
			return nil, err
		}
		c.store(c.cache.SetBillingType(ctx, id, bt))
		return bt, nil
	})
	if err != nil {
		return nil, err
	}

	bt := *v.(*procurement.BillingType)
	return &bt, nil
}

func (c *CachedBillingTypeCatalog) List(ctx context.Context) ([]*procurement.BillingType, error) {
	cached, err := c.cache.GetBillingTypes(ctx)
	if err != nil {
		c.logger.Warnw("billing type list cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	v, err, _ := c.group.Do("billing:list", func() (any, error) {
		list, err := c.next.List(ctx)
		if err != nil {
			return nil, err
		}
		c.store(c.cache.SetBillingTypes(ctx, list))
		return list, nil
	})
	if err != nil {
		return nil, err
	}

	shared := v.([]*procurement.BillingType)
	list := make([]*procurement.BillingType, 0, len(shared))
	for _, bt := range shared {
		cp := *bt
		list = append(list, &cp)
	}
	return list, nil
}

func (c *CachedBillingTypeCatalog) store(err error) {
	if err != nil {
		c.logger.Warnw("catalog cache write failed", "error", err)
	}
}
