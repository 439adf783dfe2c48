package procurement

import "context"

// TypeCatalog resolves purchase type tokens to canonical refs. A token is
// either a numeric ID or a label; label matching ignores case and surrounding
// whitespace. A miss returns an error wrapping ErrNotFound.
type TypeCatalog interface {
	ResolveType(ctx context.Context, token string) (*PurchaseTypeRef, error)
	ResolveSubType(ctx context.Context, typeID int, token string) (*PurchaseSubTypeRef, error)
}

type BillingTypeCatalog interface {
	Get(ctx context.Context, id int) (*BillingType, error)
	List(ctx context.Context) ([]*BillingType, error)
}

type AdditionalSectionRepository interface {
	Create(ctx context.Context, section *AdditionalSection) error
	GetByPurchaseRequestID(ctx context.Context, purchaseRequestID string) (*AdditionalSection, error)
	Update(ctx context.Context, section *AdditionalSection) error
}
