package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/services/sanitize"
)

type mockTypeCatalog struct {
	ResolveTypeFunc    func(ctx context.Context, token string) (*procurement.PurchaseTypeRef, error)
	ResolveSubTypeFunc func(ctx context.Context, typeID int, token string) (*procurement.PurchaseSubTypeRef, error)
}

func (m *mockTypeCatalog) ResolveType(ctx context.Context, token string) (*procurement.PurchaseTypeRef, error) {
	if m.ResolveTypeFunc != nil {
		return m.ResolveTypeFunc(ctx, token)
	}
	return nil, procurement.ErrNotFound
}

func (m *mockTypeCatalog) ResolveSubType(ctx context.Context, typeID int, token string) (*procurement.PurchaseSubTypeRef, error) {
	if m.ResolveSubTypeFunc != nil {
		return m.ResolveSubTypeFunc(ctx, typeID, token)
	}
	return nil, procurement.ErrNotFound
}

// mockBillingTypeCatalog serves a fixed set of billing types.
type mockBillingTypeCatalog struct {
	types   map[int]*procurement.BillingType
	listErr error
	getErr  error
}

func newMockBillingTypeCatalog(types ...*procurement.BillingType) *mockBillingTypeCatalog {
	m := &mockBillingTypeCatalog{types: make(map[int]*procurement.BillingType)}
	for _, bt := range types {
		m.types[bt.ID] = bt
	}
	return m
}

func (m *mockBillingTypeCatalog) Get(ctx context.Context, id int) (*procurement.BillingType, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	bt, ok := m.types[id]
	if !ok {
		return nil, fmt.Errorf("billing type %d: %w", id, procurement.ErrNotFound)
	}
	return bt, nil
}

func (m *mockBillingTypeCatalog) List(ctx context.Context) ([]*procurement.BillingType, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := make([]int, 0, len(m.types))
	for id := range m.types {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]*procurement.BillingType, 0, len(ids))
	for _, id := range ids {
		result = append(result, m.types[id])
	}
	return result, nil
}

type mockSectionRepository struct {
	CreateFunc                 func(ctx context.Context, section *procurement.AdditionalSection) error
	GetByPurchaseRequestIDFunc func(ctx context.Context, purchaseRequestID string) (*procurement.AdditionalSection, error)
	UpdateFunc                 func(ctx context.Context, section *procurement.AdditionalSection) error

	createCalls int
	updateCalls int
}

func (m *mockSectionRepository) Create(ctx context.Context, section *procurement.AdditionalSection) error {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, section)
	}
	return section.SetID(1)
}

func (m *mockSectionRepository) GetByPurchaseRequestID(ctx context.Context, purchaseRequestID string) (*procurement.AdditionalSection, error) {
	if m.GetByPurchaseRequestIDFunc != nil {
		return m.GetByPurchaseRequestIDFunc(ctx, purchaseRequestID)
	}
	return nil, fmt.Errorf("purchase request %s: %w", purchaseRequestID, procurement.ErrNotFound)
}

func (m *mockSectionRepository) Update(ctx context.Context, section *procurement.AdditionalSection) error {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, section)
	}
	return nil
}

func newSanitizer() TextSanitizer {
	return sanitize.NewTextService()
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

var (
	monthly   = &procurement.BillingType{ID: 1, Name: "Monthly", MonthsPerPeriod: 1}
	quarterly = &procurement.BillingType{ID: 2, Name: "Quarterly", MonthsPerPeriod: 3}
	yearly    = &procurement.BillingType{ID: 3, Name: "Yearly", MonthsPerPeriod: 12}
)
