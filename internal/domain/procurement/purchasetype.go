package procurement

import (
	"fmt"
	"strings"
)

// PurchaseTypeRef identifies a purchase type. Refs are loaded from a
// TypeCatalog and never change during a session.
type PurchaseTypeRef struct {
	ID       int
	Label    string
	Category string
}

// PurchaseSubTypeRef identifies a sub-type scoped to its parent type.
type PurchaseSubTypeRef struct {
	ID           int
	Label        string
	ParentTypeID int
}

func NewPurchaseTypeRef(id int, label, category string) (*PurchaseTypeRef, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: purchase type id must be positive, got %d", ErrInvalidInput, id)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: purchase type label is required", ErrInvalidInput)
	}
	return &PurchaseTypeRef{
		ID:       id,
		Label:    label,
		Category: strings.TrimSpace(category),
	}, nil
}

func NewPurchaseSubTypeRef(id int, label string, parentTypeID int) (*PurchaseSubTypeRef, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: purchase sub-type id must be positive, got %d", ErrInvalidInput, id)
	}
	if parentTypeID <= 0 {
		return nil, fmt.Errorf("%w: purchase sub-type %d has no parent type", ErrInvalidInput, id)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: purchase sub-type label is required", ErrInvalidInput)
	}
	return &PurchaseSubTypeRef{
		ID:           id,
		Label:        label,
		ParentTypeID: parentTypeID,
	}, nil
}
