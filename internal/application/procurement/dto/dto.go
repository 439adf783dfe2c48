package dto

import "time"

type PurchaseTypeDTO struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}

type PurchaseSubTypeDTO struct {
	ID           int    `json:"id"`
	Label        string `json:"label"`
	ParentTypeID int    `json:"parent_type_id"`
}

// VariantDTO describes which sub-form a purchase request needs.
type VariantDTO struct {
	Variant        string `json:"variant"`
	RequiresPeriod bool   `json:"requires_period"`
	HasSiteFields  bool   `json:"has_site_fields"`
}

// ResolvedSectionDTO is the result of resolving purchase type tokens. Type
// and SubType are nil when the catalog had no match.
type ResolvedSectionDTO struct {
	Type    *PurchaseTypeDTO    `json:"type,omitempty"`
	SubType *PurchaseSubTypeDTO `json:"sub_type,omitempty"`
	VariantDTO
}

type BillingTypeDTO struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	MonthsPerPeriod int    `json:"months_per_period"`
}

type EndPeriodDTO struct {
	StartPeriod     string `json:"start_period"`
	PeriodCount     int    `json:"period_count"`
	MonthsPerPeriod int    `json:"months_per_period"`
	EndPeriod       string `json:"end_period"`
}

// SectionInput carries user edits. Dates are YYYY-MM-DD strings; nil
// pointers mean "not provided".
type SectionInput struct {
	BillingTypeID   *int
	StartPeriod     *string
	PeriodCount     *int
	SiteOrderNumber *string
	SiteID          *string
	SiteName        *string
}

type ValidationResultDTO struct {
	Valid     bool    `json:"valid"`
	Field     string  `json:"field,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Kind      string  `json:"kind,omitempty"`
	EndPeriod *string `json:"end_period,omitempty"`
}

type RevisionEditableDTO struct {
	Value    *string `json:"value"`
	Editable bool    `json:"editable"`
}

type AdditionalSectionDTO struct {
	ID                uint            `json:"id"`
	PurchaseRequestID string          `json:"purchase_request_id"`
	Variant           string          `json:"variant"`
	Status            string          `json:"status"`
	BillingTypeID     *int            `json:"billing_type_id,omitempty"`
	MonthsPerPeriod   int             `json:"months_per_period,omitempty"`
	StartPeriod       *string         `json:"start_period,omitempty"`
	PeriodCount       *int            `json:"period_count,omitempty"`
	EndPeriod         *string         `json:"end_period,omitempty"`
	SiteOrderNumber   *string         `json:"site_order_number,omitempty"`
	SiteID            *string         `json:"site_id,omitempty"`
	SiteName          *string         `json:"site_name,omitempty"`
	Editable          map[string]bool `json:"editable"` // per-field edit permission in the current status
	Version           int             `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
