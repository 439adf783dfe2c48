package procurement

import "github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"

type ComputeEndPeriodRequest struct {
	StartPeriod     string `json:"start_period" binding:"required,calendar_date"`
	PeriodCount     int    `json:"period_count" binding:"required"`
	MonthsPerPeriod *int   `json:"months_per_period"`
	BillingTypeID   *int   `json:"billing_type_id"`
}

// SectionFieldsRequest holds the editable fields shared by validate and save.
type SectionFieldsRequest struct {
	BillingTypeID   *int    `json:"billing_type_id"`
	StartPeriod     *string `json:"start_period"`
	PeriodCount     *int    `json:"period_count"`
	SiteOrderNumber *string `json:"site_order_number" binding:"omitempty,max=255"`
	SiteID          *string `json:"site_id" binding:"omitempty,max=255"`
	SiteName        *string `json:"site_name" binding:"omitempty,max=255"`
}

func (r SectionFieldsRequest) toInput() dto.SectionInput {
	return dto.SectionInput{
		BillingTypeID:   r.BillingTypeID,
		StartPeriod:     r.StartPeriod,
		PeriodCount:     r.PeriodCount,
		SiteOrderNumber: r.SiteOrderNumber,
		SiteID:          r.SiteID,
		SiteName:        r.SiteName,
	}
}

type ValidateSectionRequest struct {
	Variant string `json:"variant" binding:"required,oneof=none billing_type site_reference subscription"`
	SectionFieldsRequest
}

type SaveSectionRequest struct {
	TypeID    *int `json:"type_id" binding:"required"`
	SubTypeID *int `json:"sub_type_id"`
	SectionFieldsRequest
}
