package dto

import (
	"time"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
)

var sectionFields = []procurement.Field{
	procurement.FieldBillingTypeID,
	procurement.FieldStartPeriod,
	procurement.FieldPeriodCount,
	procurement.FieldSiteOrderNumber,
	procurement.FieldSiteID,
	procurement.FieldSiteName,
}

func ToVariantDTO(variant vo.AdditionalSectionVariant) VariantDTO {
	return VariantDTO{
		Variant:        variant.String(),
		RequiresPeriod: variant.RequiresPeriod(),
		HasSiteFields:  variant.HasSiteFields(),
	}
}

func ToPurchaseTypeDTO(ref *procurement.PurchaseTypeRef) *PurchaseTypeDTO {
	if ref == nil {
		return nil
	}
	return &PurchaseTypeDTO{
		ID:       ref.ID,
		Label:    ref.Label,
		Category: ref.Category,
	}
}

func ToPurchaseSubTypeDTO(ref *procurement.PurchaseSubTypeRef) *PurchaseSubTypeDTO {
	if ref == nil {
		return nil
	}
	return &PurchaseSubTypeDTO{
		ID:           ref.ID,
		Label:        ref.Label,
		ParentTypeID: ref.ParentTypeID,
	}
}

func ToBillingTypeDTO(bt *procurement.BillingType) *BillingTypeDTO {
	if bt == nil {
		return nil
	}
	return &BillingTypeDTO{
		ID:              bt.ID,
		Name:            bt.Name,
		Description:     bt.Description,
		MonthsPerPeriod: bt.MonthsPerPeriod,
	}
}

// ToBillingTypeDTOList returns an empty slice for empty input
func ToBillingTypeDTOList(types []*procurement.BillingType) []*BillingTypeDTO {
	dtos := make([]*BillingTypeDTO, 0, len(types))
	for _, bt := range types {
		if bt != nil {
			dtos = append(dtos, ToBillingTypeDTO(bt))
		}
	}
	return dtos
}

func ToValidationResultDTO(result procurement.ValidationResult, endPeriod *time.Time) *ValidationResultDTO {
	if !result.Valid() {
		return &ValidationResultDTO{
			Valid:  false,
			Field:  result.Failure.Field.String(),
			Reason: result.Failure.Reason,
			Kind:   string(result.Failure.Kind),
		}
	}
	return &ValidationResultDTO{
		Valid:     true,
		EndPeriod: formatDatePtr(endPeriod),
	}
}

func ToAdditionalSectionDTO(section *procurement.AdditionalSection) *AdditionalSectionDTO {
	if section == nil {
		return nil
	}

	data := section.Data()
	editable := make(map[string]bool, len(sectionFields))
	for _, field := range sectionFields {
		editable[field.String()] = section.IsFieldEditable(field)
	}

	return &AdditionalSectionDTO{
		ID:                section.ID(),
		PurchaseRequestID: section.PurchaseRequestID(),
		Variant:           section.Variant().String(),
		Status:            section.Status().String(),
		BillingTypeID:     data.BillingTypeID,
		MonthsPerPeriod:   data.MonthsPerPeriod,
		StartPeriod:       formatDatePtr(data.StartPeriod),
		PeriodCount:       data.PeriodCount,
		EndPeriod:         formatDatePtr(data.EndPeriod),
		SiteOrderNumber:   data.SiteOrderNumber,
		SiteID:            data.SiteID,
		SiteName:          data.SiteName,
		Editable:          editable,
		Version:           section.Version(),
		CreatedAt:         section.CreatedAt(),
		UpdatedAt:         section.UpdatedAt(),
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := biztime.FormatDate(*t)
	return &s
}
