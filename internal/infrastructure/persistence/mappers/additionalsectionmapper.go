package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/models"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
)

// AdditionalSectionMapper converts between the section aggregate and its row.
type AdditionalSectionMapper interface {
	ToModel(section *procurement.AdditionalSection) *models.AdditionalSectionModel
	ToDomain(model *models.AdditionalSectionModel) (*procurement.AdditionalSection, error)
}

type AdditionalSectionMapperImpl struct{}

func NewAdditionalSectionMapper() AdditionalSectionMapper {
	return &AdditionalSectionMapperImpl{}
}

func (m *AdditionalSectionMapperImpl) ToModel(section *procurement.AdditionalSection) *models.AdditionalSectionModel {
	if section == nil {
		return nil
	}

	data := section.Data()
	model := &models.AdditionalSectionModel{
		ID:                section.ID(),
		PurchaseRequestID: section.PurchaseRequestID(),
		Variant:           section.Variant().String(),
		Status:            section.Status().String(),
		MonthsPerPeriod:   data.MonthsPerPeriod,
		StartPeriod:       toDate(data.StartPeriod),
		PeriodCount:       data.PeriodCount,
		EndPeriod:         toDate(data.EndPeriod),
		SiteOrderNumber:   data.SiteOrderNumber,
		SiteID:            data.SiteID,
		SiteName:          data.SiteName,
		Version:           section.Version(),
		CreatedAt:         section.CreatedAt(),
		UpdatedAt:         section.UpdatedAt(),
	}
	if data.BillingTypeID != nil {
		id := uint(*data.BillingTypeID)
		model.BillingTypeID = &id
	}

	return model
}

func (m *AdditionalSectionMapperImpl) ToDomain(model *models.AdditionalSectionModel) (*procurement.AdditionalSection, error) {
	if model == nil {
		return nil, nil
	}

	variant, err := vo.ParseVariant(model.Variant)
	if err != nil {
		return nil, fmt.Errorf("section %d: %w", model.ID, err)
	}
	status, err := vo.ParseSectionStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("section %d: %w", model.ID, err)
	}

	data := procurement.SectionData{
		MonthsPerPeriod: model.MonthsPerPeriod,
		StartPeriod:     fromDate(model.StartPeriod),
		PeriodCount:     model.PeriodCount,
		EndPeriod:       fromDate(model.EndPeriod),
		SiteOrderNumber: model.SiteOrderNumber,
		SiteID:          model.SiteID,
		SiteName:        model.SiteName,
	}
	if model.BillingTypeID != nil {
		id := int(*model.BillingTypeID)
		data.BillingTypeID = &id
	}

	section, err := procurement.ReconstructAdditionalSection(
		model.ID,
		model.PurchaseRequestID,
		variant,
		status,
		data,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct additional section: %w", err)
	}
	return section, nil
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(biztime.DateOf(*t))
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil || time.Time(*d).IsZero() {
		return nil
	}
	t := biztime.DateOf(time.Time(*d))
	return &t
}
