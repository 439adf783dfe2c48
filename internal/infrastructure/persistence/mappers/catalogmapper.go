package mappers

import (
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/models"
)

// CatalogMapper converts catalog rows into domain refs. Rows that break a
// domain invariant are reported as errors.
type CatalogMapper interface {
	PurchaseTypeToDomain(model *models.PurchaseTypeModel) (*procurement.PurchaseTypeRef, error)
	PurchaseSubTypeToDomain(model *models.PurchaseSubTypeModel) (*procurement.PurchaseSubTypeRef, error)
	BillingTypeToDomain(model *models.BillingTypeModel) (*procurement.BillingType, error)
	BillingTypesToDomain(rows []models.BillingTypeModel) ([]*procurement.BillingType, error)
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) PurchaseTypeToDomain(model *models.PurchaseTypeModel) (*procurement.PurchaseTypeRef, error) {
	return procurement.NewPurchaseTypeRef(int(model.ID), model.Label, model.Category)
}

func (m *CatalogMapperImpl) PurchaseSubTypeToDomain(model *models.PurchaseSubTypeModel) (*procurement.PurchaseSubTypeRef, error) {
	return procurement.NewPurchaseSubTypeRef(int(model.SubTypeID), model.Label, int(model.PurchaseTypeID))
}

func (m *CatalogMapperImpl) BillingTypeToDomain(model *models.BillingTypeModel) (*procurement.BillingType, error) {
	return procurement.NewBillingType(int(model.ID), model.Name, model.Description, model.MonthsPerPeriod)
}

func (m *CatalogMapperImpl) BillingTypesToDomain(rows []models.BillingTypeModel) ([]*procurement.BillingType, error) {
	result := make([]*procurement.BillingType, 0, len(rows))
	for i := range rows {
		bt, err := m.BillingTypeToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, bt)
	}
	return result, nil
}
