package migration

import (
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PurchaseTypeModel{},
		&models.PurchaseSubTypeModel{},
		&models.BillingTypeModel{},
		&models.AdditionalSectionModel{},
	}
}
