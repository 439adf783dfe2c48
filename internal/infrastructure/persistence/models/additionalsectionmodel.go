package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/constants"
)

// AdditionalSectionModel persists the additional information of one purchase
// request. EndPeriod is stored for reporting and re-derived on load.
type AdditionalSectionModel struct {
	ID                uint   `gorm:"primarykey"`
	PurchaseRequestID string `gorm:"not null;size:64;uniqueIndex"`
	Variant           string `gorm:"not null;size:20"`
	Status            string `gorm:"not null;size:20;index"`
	BillingTypeID     *uint  `gorm:"index"`
	MonthsPerPeriod   int    `gorm:"not null;default:0"`
	StartPeriod       *datatypes.Date
	PeriodCount       *int
	EndPeriod         *datatypes.Date
	SiteOrderNumber   *string `gorm:"size:255"`
	SiteID            *string `gorm:"size:255;index"`
	SiteName          *string `gorm:"size:255"`
	Version           int     `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (AdditionalSectionModel) TableName() string {
	return constants.TableAdditionalSections
}

func (s *AdditionalSectionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
