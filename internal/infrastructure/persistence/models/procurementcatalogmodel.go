package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/constants"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/utils"
)

// PurchaseTypeModel is a row of the purchase type catalog. LabelKey holds the
// folded label so that token lookups ignore case.
type PurchaseTypeModel struct {
	ID        uint   `gorm:"primarykey;autoIncrement:false"`
	Label     string `gorm:"not null;size:100"`
	LabelKey  string `gorm:"not null;size:100;uniqueIndex:idx_purchase_type_label_key"`
	Category  string `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PurchaseTypeModel) TableName() string {
	return constants.TablePurchaseTypes
}

func (m *PurchaseTypeModel) BeforeSave(tx *gorm.DB) error {
	m.Label = strings.TrimSpace(m.Label)
	m.LabelKey = utils.FoldKey(m.Label)
	return nil
}

// PurchaseSubTypeModel scopes a sub-type to its parent. The same SubTypeID
// may appear under several parents.
type PurchaseSubTypeModel struct {
	ID             uint   `gorm:"primarykey"`
	PurchaseTypeID uint   `gorm:"not null;uniqueIndex:idx_sub_type_parent_id,priority:1;uniqueIndex:idx_sub_type_parent_label,priority:1"`
	SubTypeID      uint   `gorm:"not null;uniqueIndex:idx_sub_type_parent_id,priority:2"`
	Label          string `gorm:"not null;size:100"`
	LabelKey       string `gorm:"not null;size:100;uniqueIndex:idx_sub_type_parent_label,priority:2"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (PurchaseSubTypeModel) TableName() string {
	return constants.TablePurchaseSubTypes
}

func (m *PurchaseSubTypeModel) BeforeSave(tx *gorm.DB) error {
	m.Label = strings.TrimSpace(m.Label)
	m.LabelKey = utils.FoldKey(m.Label)
	return nil
}

type BillingTypeModel struct {
	ID              uint   `gorm:"primarykey;autoIncrement:false"`
	Name            string `gorm:"not null;size:100;uniqueIndex"`
	Description     string `gorm:"size:500"`
	MonthsPerPeriod int    `gorm:"not null;comment:month multiplier used for end period arithmetic"`
	SortOrder       int    `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (BillingTypeModel) TableName() string {
	return constants.TableBillingTypes
}
