// Package seeds loads the procurement catalogs (purchase types, sub-types
// and billing types) from YAML.
package seeds

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/models"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/db"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

type Catalog struct {
	PurchaseTypes []PurchaseTypeSeed `yaml:"purchase_types"`
	BillingTypes  []BillingTypeSeed  `yaml:"billing_types"`
}

type PurchaseTypeSeed struct {
	ID       int           `yaml:"id"`
	Label    string        `yaml:"label"`
	Category string        `yaml:"category"`
	SubTypes []SubTypeSeed `yaml:"sub_types"`
}

type SubTypeSeed struct {
	ID    int    `yaml:"id"`
	Label string `yaml:"label"`
}

type BillingTypeSeed struct {
	ID              int    `yaml:"id"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	MonthsPerPeriod int    `yaml:"months_per_period"`
}

// Result counts the rows written by one Seed call.
type Result struct {
	PurchaseTypes int
	SubTypes      int
	BillingTypes  int
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
}

// LoadCatalogFile reads a catalog from a YAML file on disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// LoadCatalog decodes and validates a catalog. Unknown keys are rejected.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var catalog Catalog
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode seed catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Validate checks every entry with the domain constructors and rejects
// duplicate IDs and labels.
func (c *Catalog) Validate() error {
	typeIDs := make(map[int]struct{})
	for _, pt := range c.PurchaseTypes {
		ref, err := procurement.NewPurchaseTypeRef(pt.ID, pt.Label, pt.Category)
		if err != nil {
			return fmt.Errorf("purchase type %d: %w", pt.ID, err)
		}
		if _, dup := typeIDs[ref.ID]; dup {
			return fmt.Errorf("%w: duplicate purchase type id %d", procurement.ErrInvalidInput, ref.ID)
		}
		typeIDs[ref.ID] = struct{}{}

		subIDs := make(map[int]struct{})
		for _, st := range pt.SubTypes {
			sub, err := procurement.NewPurchaseSubTypeRef(st.ID, st.Label, pt.ID)
			if err != nil {
				return fmt.Errorf("purchase type %d sub-type %d: %w", pt.ID, st.ID, err)
			}
			if _, dup := subIDs[sub.ID]; dup {
				return fmt.Errorf("%w: duplicate sub-type id %d under type %d", procurement.ErrInvalidInput, sub.ID, pt.ID)
			}
			subIDs[sub.ID] = struct{}{}
		}
	}

	billingIDs := make(map[int]struct{})
	for _, bt := range c.BillingTypes {
		if _, err := procurement.NewBillingType(bt.ID, bt.Name, bt.Description, bt.MonthsPerPeriod); err != nil {
			return fmt.Errorf("billing type %d: %w", bt.ID, err)
		}
		if _, dup := billingIDs[bt.ID]; dup {
			return fmt.Errorf("%w: duplicate billing type id %d", procurement.ErrInvalidInput, bt.ID)
		}
		billingIDs[bt.ID] = struct{}{}
	}
	return nil
}

// Seeder upserts a catalog inside one transaction. Existing rows keep their
// created_at and get their labels refreshed.
type Seeder struct {
	db     *gorm.DB
	txMgr  *db.TransactionManager
	logger logger.Interface
}

func NewSeeder(database *gorm.DB, logger logger.Interface) *Seeder {
	return &Seeder{
		db:     database,
		txMgr:  db.NewTransactionManager(database),
		logger: logger,
	}
}

func (s *Seeder) Seed(ctx context.Context, catalog *Catalog) (*Result, error) {
	result := &Result{}

	err := s.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, s.db)

		for _, pt := range catalog.PurchaseTypes {
			model := models.PurchaseTypeModel{
				ID:       uint(pt.ID),
				Label:    pt.Label,
				Category: pt.Category,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"label", "label_key", "category", "updated_at", "deleted_at"}),
			}).Create(&model).Error; err != nil {
				return fmt.Errorf("failed to seed purchase type %d: %w", pt.ID, err)
			}
			result.PurchaseTypes++

			for _, st := range pt.SubTypes {
				sub := models.PurchaseSubTypeModel{
					PurchaseTypeID: uint(pt.ID),
					SubTypeID:      uint(st.ID),
					Label:          st.Label,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "purchase_type_id"}, {Name: "sub_type_id"}},
					DoUpdates: clause.AssignmentColumns([]string{"label", "label_key", "updated_at", "deleted_at"}),
				}).Create(&sub).Error; err != nil {
					return fmt.Errorf("failed to seed sub-type %d of type %d: %w", st.ID, pt.ID, err)
				}
				result.SubTypes++
			}
		}

		for i, bt := range catalog.BillingTypes {
			model := models.BillingTypeModel{
				ID:              uint(bt.ID),
				Name:            bt.Name,
				Description:     bt.Description,
				MonthsPerPeriod: bt.MonthsPerPeriod,
				SortOrder:       i + 1,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "description", "months_per_period", "sort_order", "updated_at", "deleted_at"}),
			}).Create(&model).Error; err != nil {
				return fmt.Errorf("failed to seed billing type %d: %w", bt.ID, err)
			}
			result.BillingTypes++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("procurement catalog seeded",
		"purchase_types", result.PurchaseTypes,
		"sub_types", result.SubTypes,
		"billing_types", result.BillingTypes,
	)
	return result, nil
}
