package mappers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/utils"
)

// Candidate payload keys, already normalized with utils.NormalizeFieldName.
// Earlier keys win when a record carries several.
var (
	typeIDKeys       = []string{"purchaserequesttypeid", "purchasetypeid", "typeid", "id"}
	typeLabelKeys    = []string{"purchaserequesttype", "purchasetype", "typename", "name", "label"}
	typeCategoryKeys = []string{"purchaserequestcategory", "purchasecategory", "category"}

	subTypeIDKeys     = []string{"purchaserequestsubtypeid", "purchasesubtypeid", "subtypeid", "id"}
	subTypeLabelKeys  = []string{"purchaserequestsubtype", "purchasesubtype", "subtypename", "subtype", "name", "label"}
	subTypeParentKeys = []string{"purchaserequesttypeid", "purchasetypeid", "parenttypeid", "typeid"}
)

// RawCatalogRecord is an upstream catalog record whose keys differ in casing
// and separators between endpoints ("PurchaseRequestType",
// "purchaseRequestType", "Name", "name").
type RawCatalogRecord map[string]any

func (r RawCatalogRecord) normalized() map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		key := utils.NormalizeFieldName(k)
		if _, exists := out[key]; !exists || k == key {
			out[key] = v
		}
	}
	return out
}

// PurchaseTypeFromRecord builds the canonical type ref from a raw record.
func PurchaseTypeFromRecord(raw RawCatalogRecord) (*procurement.PurchaseTypeRef, error) {
	fields := raw.normalized()

	id, err := intField(fields, typeIDKeys)
	if err != nil {
		return nil, fmt.Errorf("purchase type record: %w", err)
	}
	label := stringField(fields, typeLabelKeys)
	category := stringField(fields, typeCategoryKeys)

	return procurement.NewPurchaseTypeRef(id, label, category)
}

// PurchaseSubTypeFromRecord builds the canonical sub-type ref. parentTypeID
// is used when the record does not name its parent.
func PurchaseSubTypeFromRecord(raw RawCatalogRecord, parentTypeID int) (*procurement.PurchaseSubTypeRef, error) {
	fields := raw.normalized()

	id, err := intField(fields, subTypeIDKeys)
	if err != nil {
		return nil, fmt.Errorf("purchase sub-type record: %w", err)
	}
	parent := parentTypeID
	if p, err := intField(fields, subTypeParentKeys); err == nil {
		parent = p
	}
	label := stringField(fields, subTypeLabelKeys)

	return procurement.NewPurchaseSubTypeRef(id, label, parent)
}

func stringField(fields map[string]any, keys []string) string {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func intField(fields map[string]any, keys []string) (int, error) {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		n, err := toInt(v)
		if err != nil {
			return 0, fmt.Errorf("%w: field %s: %v", procurement.ErrInvalidInput, key, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: none of %v present", procurement.ErrInvalidInput, keys)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
