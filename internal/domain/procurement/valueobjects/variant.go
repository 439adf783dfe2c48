package valueobjects

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidVariant is returned when a variant string is not recognised
var ErrInvalidVariant = errors.New("invalid additional section variant")

// AdditionalSectionVariant names the "additional information" sub-form a
// purchase request has to carry.
type AdditionalSectionVariant string

const (
	VariantNone          AdditionalSectionVariant = "none"
	VariantBillingType   AdditionalSectionVariant = "billing_type"
	VariantSiteReference AdditionalSectionVariant = "site_reference"
	VariantSubscription  AdditionalSectionVariant = "subscription"
)

var ValidVariants = map[AdditionalSectionVariant]bool{
	VariantNone:          true,
	VariantBillingType:   true,
	VariantSiteReference: true,
	VariantSubscription:  true,
}

func ParseVariant(value string) (AdditionalSectionVariant, error) {
	v := AdditionalSectionVariant(strings.ToLower(strings.TrimSpace(value)))
	if !ValidVariants[v] {
		return "", fmt.Errorf("%w: %q", ErrInvalidVariant, value)
	}
	return v, nil
}

func (v AdditionalSectionVariant) String() string {
	return string(v)
}

func (v AdditionalSectionVariant) IsValid() bool {
	return ValidVariants[v]
}

// RequiresPeriod reports whether the variant carries billing type and
// period arithmetic.
func (v AdditionalSectionVariant) RequiresPeriod() bool {
	return v == VariantBillingType || v == VariantSubscription
}

// HasSiteFields reports whether the variant carries the site identifiers.
func (v AdditionalSectionVariant) HasSiteFields() bool {
	return v == VariantSiteReference || v == VariantSubscription
}

func (v *AdditionalSectionVariant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}
