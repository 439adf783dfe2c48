package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSelectVariant(t *testing.T) {
	tests := []struct {
		name      string
		typeID    *int
		subTypeID *int
		want      AdditionalSectionVariant
	}{
		{"absent type", nil, intPtr(2), VariantNone},
		{"absent type and sub-type", nil, nil, VariantNone},
		{"type 5 ignores sub-type", intPtr(5), intPtr(99), VariantSubscription},
		{"type 5 without sub-type", intPtr(5), nil, VariantSubscription},
		{"type 7 ignores sub-type", intPtr(7), intPtr(1), VariantSubscription},
		{"type 6 sub-type 2", intPtr(6), intPtr(2), VariantBillingType},
		{"type 6 other sub-type", intPtr(6), intPtr(1), VariantNone},
		{"type 6 without sub-type", intPtr(6), nil, VariantNone},
		{"type 8 sub-type 4", intPtr(8), intPtr(4), VariantSiteReference},
		{"type 8 other sub-type", intPtr(8), intPtr(3), VariantNone},
		{"type 2 sub-type 1", intPtr(2), intPtr(1), VariantSiteReference},
		{"type 2 sub-type 3", intPtr(2), intPtr(3), VariantSiteReference},
		{"type 2 sub-type 2", intPtr(2), intPtr(2), VariantNone},
		{"type 4 sub-type 3", intPtr(4), intPtr(3), VariantSiteReference},
		{"type 4 sub-type 4", intPtr(4), intPtr(4), VariantNone},
		{"type 3 sub-type 4", intPtr(3), intPtr(4), VariantSiteReference},
		{"type 3 sub-type 5", intPtr(3), intPtr(5), VariantSiteReference},
		{"type 3 sub-type 3", intPtr(3), intPtr(3), VariantNone},
		{"type 1", intPtr(1), intPtr(1), VariantNone},
		{"unknown type", intPtr(42), intPtr(4), VariantNone},
		{"zero type", intPtr(0), nil, VariantNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectVariant(tt.typeID, tt.subTypeID))
		})
	}
}

func TestSectionRules_MutuallyExclusive(t *testing.T) {
	assert.Empty(t, OverlappingRules(SectionRules()))
}

func TestSectionRules_AtMostOneMatchPerPair(t *testing.T) {
	rules := SectionRules()

	for typeID := -1; typeID <= 12; typeID++ {
		subTypes := []*int{nil}
		for sub := -1; sub <= 12; sub++ {
			subTypes = append(subTypes, intPtr(sub))
		}

		for _, subTypeID := range subTypes {
			matches := 0
			var matched AdditionalSectionVariant
			for _, rule := range rules {
				if rule.Matches(typeID, subTypeID) {
					matches++
					matched = rule.Variant
				}
			}

			assert.LessOrEqual(t, matches, 1, "type %d sub-type %v", typeID, subTypeID)
			if matches == 0 {
				matched = VariantNone
			}
			assert.Equal(t, matched, SelectVariant(intPtr(typeID), subTypeID))
		}
	}
}

func TestOverlappingRules_DetectsConflicts(t *testing.T) {
	rules := []SectionRule{
		{TypeIDs: []int{5}, Variant: VariantSubscription},
		{TypeIDs: []int{5}, SubTypeIDs: []int{1}, Variant: VariantBillingType},
		{TypeIDs: []int{2}, SubTypeIDs: []int{1, 3}, Variant: VariantSiteReference},
		{TypeIDs: []int{2}, SubTypeIDs: []int{3}, Variant: VariantBillingType},
		{TypeIDs: []int{9}, SubTypeIDs: []int{1}, Variant: VariantSiteReference},
	}

	assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, OverlappingRules(rules))
}

func TestSectionRules_ReturnsCopy(t *testing.T) {
	rules := SectionRules()
	rules[0].Variant = VariantNone

	assert.Equal(t, VariantSubscription, SelectVariant(intPtr(5), nil))
}
