package valueobjects

// SectionRule maps purchase type IDs, optionally narrowed by sub-type IDs,
// onto an additional section variant. A nil SubTypeIDs matches any sub-type,
// including an absent one.
type SectionRule struct {
	TypeIDs    []int
	SubTypeIDs []int
	Variant    AdditionalSectionVariant
}

// Matches reports whether the rule applies to the pair.
func (r SectionRule) Matches(typeID int, subTypeID *int) bool {
	if !containsID(r.TypeIDs, typeID) {
		return false
	}
	if r.SubTypeIDs == nil {
		return true
	}
	return subTypeID != nil && containsID(r.SubTypeIDs, *subTypeID)
}

// Overlaps reports whether some (type, sub-type) pair satisfies both rules.
func (r SectionRule) Overlaps(other SectionRule) bool {
	for _, typeID := range r.TypeIDs {
		if !containsID(other.TypeIDs, typeID) {
			continue
		}
		if r.SubTypeIDs == nil || other.SubTypeIDs == nil {
			return true
		}
		for _, subTypeID := range r.SubTypeIDs {
			if containsID(other.SubTypeIDs, subTypeID) {
				return true
			}
		}
	}
	return false
}

var sectionRules = []SectionRule{
	{TypeIDs: []int{5, 7}, Variant: VariantSubscription},
	{TypeIDs: []int{6}, SubTypeIDs: []int{2}, Variant: VariantBillingType},
	{TypeIDs: []int{8}, SubTypeIDs: []int{4}, Variant: VariantSiteReference},
	{TypeIDs: []int{2}, SubTypeIDs: []int{1, 3}, Variant: VariantSiteReference},
	{TypeIDs: []int{4}, SubTypeIDs: []int{3}, Variant: VariantSiteReference},
	{TypeIDs: []int{3}, SubTypeIDs: []int{4, 5}, Variant: VariantSiteReference},
}

// SectionRules returns a copy of the decision table in evaluation order.
func SectionRules() []SectionRule {
	rules := make([]SectionRule, len(sectionRules))
	copy(rules, sectionRules)
	return rules
}

// SelectVariant returns the variant for a purchase type / sub-type pair.
// It is total: an absent type, or a pair no rule covers, yields VariantNone.
func SelectVariant(typeID, subTypeID *int) AdditionalSectionVariant {
	if typeID == nil {
		return VariantNone
	}
	for _, rule := range sectionRules {
		if rule.Matches(*typeID, subTypeID) {
			return rule.Variant
		}
	}
	return VariantNone
}

// OverlappingRules lists index pairs of rules that can match the same pair.
// The shipped table must yield none.
func OverlappingRules(rules []SectionRule) [][2]int {
	var overlaps [][2]int
	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			if rules[i].Overlaps(rules[j]) {
				overlaps = append(overlaps, [2]int{i, j})
			}
		}
	}
	return overlaps
}

func containsID(ids []int, id int) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
