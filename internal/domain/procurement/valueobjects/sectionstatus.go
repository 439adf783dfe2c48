package valueobjects

import "fmt"

// SectionStatus follows the owning purchase request through approval.
type SectionStatus string

const (
	SectionStatusDraft    SectionStatus = "draft"
	SectionStatusApproved SectionStatus = "approved"
	SectionStatusRevision SectionStatus = "revision"
)

var ValidSectionStatuses = map[SectionStatus]bool{
	SectionStatusDraft:    true,
	SectionStatusApproved: true,
	SectionStatusRevision: true,
}

var sectionTransitions = map[SectionStatus][]SectionStatus{
	SectionStatusDraft:    {SectionStatusApproved},
	SectionStatusApproved: {SectionStatusRevision},
	SectionStatusRevision: {SectionStatusApproved},
}

func ParseSectionStatus(value string) (SectionStatus, error) {
	s := SectionStatus(value)
	if !ValidSectionStatuses[s] {
		return "", fmt.Errorf("invalid section status: %s", value)
	}
	return s, nil
}

func (s SectionStatus) String() string {
	return string(s)
}

func (s SectionStatus) IsValid() bool {
	return ValidSectionStatuses[s]
}

// IsFrozen reports whether the section is read-only.
func (s SectionStatus) IsFrozen() bool {
	return s == SectionStatusApproved
}

func (s SectionStatus) IsRevision() bool {
	return s == SectionStatusRevision
}

func (s SectionStatus) CanTransitionTo(target SectionStatus) bool {
	for _, allowed := range sectionTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
