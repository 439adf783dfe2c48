package procurement

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
)

// AdditionalSection is the additional-information record of one purchase
// request. The end period is never set directly: every edit to the billing
// type, start period or period count re-derives it.
type AdditionalSection struct {
	id                uint
	purchaseRequestID string
	variant           vo.AdditionalSectionVariant
	status            vo.SectionStatus
	data              SectionData
	version           int
	persistedVersion  int
	createdAt         time.Time
	updatedAt         time.Time
}

// NewAdditionalSection starts a draft section for a purchase request.
func NewAdditionalSection(purchaseRequestID string, variant vo.AdditionalSectionVariant) (*AdditionalSection, error) {
	purchaseRequestID = strings.TrimSpace(purchaseRequestID)
	if purchaseRequestID == "" {
		return nil, fmt.Errorf("%w: purchase request id is required", ErrInvalidInput)
	}
	if !variant.IsValid() || variant == vo.VariantNone {
		return nil, fmt.Errorf("%w: variant %q needs no additional section", ErrInvalidInput, variant)
	}

	now := time.Now()
	return &AdditionalSection{
		purchaseRequestID: purchaseRequestID,
		variant:           variant,
		status:            vo.SectionStatusDraft,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructAdditionalSection rebuilds a section from persistence. The
// stored end period is kept as-is; call Reconcile to verify it.
func ReconstructAdditionalSection(
	id uint,
	purchaseRequestID string,
	variant vo.AdditionalSectionVariant,
	status vo.SectionStatus,
	data SectionData,
	version int,
	createdAt, updatedAt time.Time,
) (*AdditionalSection, error) {
	if id == 0 {
		return nil, fmt.Errorf("additional section ID cannot be zero")
	}
	if purchaseRequestID == "" {
		return nil, fmt.Errorf("purchase request id is required")
	}
	if !variant.IsValid() {
		return nil, fmt.Errorf("%w: %s", vo.ErrInvalidVariant, variant)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid section status: %s", status)
	}

	return &AdditionalSection{
		id:                id,
		purchaseRequestID: purchaseRequestID,
		variant:           variant,
		status:            status,
		data:              copyData(data),
		version:           version,
		persistedVersion:  version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (s *AdditionalSection) ID() uint {
	return s.id
}

func (s *AdditionalSection) PurchaseRequestID() string {
	return s.purchaseRequestID
}

func (s *AdditionalSection) Variant() vo.AdditionalSectionVariant {
	return s.variant
}

func (s *AdditionalSection) Status() vo.SectionStatus {
	return s.status
}

// Data returns a copy of the section payload.
func (s *AdditionalSection) Data() SectionData {
	return copyData(s.data)
}

func (s *AdditionalSection) EndPeriod() *time.Time {
	return copyTime(s.data.EndPeriod)
}

func (s *AdditionalSection) Version() int {
	return s.version
}

// PersistedVersion is the version last read from or written to storage.
// Zero for a section that was never stored.
func (s *AdditionalSection) PersistedVersion() int {
	return s.persistedVersion
}

// MarkPersisted records that the current version has been stored.
func (s *AdditionalSection) MarkPersisted() {
	s.persistedVersion = s.version
}

func (s *AdditionalSection) CreatedAt() time.Time {
	return s.createdAt
}

func (s *AdditionalSection) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the section ID (only for persistence layer use)
func (s *AdditionalSection) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("additional section ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("additional section ID cannot be zero")
	}
	s.id = id
	return nil
}

// IsFieldEditable reports whether field may currently be changed.
func (s *AdditionalSection) IsFieldEditable(field Field) bool {
	return s.checkEditable(field) == nil
}

// SetBillingType sets or clears the billing type and re-derives the end period.
func (s *AdditionalSection) SetBillingType(bt *BillingType) error {
	var id *int
	months := 0
	if bt != nil {
		id = &bt.ID
		months = bt.MonthsPerPeriod
	}
	if equalInt(s.data.BillingTypeID, id) && s.data.MonthsPerPeriod == months {
		return nil
	}
	if err := s.checkEditable(FieldBillingTypeID); err != nil {
		return err
	}

	s.data.BillingTypeID = copyInt(id)
	s.data.MonthsPerPeriod = months
	s.recomputeEndPeriod()
	s.touch()
	return nil
}

// SetStartPeriod sets or clears the start period. Only the calendar date is kept.
func (s *AdditionalSection) SetStartPeriod(start *time.Time) error {
	var date *time.Time
	if start != nil && !start.IsZero() {
		d := biztime.DateOf(*start)
		date = &d
	}
	if equalTime(s.data.StartPeriod, date) {
		return nil
	}
	if err := s.checkEditable(FieldStartPeriod); err != nil {
		return err
	}

	s.data.StartPeriod = date
	s.recomputeEndPeriod()
	s.touch()
	return nil
}

// SetPeriodCount sets or clears the number of billing periods.
func (s *AdditionalSection) SetPeriodCount(count *int) error {
	if equalInt(s.data.PeriodCount, count) {
		return nil
	}
	if err := s.checkEditable(FieldPeriodCount); err != nil {
		return err
	}

	s.data.PeriodCount = copyInt(count)
	s.recomputeEndPeriod()
	s.touch()
	return nil
}

func (s *AdditionalSection) SetSiteOrderNumber(value *string) error {
	return s.setSiteField(FieldSiteOrderNumber, &s.data.SiteOrderNumber, value)
}

func (s *AdditionalSection) SetSiteID(value *string) error {
	return s.setSiteField(FieldSiteID, &s.data.SiteID, value)
}

func (s *AdditionalSection) SetSiteName(value *string) error {
	return s.setSiteField(FieldSiteName, &s.data.SiteName, value)
}

func (s *AdditionalSection) setSiteField(field Field, target **string, value *string) error {
	value = normalizeText(value)
	if equalString(*target, value) {
		return nil
	}
	if err := s.checkEditable(field); err != nil {
		return err
	}

	*target = value
	s.touch()
	return nil
}

// ChangeVariant moves the section to another variant after the purchase
// type changed. Fields the new variant does not carry are cleared.
func (s *AdditionalSection) ChangeVariant(variant vo.AdditionalSectionVariant) error {
	if variant == s.variant {
		return nil
	}
	if !variant.IsValid() || variant == vo.VariantNone {
		return fmt.Errorf("%w: variant %q needs no additional section", ErrInvalidInput, variant)
	}
	if s.status.IsFrozen() {
		return ErrSectionFrozen
	}

	if !variant.RequiresPeriod() {
		s.data.BillingTypeID = nil
		s.data.MonthsPerPeriod = 0
		s.data.StartPeriod = nil
		s.data.PeriodCount = nil
		s.data.EndPeriod = nil
	}
	if !variant.HasSiteFields() {
		s.data.SiteOrderNumber = nil
		s.data.SiteID = nil
		s.data.SiteName = nil
	}

	s.variant = variant
	s.touch()
	return nil
}

// Validate applies the variant's validation rules to the current data.
func (s *AdditionalSection) Validate() ValidationResult {
	return ValidateSection(s.variant, s.data)
}

// Approve freezes a valid section.
func (s *AdditionalSection) Approve() error {
	if s.status == vo.SectionStatusApproved {
		return nil
	}
	if !s.status.CanTransitionTo(vo.SectionStatusApproved) {
		return ErrInvalidTransition(s.status, vo.SectionStatusApproved)
	}
	if err := s.Validate().Err(); err != nil {
		return err
	}

	s.status = vo.SectionStatusApproved
	s.touch()
	return nil
}

// ReturnForRevision reopens an approved section for correction.
func (s *AdditionalSection) ReturnForRevision() error {
	if s.status == vo.SectionStatusRevision {
		return nil
	}
	if !s.status.CanTransitionTo(vo.SectionStatusRevision) {
		return ErrInvalidTransition(s.status, vo.SectionStatusRevision)
	}

	s.status = vo.SectionStatusRevision
	s.touch()
	return nil
}

// Reconcile re-derives the end period from the stored inputs and reports
// whether the persisted value differed.
func (s *AdditionalSection) Reconcile() bool {
	before := copyTime(s.data.EndPeriod)
	s.recomputeEndPeriod()
	return !equalTime(before, s.data.EndPeriod)
}

func (s *AdditionalSection) checkEditable(field Field) error {
	if s.status.IsFrozen() {
		return ErrSectionFrozen
	}

	switch field {
	case FieldBillingTypeID, FieldStartPeriod, FieldPeriodCount:
		if !s.variant.RequiresPeriod() {
			return errNotApplicable(field, s.variant)
		}
		return nil
	case FieldSiteOrderNumber, FieldSiteID, FieldSiteName:
		if !s.variant.HasSiteFields() {
			return errNotApplicable(field, s.variant)
		}
		if !s.status.IsRevision() {
			return nil
		}
		current := s.data.SiteOrderNumber
		if field != FieldSiteOrderNumber {
			current = s.data.SiteID
		}
		if !vo.IsFieldEditableOnRevision(current) {
			return errLocked(field)
		}
		return nil
	default:
		return errNotApplicable(field, s.variant)
	}
}

func (s *AdditionalSection) recomputeEndPeriod() {
	end, err := s.data.ComputeEndPeriod()
	if err != nil {
		s.data.EndPeriod = nil
		return
	}
	s.data.EndPeriod = &end
}

func (s *AdditionalSection) touch() {
	s.updatedAt = time.Now()
	s.version++
}

func normalizeText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func copyData(d SectionData) SectionData {
	return SectionData{
		BillingTypeID:   copyInt(d.BillingTypeID),
		MonthsPerPeriod: d.MonthsPerPeriod,
		StartPeriod:     copyTime(d.StartPeriod),
		PeriodCount:     copyInt(d.PeriodCount),
		EndPeriod:       copyTime(d.EndPeriod),
		SiteOrderNumber: copyString(d.SiteOrderNumber),
		SiteID:          copyString(d.SiteID),
		SiteName:        copyString(d.SiteName),
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
