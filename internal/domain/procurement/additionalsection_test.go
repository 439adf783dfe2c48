package procurement

import (
	"testing"
	"time"

	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func quarterly() *BillingType {
	return &BillingType{ID: 3, Name: "Quarterly", MonthsPerPeriod: 3}
}

func newSection(t *testing.T, variant vo.AdditionalSectionVariant) *AdditionalSection {
	t.Helper()
	s, err := NewAdditionalSection("PR-2025-0001", variant)
	require.NoError(t, err)
	return s
}

func reconstructSection(t *testing.T, variant vo.AdditionalSectionVariant, status vo.SectionStatus, data SectionData) *AdditionalSection {
	t.Helper()
	now := time.Now()
	s, err := ReconstructAdditionalSection(7, "PR-2025-0001", variant, status, data, 4, now, now)
	require.NoError(t, err)
	return s
}

func fillPeriod(t *testing.T, s *AdditionalSection) {
	t.Helper()
	require.NoError(t, s.SetBillingType(quarterly()))
	require.NoError(t, s.SetStartPeriod(datePtr(2025, time.January, 15)))
	require.NoError(t, s.SetPeriodCount(intPtr(4)))
}

// =====================================================================
// Construction
// =====================================================================

func TestNewAdditionalSection(t *testing.T) {
	s := newSection(t, vo.VariantSubscription)

	assert.Equal(t, "PR-2025-0001", s.PurchaseRequestID())
	assert.Equal(t, vo.SectionStatusDraft, s.Status())
	assert.Equal(t, 1, s.Version())
	assert.Nil(t, s.EndPeriod())
	assert.Zero(t, s.ID())
}

func TestNewAdditionalSection_InvalidInput(t *testing.T) {
	_, err := NewAdditionalSection("  ", vo.VariantBillingType)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewAdditionalSection("PR-1", vo.VariantNone)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewAdditionalSection("PR-1", vo.AdditionalSectionVariant("other"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReconstructAdditionalSection_Invalid(t *testing.T) {
	now := time.Now()
	_, err := ReconstructAdditionalSection(0, "PR", vo.VariantBillingType, vo.SectionStatusDraft, SectionData{}, 1, now, now)
	assert.Error(t, err)

	_, err = ReconstructAdditionalSection(1, "PR", vo.AdditionalSectionVariant("x"), vo.SectionStatusDraft, SectionData{}, 1, now, now)
	assert.ErrorIs(t, err, vo.ErrInvalidVariant)

	_, err = ReconstructAdditionalSection(1, "PR", vo.VariantBillingType, vo.SectionStatus("closed"), SectionData{}, 1, now, now)
	assert.Error(t, err)
}

func TestSetID(t *testing.T) {
	s := newSection(t, vo.VariantBillingType)

	assert.Error(t, s.SetID(0))
	require.NoError(t, s.SetID(9))
	assert.Equal(t, uint(9), s.ID())
	assert.Error(t, s.SetID(10))
}

// =====================================================================
// End-period derivation
// =====================================================================

func TestEndPeriod_RecomputedOnEveryInputEdit(t *testing.T) {
	s := newSection(t, vo.VariantBillingType)

	require.NoError(t, s.SetBillingType(quarterly()))
	assert.Nil(t, s.EndPeriod())

	require.NoError(t, s.SetStartPeriod(datePtr(2025, time.January, 15)))
	assert.Nil(t, s.EndPeriod())

	require.NoError(t, s.SetPeriodCount(intPtr(4)))
	require.NotNil(t, s.EndPeriod())
	assert.Equal(t, biztime.Date(2025, time.December, 31), *s.EndPeriod())

	require.NoError(t, s.SetPeriodCount(intPtr(1)))
	assert.Equal(t, biztime.Date(2025, time.March, 31), *s.EndPeriod())

	require.NoError(t, s.SetBillingType(&BillingType{ID: 1, Name: "Monthly", MonthsPerPeriod: 1}))
	assert.Equal(t, biztime.Date(2025, time.January, 31), *s.EndPeriod())

	require.NoError(t, s.SetStartPeriod(datePtr(2024, time.February, 2)))
	assert.Equal(t, biztime.Date(2024, time.February, 29), *s.EndPeriod())

	require.NoError(t, s.SetPeriodCount(intPtr(0)))
	assert.Nil(t, s.EndPeriod(), "uncomputable inputs clear the end period")
}

func TestSetStartPeriod_KeepsDateOnly(t *testing.T) {
	s := newSection(t, vo.VariantBillingType)
	start := time.Date(2025, time.May, 20, 23, 45, 0, 0, time.UTC)

	require.NoError(t, s.SetStartPeriod(&start))

	data := s.Data()
	require.NotNil(t, data.StartPeriod)
	assert.Equal(t, biztime.Date(2025, time.May, 20), *data.StartPeriod)
}

func TestEdits_BumpVersionOnlyOnChange(t *testing.T) {
	s := newSection(t, vo.VariantSiteReference)

	require.NoError(t, s.SetSiteID(strPtr(" 42 ")))
	assert.Equal(t, 2, s.Version())

	require.NoError(t, s.SetSiteID(strPtr("42")))
	assert.Equal(t, 2, s.Version(), "unchanged value is a no-op")

	require.NoError(t, s.SetSiteID(strPtr("   ")))
	assert.Nil(t, s.Data().SiteID, "blank text is stored as absent")
	assert.Equal(t, 3, s.Version())
}

func TestData_ReturnsCopy(t *testing.T) {
	s := newSection(t, vo.VariantBillingType)
	fillPeriod(t, s)

	data := s.Data()
	*data.PeriodCount = 99

	assert.Equal(t, 4, *s.Data().PeriodCount)
}

// =====================================================================
// Applicability
// =====================================================================

func TestFieldApplicability(t *testing.T) {
	site := newSection(t, vo.VariantSiteReference)
	assert.ErrorIs(t, site.SetBillingType(quarterly()), ErrFieldNotApplicable)
	assert.ErrorIs(t, site.SetPeriodCount(intPtr(1)), ErrFieldNotApplicable)
	assert.NoError(t, site.SetSiteOrderNumber(strPtr("SO-1")))

	billing := newSection(t, vo.VariantBillingType)
	assert.ErrorIs(t, billing.SetSiteName(strPtr("Tower A")), ErrFieldNotApplicable)
	assert.NoError(t, billing.SetStartPeriod(datePtr(2025, time.January, 1)))

	sub := newSection(t, vo.VariantSubscription)
	assert.NoError(t, sub.SetSiteName(strPtr("Tower A")))
	assert.NoError(t, sub.SetPeriodCount(intPtr(2)))

	// clearing an absent value is always a no-op
	assert.NoError(t, site.SetBillingType(nil))
}

func TestChangeVariant_ClearsForeignFields(t *testing.T) {
	s := newSection(t, vo.VariantSubscription)
	fillPeriod(t, s)
	require.NoError(t, s.SetSiteID(strPtr("42")))

	require.NoError(t, s.ChangeVariant(vo.VariantSiteReference))
	data := s.Data()
	assert.Nil(t, data.BillingTypeID)
	assert.Nil(t, data.EndPeriod)
	assert.Equal(t, "42", *data.SiteID)

	require.NoError(t, s.ChangeVariant(vo.VariantBillingType))
	assert.Nil(t, s.Data().SiteID)

	assert.ErrorIs(t, s.ChangeVariant(vo.VariantNone), ErrInvalidInput)
}

// =====================================================================
// Lifecycle
// =====================================================================

func TestApprove_RequiresValidSection(t *testing.T) {
	s := newSection(t, vo.VariantBillingType)

	err := s.Approve()
	require.ErrorIs(t, err, ErrValidationFailed)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, FieldBillingTypeID, vErr.Field)
	assert.Equal(t, vo.SectionStatusDraft, s.Status())

	fillPeriod(t, s)
	require.NoError(t, s.Approve())
	assert.Equal(t, vo.SectionStatusApproved, s.Status())
	assert.NoError(t, s.Approve(), "approving twice is idempotent")
}

func TestApproved_RejectsEveryEdit(t *testing.T) {
	s := newSection(t, vo.VariantSubscription)
	fillPeriod(t, s)
	require.NoError(t, s.Approve())

	assert.ErrorIs(t, s.SetBillingType(nil), ErrSectionFrozen)
	assert.ErrorIs(t, s.SetStartPeriod(datePtr(2026, time.January, 1)), ErrSectionFrozen)
	assert.ErrorIs(t, s.SetPeriodCount(intPtr(9)), ErrSectionFrozen)
	assert.ErrorIs(t, s.SetSiteOrderNumber(strPtr("SO")), ErrSectionFrozen)
	assert.ErrorIs(t, s.ChangeVariant(vo.VariantBillingType), ErrSectionFrozen)
	assert.False(t, s.IsFieldEditable(FieldPeriodCount))
}

func TestReturnForRevision(t *testing.T) {
	s := newSection(t, vo.VariantBillingType)
	assert.ErrorIs(t, s.ReturnForRevision(), ErrInvalidStatusTransition)

	fillPeriod(t, s)
	require.NoError(t, s.Approve())
	require.NoError(t, s.ReturnForRevision())
	assert.Equal(t, vo.SectionStatusRevision, s.Status())

	// period fields reopen for correction
	require.NoError(t, s.SetPeriodCount(intPtr(8)))
	assert.Equal(t, biztime.Date(2026, time.December, 31), *s.EndPeriod())

	require.NoError(t, s.Approve())
}

func TestRevision_SiteIdentifierLock(t *testing.T) {
	tests := []struct {
		name     string
		current  *string
		editable bool
	}{
		{"never set", nil, true},
		{"placeholder zero", strPtr("0"), true},
		{"non numeric", strPtr("pending"), true},
		{"resolved identifier", strPtr("42"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := reconstructSection(t, vo.VariantSiteReference, vo.SectionStatusRevision, SectionData{
				SiteOrderNumber: tt.current,
				SiteID:          tt.current,
			})

			orderErr := s.SetSiteOrderNumber(strPtr("77"))
			idErr := s.SetSiteID(strPtr("77"))

			if tt.editable {
				assert.NoError(t, orderErr)
				assert.NoError(t, idErr)
				return
			}
			assert.ErrorIs(t, orderErr, ErrFieldLocked)
			assert.ErrorIs(t, idErr, ErrFieldLocked)
			assert.Equal(t, tt.current, s.Data().SiteID)
		})
	}
}

func TestRevision_SiteNameFollowsSiteID(t *testing.T) {
	locked := reconstructSection(t, vo.VariantSubscription, vo.SectionStatusRevision, SectionData{
		SiteID:   strPtr("42"),
		SiteName: strPtr("Tower A"),
	})
	assert.ErrorIs(t, locked.SetSiteName(strPtr("Tower B")), ErrFieldLocked)
	assert.False(t, locked.IsFieldEditable(FieldSiteName))
	assert.True(t, locked.IsFieldEditable(FieldSiteOrderNumber))

	open := reconstructSection(t, vo.VariantSubscription, vo.SectionStatusRevision, SectionData{})
	assert.NoError(t, open.SetSiteName(strPtr("Tower B")))
}

func TestDraft_SiteIdentifiersAlwaysEditable(t *testing.T) {
	s := reconstructSection(t, vo.VariantSiteReference, vo.SectionStatusDraft, SectionData{SiteID: strPtr("42")})

	require.NoError(t, s.SetSiteID(strPtr("43")))
	assert.Equal(t, "43", *s.Data().SiteID)
}

// =====================================================================
// Reconcile
// =====================================================================

func TestReconcile(t *testing.T) {
	data := SectionData{
		BillingTypeID:   intPtr(3),
		MonthsPerPeriod: 3,
		StartPeriod:     datePtr(2025, time.January, 15),
		PeriodCount:     intPtr(4),
		EndPeriod:       datePtr(2025, time.December, 31),
	}
	s := reconstructSection(t, vo.VariantBillingType, vo.SectionStatusApproved, data)
	assert.False(t, s.Reconcile(), "stored value matches derivation")

	data.EndPeriod = datePtr(2025, time.December, 1)
	drifted := reconstructSection(t, vo.VariantBillingType, vo.SectionStatusApproved, data)
	assert.True(t, drifted.Reconcile())
	assert.Equal(t, biztime.Date(2025, time.December, 31), *drifted.EndPeriod())
	assert.False(t, drifted.Reconcile(), "reconcile is idempotent")
}
