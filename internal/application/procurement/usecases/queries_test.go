package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appprocurement "github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
	apperrors "github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/errors"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

func TestGetAdditionalSection(t *testing.T) {
	t.Run("missing section is not an error", func(t *testing.T) {
		uc := NewGetAdditionalSectionUseCase(&mockSectionRepository{}, logger.NewNop())

		result, err := uc.Execute(context.Background(), GetAdditionalSectionQuery{PurchaseRequestID: "PR-404"})

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("existing section", func(t *testing.T) {
		section := existingSection(t, vo.VariantBillingType, vo.SectionStatusDraft, validBillingData())
		uc := NewGetAdditionalSectionUseCase(repoReturning(section), logger.NewNop())

		result, err := uc.Execute(context.Background(), GetAdditionalSectionQuery{PurchaseRequestID: "PR-001"})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "2025-06-30", *result.EndPeriod)
		assert.Equal(t, 3, result.Version)
	})
}

func TestListBillingTypes(t *testing.T) {
	uc := NewListBillingTypesUseCase(newMockBillingTypeCatalog(yearly, monthly), logger.NewNop())

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Monthly", result[0].Name)
	assert.Equal(t, 12, result[1].MonthsPerPeriod)

	failing := newMockBillingTypeCatalog()
	failing.listErr = errors.New("timeout")
	_, err = NewListBillingTypesUseCase(failing, logger.NewNop()).Execute(context.Background())
	assert.Error(t, err)
}

func TestComputeEndPeriod(t *testing.T) {
	uc := NewComputeEndPeriodUseCase(
		newMockBillingTypeCatalog(monthly, quarterly),
		appprocurement.NewAdditionalSectionResolver(),
		logger.NewNop(),
	)

	tests := []struct {
		name    string
		cmd     ComputeEndPeriodCommand
		wantEnd string
		wantErr apperrors.ErrorType
	}{
		{
			name:    "explicit multiplier",
			cmd:     ComputeEndPeriodCommand{StartPeriod: "2025-01-15", PeriodCount: 3, MonthsPerPeriod: intPtr(4)},
			wantEnd: "2025-12-31",
		},
		{
			name:    "multiplier from billing type",
			cmd:     ComputeEndPeriodCommand{StartPeriod: "2023-03-01", PeriodCount: 4, BillingTypeID: intPtr(quarterly.ID)},
			wantEnd: "2024-02-29",
		},
		{
			name:    "explicit multiplier wins over billing type",
			cmd:     ComputeEndPeriodCommand{StartPeriod: "2025-01-15", PeriodCount: 2, MonthsPerPeriod: intPtr(1), BillingTypeID: intPtr(quarterly.ID)},
			wantEnd: "2025-02-28",
		},
		{
			name:    "billing type period past year 9999",
			cmd:     ComputeEndPeriodCommand{StartPeriod: "2025-01-15", PeriodCount: 40000, BillingTypeID: intPtr(quarterly.ID)},
			wantErr: apperrors.ErrorTypeValidation,
		},
		{
			name:    "zero period count",
			cmd:     ComputeEndPeriodCommand{StartPeriod: "2025-01-15", PeriodCount: 0, MonthsPerPeriod: intPtr(1)},
			wantErr: apperrors.ErrorTypeValidation,
		},
		{
			name:    "zero multiplier",
			cmd:     ComputeEndPeriodCommand{StartPeriod: "2025-01-15", PeriodCount: 1, MonthsPerPeriod: intPtr(0)},
			wantErr: apperrors.ErrorTypeValidation,
		},
		{
			name:    "unknown billing type",
			cmd:     ComputeEndPeriodCommand{StartPeriod: "2025-01-15", PeriodCount: 1, BillingTypeID: intPtr(9)},
			wantErr: apperrors.ErrorTypeValidationFailed,
		},
		{
			name:    "no multiplier source",
			cmd:     ComputeEndPeriodCommand{StartPeriod: "2025-01-15", PeriodCount: 1},
			wantErr: apperrors.ErrorTypeValidation,
		},
		{
			name:    "missing start",
			cmd:     ComputeEndPeriodCommand{PeriodCount: 1, MonthsPerPeriod: intPtr(1)},
			wantErr: apperrors.ErrorTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr != "" {
				requireAppError(t, err, tt.wantErr, "")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnd, result.EndPeriod)
		})
	}
}

func TestValidateSection(t *testing.T) {
	uc := NewValidateSectionUseCase(
		newMockBillingTypeCatalog(monthly),
		appprocurement.NewAdditionalSectionResolver(),
		logger.NewNop(),
	)

	t.Run("valid subscription reports end period", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ValidateSectionCommand{
			Variant: "subscription",
			Input: dto.SectionInput{
				BillingTypeID: intPtr(monthly.ID),
				StartPeriod:   strPtr("2025-03-01"),
				PeriodCount:   intPtr(12),
			},
		})

		require.NoError(t, err)
		assert.True(t, result.Valid)
		require.NotNil(t, result.EndPeriod)
		assert.Equal(t, "2026-02-28", *result.EndPeriod)
	})

	t.Run("first failing field wins", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ValidateSectionCommand{
			Variant: "billing_type",
			Input:   dto.SectionInput{PeriodCount: intPtr(0)},
		})

		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, procurement.FieldBillingTypeID.String(), result.Field)
		assert.Equal(t, string(procurement.FailureField), result.Kind)
	})

	t.Run("missing billing type outranks malformed start period", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ValidateSectionCommand{
			Variant: "billing_type",
			Input:   dto.SectionInput{StartPeriod: strPtr("not-a-date")},
		})

		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, procurement.FieldBillingTypeID.String(), result.Field)
		assert.Equal(t, string(procurement.FailureField), result.Kind)
	})

	t.Run("malformed start period is a field failure", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ValidateSectionCommand{
			Variant: "subscription",
			Input: dto.SectionInput{
				BillingTypeID: intPtr(monthly.ID),
				StartPeriod:   strPtr("not-a-date"),
				PeriodCount:   intPtr(1),
			},
		})

		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, procurement.FieldStartPeriod.String(), result.Field)
		assert.Equal(t, string(procurement.FailureField), result.Kind)
		assert.Contains(t, result.Reason, "not-a-date")
		assert.Nil(t, result.EndPeriod)
	})

	t.Run("period longer than a century is valid", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ValidateSectionCommand{
			Variant: "billing_type",
			Input: dto.SectionInput{
				BillingTypeID: intPtr(monthly.ID),
				StartPeriod:   strPtr("2025-01-01"),
				PeriodCount:   intPtr(1212),
			},
		})

		require.NoError(t, err)
		assert.True(t, result.Valid)
		require.NotNil(t, result.EndPeriod)
		assert.Equal(t, "2125-12-31", *result.EndPeriod)
	})

	t.Run("unknown billing type is a field failure", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ValidateSectionCommand{
			Variant: "billing_type",
			Input:   dto.SectionInput{BillingTypeID: intPtr(77)},
		})

		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, procurement.FieldBillingTypeID.String(), result.Field)
	})

	t.Run("site reference never fails", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ValidateSectionCommand{
			Variant: "site_reference",
			Input:   dto.SectionInput{PeriodCount: intPtr(-1), StartPeriod: strPtr("garbage")},
		})

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Nil(t, result.EndPeriod)
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ValidateSectionCommand{Variant: "rental"})

		requireAppError(t, err, apperrors.ErrorTypeValidation, "variant")
	})
}
