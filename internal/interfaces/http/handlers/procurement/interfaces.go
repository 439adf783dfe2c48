package procurement

import (
	"context"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/usecases"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
)

// Use case interfaces for Handler

type sectionResolver interface {
	Resolve(typeID, subTypeID *int) vo.AdditionalSectionVariant
	IsFieldEditableOnRevision(currentValue *string) bool
}

type resolveSectionUseCase interface {
	Execute(ctx context.Context, query usecases.ResolveSectionQuery) (*dto.ResolvedSectionDTO, error)
}

type computeEndPeriodUseCase interface {
	Execute(ctx context.Context, cmd usecases.ComputeEndPeriodCommand) (*dto.EndPeriodDTO, error)
}

type validateSectionUseCase interface {
	Execute(ctx context.Context, cmd usecases.ValidateSectionCommand) (*dto.ValidationResultDTO, error)
}

type listBillingTypesUseCase interface {
	Execute(ctx context.Context) ([]*dto.BillingTypeDTO, error)
}

type getAdditionalSectionUseCase interface {
	Execute(ctx context.Context, query usecases.GetAdditionalSectionQuery) (*dto.AdditionalSectionDTO, error)
}

type saveAdditionalSectionUseCase interface {
	Execute(ctx context.Context, cmd usecases.SaveAdditionalSectionCommand) (*dto.AdditionalSectionDTO, error)
}

type changeSectionStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeSectionStatusCommand) (*dto.AdditionalSectionDTO, error)
}
