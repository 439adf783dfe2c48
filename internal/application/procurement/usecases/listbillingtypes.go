package usecases

import (
	"context"
	"fmt"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

type ListBillingTypesUseCase struct {
	billingTypes procurement.BillingTypeCatalog
	logger       logger.Interface
}

func NewListBillingTypesUseCase(
	billingTypes procurement.BillingTypeCatalog,
	logger logger.Interface,
) *ListBillingTypesUseCase {
	return &ListBillingTypesUseCase{
		billingTypes: billingTypes,
		logger:       logger,
	}
}

func (uc *ListBillingTypesUseCase) Execute(ctx context.Context) ([]*dto.BillingTypeDTO, error) {
	types, err := uc.billingTypes.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list billing types", "error", err)
		return nil, fmt.Errorf("failed to list billing types: %w", err)
	}
	return dto.ToBillingTypeDTOList(types), nil
}
