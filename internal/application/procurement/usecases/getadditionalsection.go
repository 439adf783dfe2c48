package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

type GetAdditionalSectionQuery struct {
	PurchaseRequestID string
}

type GetAdditionalSectionUseCase struct {
	sectionRepo procurement.AdditionalSectionRepository
	logger      logger.Interface
}

func NewGetAdditionalSectionUseCase(
	sectionRepo procurement.AdditionalSectionRepository,
	logger logger.Interface,
) *GetAdditionalSectionUseCase {
	return &GetAdditionalSectionUseCase{
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// Execute returns nil without error when the purchase request has no
// additional section yet.
func (uc *GetAdditionalSectionUseCase) Execute(ctx context.Context, query GetAdditionalSectionQuery) (*dto.AdditionalSectionDTO, error) {
	section, err := uc.sectionRepo.GetByPurchaseRequestID(ctx, query.PurchaseRequestID)
	if err != nil {
		if errors.Is(err, procurement.ErrNotFound) {
			uc.logger.Debugw("additional section does not exist yet", "purchase_request_id", query.PurchaseRequestID)
			return nil, nil
		}
		uc.logger.Errorw("failed to get additional section", "error", err, "purchase_request_id", query.PurchaseRequestID)
		return nil, fmt.Errorf("failed to get additional section: %w", err)
	}

	return dto.ToAdditionalSectionDTO(section), nil
}
