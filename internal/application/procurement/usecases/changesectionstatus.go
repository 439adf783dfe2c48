package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	apperrors "github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/errors"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

type ChangeSectionStatusCommand struct {
	PurchaseRequestID string
}

// ApproveAdditionalSectionUseCase freezes the section together with its
// purchase request. Only a valid section can be approved.
type ApproveAdditionalSectionUseCase struct {
	sectionRepo procurement.AdditionalSectionRepository
	logger      logger.Interface
}

func NewApproveAdditionalSectionUseCase(
	sectionRepo procurement.AdditionalSectionRepository,
	logger logger.Interface,
) *ApproveAdditionalSectionUseCase {
	return &ApproveAdditionalSectionUseCase{
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

func (uc *ApproveAdditionalSectionUseCase) Execute(ctx context.Context, cmd ChangeSectionStatusCommand) (*dto.AdditionalSectionDTO, error) {
	return changeStatus(ctx, uc.sectionRepo, uc.logger, cmd.PurchaseRequestID, "approve",
		(*procurement.AdditionalSection).Approve)
}

// ReturnForRevisionUseCase reopens an approved section. Site identifiers
// that were already resolved stay locked.
type ReturnForRevisionUseCase struct {
	sectionRepo procurement.AdditionalSectionRepository
	logger      logger.Interface
}

func NewReturnForRevisionUseCase(
	sectionRepo procurement.AdditionalSectionRepository,
	logger logger.Interface,
) *ReturnForRevisionUseCase {
	return &ReturnForRevisionUseCase{
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

func (uc *ReturnForRevisionUseCase) Execute(ctx context.Context, cmd ChangeSectionStatusCommand) (*dto.AdditionalSectionDTO, error) {
	return changeStatus(ctx, uc.sectionRepo, uc.logger, cmd.PurchaseRequestID, "return for revision",
		(*procurement.AdditionalSection).ReturnForRevision)
}

func changeStatus(
	ctx context.Context,
	repo procurement.AdditionalSectionRepository,
	log logger.Interface,
	purchaseRequestID string,
	action string,
	transition func(*procurement.AdditionalSection) error,
) (*dto.AdditionalSectionDTO, error) {
	section, err := repo.GetByPurchaseRequestID(ctx, purchaseRequestID)
	if err != nil {
		if errors.Is(err, procurement.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("additional section not found", purchaseRequestID)
		}
		log.Errorw("failed to load additional section", "error", err, "purchase_request_id", purchaseRequestID)
		return nil, fmt.Errorf("failed to load additional section: %w", err)
	}

	from := section.Status()
	versionBefore := section.Version()
	if err := transition(section); err != nil {
		log.Warnw("section status change refused",
			"action", action,
			"purchase_request_id", purchaseRequestID,
			"status", from,
			"error", err,
		)
		return nil, translateDomainError("failed to "+action+" additional section", err)
	}

	if section.Version() != versionBefore {
		if err := repo.Update(ctx, section); err != nil {
			log.Errorw("failed to persist section status", "error", err, "purchase_request_id", purchaseRequestID)
			return nil, translateDomainError("failed to persist section status", err)
		}
		log.Infow("additional section status changed",
			"purchase_request_id", purchaseRequestID,
			"from", from,
			"to", section.Status(),
		)
	}

	return dto.ToAdditionalSectionDTO(section), nil
}
