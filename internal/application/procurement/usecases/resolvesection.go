package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

type ResolveSectionQuery struct {
	TypeToken    string
	SubTypeToken string
}

// ResolveSectionUseCase turns purchase type tokens into the section variant.
// The sub-type lookup is keyed by the resolved type ID, so it only starts
// once the type lookup has returned.
type ResolveSectionUseCase struct {
	typeCatalog procurement.TypeCatalog
	resolver    SectionResolver
	logger      logger.Interface
}

func NewResolveSectionUseCase(
	typeCatalog procurement.TypeCatalog,
	resolver SectionResolver,
	logger logger.Interface,
) *ResolveSectionUseCase {
	return &ResolveSectionUseCase{
		typeCatalog: typeCatalog,
		resolver:    resolver,
		logger:      logger,
	}
}

func (uc *ResolveSectionUseCase) Execute(ctx context.Context, query ResolveSectionQuery) (*dto.ResolvedSectionDTO, error) {
	typeToken := strings.TrimSpace(query.TypeToken)
	if typeToken == "" {
		return &dto.ResolvedSectionDTO{VariantDTO: dto.ToVariantDTO(vo.VariantNone)}, nil
	}

	typeRef, err := uc.typeCatalog.ResolveType(ctx, typeToken)
	if err != nil {
		if errors.Is(err, procurement.ErrNotFound) {
			uc.logger.Debugw("purchase type not in catalog, no additional section", "type", typeToken)
			return &dto.ResolvedSectionDTO{VariantDTO: dto.ToVariantDTO(vo.VariantNone)}, nil
		}
		uc.logger.Errorw("failed to resolve purchase type", "error", err, "type", typeToken)
		return nil, fmt.Errorf("failed to resolve purchase type: %w", err)
	}

	var subTypeRef *procurement.PurchaseSubTypeRef
	if subToken := strings.TrimSpace(query.SubTypeToken); subToken != "" {
		subTypeRef, err = uc.typeCatalog.ResolveSubType(ctx, typeRef.ID, subToken)
		if err != nil && !errors.Is(err, procurement.ErrNotFound) {
			uc.logger.Errorw("failed to resolve purchase sub-type", "error", err, "type_id", typeRef.ID, "sub_type", subToken)
			return nil, fmt.Errorf("failed to resolve purchase sub-type: %w", err)
		}
		if err != nil {
			uc.logger.Debugw("purchase sub-type not in catalog", "type_id", typeRef.ID, "sub_type", subToken)
			subTypeRef = nil
		}
	}

	var subTypeID *int
	if subTypeRef != nil {
		subTypeID = &subTypeRef.ID
	}
	variant := uc.resolver.Resolve(&typeRef.ID, subTypeID)

	uc.logger.Debugw("additional section resolved",
		"type_id", typeRef.ID,
		"sub_type_id", subTypeID,
		"variant", variant,
	)

	return &dto.ResolvedSectionDTO{
		Type:       dto.ToPurchaseTypeDTO(typeRef),
		SubType:    dto.ToPurchaseSubTypeDTO(subTypeRef),
		VariantDTO: dto.ToVariantDTO(variant),
	}, nil
}
