package http

import (
	procurementApp "github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/usecases"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/services/sanitize"
)

type allUseCases struct {
	resolver *procurementApp.AdditionalSectionResolver

	resolveSection    *usecases.ResolveSectionUseCase
	computeEndPeriod  *usecases.ComputeEndPeriodUseCase
	validateSection   *usecases.ValidateSectionUseCase
	listBillingTypes  *usecases.ListBillingTypesUseCase
	getSection        *usecases.GetAdditionalSectionUseCase
	saveSection       *usecases.SaveAdditionalSectionUseCase
	approveSection    *usecases.ApproveAdditionalSectionUseCase
	returnForRevision *usecases.ReturnForRevisionUseCase
}

func newUseCases(repos *repositories, log logger.Interface) *allUseCases {
	resolver := procurementApp.NewAdditionalSectionResolver()
	sanitizer := sanitize.NewTextService()

	return &allUseCases{
		resolver:          resolver,
		resolveSection:    usecases.NewResolveSectionUseCase(repos.typeCatalog, resolver, log.Named("resolve_section")),
		computeEndPeriod:  usecases.NewComputeEndPeriodUseCase(repos.billingTypes, resolver, log.Named("compute_end_period")),
		validateSection:   usecases.NewValidateSectionUseCase(repos.billingTypes, resolver, log.Named("validate_section")),
		listBillingTypes:  usecases.NewListBillingTypesUseCase(repos.billingTypes, log.Named("list_billing_types")),
		getSection:        usecases.NewGetAdditionalSectionUseCase(repos.sectionRepo, log.Named("get_section")),
		saveSection:       usecases.NewSaveAdditionalSectionUseCase(repos.sectionRepo, repos.billingTypes, resolver, sanitizer, log.Named("save_section")),
		approveSection:    usecases.NewApproveAdditionalSectionUseCase(repos.sectionRepo, log.Named("approve_section")),
		returnForRevision: usecases.NewReturnForRevisionUseCase(repos.sectionRepo, log.Named("return_for_revision")),
	}
}
