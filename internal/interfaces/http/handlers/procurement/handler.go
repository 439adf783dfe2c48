// Package procurement exposes the additional-section resolver over HTTP.
package procurement

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/usecases"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/utils"
)

type Handler struct {
	resolver       sectionResolver
	resolveUC      resolveSectionUseCase
	endPeriodUC    computeEndPeriodUseCase
	validateUC     validateSectionUseCase
	billingTypesUC listBillingTypesUseCase
	getSectionUC   getAdditionalSectionUseCase
	saveSectionUC  saveAdditionalSectionUseCase
	approveUC      changeSectionStatusUseCase
	reviseUC       changeSectionStatusUseCase
	logger         logger.Interface
}

func NewHandler(
	resolver sectionResolver,
	resolveUC resolveSectionUseCase,
	endPeriodUC computeEndPeriodUseCase,
	validateUC validateSectionUseCase,
	billingTypesUC listBillingTypesUseCase,
	getSectionUC getAdditionalSectionUseCase,
	saveSectionUC saveAdditionalSectionUseCase,
	approveUC changeSectionStatusUseCase,
	reviseUC changeSectionStatusUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		resolver:       resolver,
		resolveUC:      resolveUC,
		endPeriodUC:    endPeriodUC,
		validateUC:     validateUC,
		billingTypesUC: billingTypesUC,
		getSectionUC:   getSectionUC,
		saveSectionUC:  saveSectionUC,
		approveUC:      approveUC,
		reviseUC:       reviseUC,
		logger:         logger,
	}
}

// GetVariant handles GET /additional-sections/variant?type_id=&sub_type_id=
func (h *Handler) GetVariant(c *gin.Context) {
	typeID, err := utils.ParseOptionalIntQuery(c, "type_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	subTypeID, err := utils.ParseOptionalIntQuery(c, "sub_type_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	variant := h.resolver.Resolve(typeID, subTypeID)
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToVariantDTO(variant))
}

// ResolveSection handles GET /additional-sections/resolve?type=&sub_type=
// Tokens may be IDs or labels.
func (h *Handler) ResolveSection(c *gin.Context) {
	query := usecases.ResolveSectionQuery{
		TypeToken:    c.Query("type"),
		SubTypeToken: c.Query("sub_type"),
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) ComputeEndPeriod(c *gin.Context) {
	var req ComputeEndPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for compute end period", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.endPeriodUC.Execute(c.Request.Context(), usecases.ComputeEndPeriodCommand{
		StartPeriod:     req.StartPeriod,
		PeriodCount:     req.PeriodCount,
		MonthsPerPeriod: req.MonthsPerPeriod,
		BillingTypeID:   req.BillingTypeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ValidateSection checks a form without saving it. An invalid section is
// still a 200 response with valid=false.
func (h *Handler) ValidateSection(c *gin.Context) {
	var req ValidateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for validate section", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.validateUC.Execute(c.Request.Context(), usecases.ValidateSectionCommand{
		Variant: req.Variant,
		Input:   req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RevisionEditable handles GET /additional-sections/revision-editable?value=
// An absent value parameter means the field is empty.
func (h *Handler) RevisionEditable(c *gin.Context) {
	var value *string
	if raw, ok := c.GetQuery("value"); ok {
		value = &raw
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.RevisionEditableDTO{
		Value:    value,
		Editable: h.resolver.IsFieldEditableOnRevision(value),
	})
}

func (h *Handler) ListBillingTypes(c *gin.Context) {
	result, err := h.billingTypesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetSection returns the section of a purchase request. A request without
// one yet yields a 200 with no data.
func (h *Handler) GetSection(c *gin.Context) {
	prID, err := utils.ParsePurchaseRequestIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSectionUC.Execute(c.Request.Context(), usecases.GetAdditionalSectionQuery{
		PurchaseRequestID: prID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.SuccessResponse(c, http.StatusOK, "No additional section yet", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) SaveSection(c *gin.Context) {
	prID, err := utils.ParsePurchaseRequestIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SaveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for save section",
			"purchase_request_id", prID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.saveSectionUC.Execute(c.Request.Context(), usecases.SaveAdditionalSectionCommand{
		PurchaseRequestID: prID,
		TypeID:            req.TypeID,
		SubTypeID:         req.SubTypeID,
		Input:             req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Additional section saved", result)
}

func (h *Handler) ApproveSection(c *gin.Context) {
	h.changeStatus(c, h.approveUC, "Additional section approved")
}

func (h *Handler) ReviseSection(c *gin.Context) {
	h.changeStatus(c, h.reviseUC, "Additional section returned for revision")
}

func (h *Handler) changeStatus(c *gin.Context, uc changeSectionStatusUseCase, message string) {
	prID, err := utils.ParsePurchaseRequestIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := uc.Execute(c.Request.Context(), usecases.ChangeSectionStatusCommand{
		PurchaseRequestID: prID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}
