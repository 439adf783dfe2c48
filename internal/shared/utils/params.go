package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/constants"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/errors"
)

// ParsePurchaseRequestIDParam reads and validates a purchase request number
// from a URL path parameter.
func ParsePurchaseRequestIDParam(c *gin.Context, paramName string) (string, error) {
	raw := strings.TrimSpace(c.Param(paramName))
	if raw == "" {
		return "", errors.NewValidationError("purchase request ID is required")
	}
	if len(raw) > constants.MaxPurchaseRequestIDLength {
		return "", errors.NewValidationError(
			fmt.Sprintf("purchase request ID cannot exceed %d characters", constants.MaxPurchaseRequestIDLength),
		)
	}
	return raw, nil
}

// ParseOptionalIntQuery parses an integer query parameter. An absent or
// empty parameter yields nil.
func ParseOptionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be an integer", name), name)
	}
	return &v, nil
}
