// internal/handlers/handlers.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

// respondServiceError maps facade sentinel errors onto the response
// envelope. Anything unrecognized is a 500, with validation failures
// special-cased as 400s.
func respondServiceError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrInvalidRole):
		utils.BadRequestResponse(c, "Invalid role", nil)
	case errors.Is(err, services.ErrOutOfStock):
		utils.ConflictResponse(c, "Insufficient stock")
	case errors.Is(err, services.ErrUnavailable):
		utils.ConflictResponse(c, "Product is not available")
	case errors.Is(err, services.ErrBadLifecycle):
		utils.ConflictResponse(c, "Operation not allowed in current state")
	case strings.Contains(err.Error(), "validation failed"):
		if validationErrors := utils.GetValidationErrors(errors.Unwrap(err)); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

// ownerKey pulls the authenticated identity set by the auth middleware,
// writing the 401 itself when it is missing.
func ownerKey(c *gin.Context) (string, bool) {
	key, exists := utils.GetOwnerKeyFromContext(c)
	if !exists || key == "" {
		utils.UnauthorizedResponse(c, "")
		return "", false
	}
	return key, true
}
