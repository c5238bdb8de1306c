package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courseadvisor/internal/app/models/dto"
	"courseadvisor/internal/pkg/apperrors"
	"courseadvisor/internal/pkg/logger"
)

// HandleAPIError maps application errors to API error responses. Data-source
// failures surface as 503 so callers can distinguish "backing file missing"
// from an application bug.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error().Err(err).Msg("Ratings store unavailable")
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStoreError, "Ratings store unavailable"),
		))

	case errors.Is(err, apperrors.ErrCatalogNotFound):
		logger.Error().Err(err).Msg("Course catalog unavailable")
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStoreError, "Course catalog unavailable"),
		))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error()),
		))

	default:
		logger.Error().Err(err).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An error occurred while processing your request"),
		))
	}
}
