package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps a service error onto its HTTP response.
// NotFound and Conflict carry only a status code.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.Status(http.StatusNotFound)
		return
	case errors.Is(err, apperrors.ErrConflict):
		c.Status(http.StatusConflict)
		return
	case errors.Is(err, apperrors.ErrMissingField):
		resp := dto.MissingFieldResponse{ErrorMessage: err.Error()}
		if ce, ok := apperrors.AsCustomError(err); ok {
			resp.ErrorCode = ce.Code
			resp.ErrorMessage = ce.Message
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").WithDetails(err.Error()),
		))
		return
	default:
		// Handle unknown errors
		logger.Error().Err(err).
			Str("requestID", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error while serving request")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical),
		))
		return
	}
}

// RecoveryHandler answers a panicking handler with the generic 500 body
func RecoveryHandler() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("requestID", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical),
		))
	})
}
