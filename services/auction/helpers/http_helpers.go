package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"procurv/internal/auctionerrors"
	"procurv/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidRequirements):
		return http.StatusBadRequest, "invalid requirements"
	case errors.Is(err, auctionerrors.ErrNoVendors):
		return http.StatusBadRequest, "no vendors resolvable"
	case errors.Is(err, auctionerrors.ErrInvalidVendorRow):
		return http.StatusBadRequest, "invalid vendor row"
	case errors.Is(err, auctionerrors.ErrAlreadyStarted):
		return http.StatusBadRequest, "auction already started"
	case errors.Is(err, auctionerrors.ErrAuctionNotEnded):
		return http.StatusBadRequest, "auction has not ended yet"
	case errors.Is(err, auctionerrors.ErrMissingText):
		return http.StatusBadRequest, "message text is required"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
