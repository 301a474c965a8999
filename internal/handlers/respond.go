package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/service"
	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/storage"
)

// fail maps the service error taxonomy onto HTTP statuses at the request
// boundary. Everything unrecognized is a 500.
func fail(c *gin.Context, err error) {
	c.JSON(errStatus(err), gin.H{"error": err.Error()})
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidPricing),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, storage.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidStateTransition),
		errors.Is(err, service.ErrQuoteExpired):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
