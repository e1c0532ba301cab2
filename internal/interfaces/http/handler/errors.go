package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pricing "bannerstore/internal/application/pricing"
	"bannerstore/internal/domain/catalog"
	domain "bannerstore/internal/domain/order"
	"bannerstore/pkg/logger"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrProductInactive),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, pricing.ErrIncompleteConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTerminalStatus),
		errors.Is(err, domain.ErrConcurrentUpdate),
		errors.Is(err, domain.ErrStatusUnchanged),
		errors.Is(err, domain.ErrNoNextStatus),
		errors.Is(err, domain.ErrNoPreviousStatus):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownStatus), errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, log logger.Logger, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.WithContext(c.Request.Context()).Error("request failed",
			logger.String("path", c.FullPath()),
			logger.Error(err),
		)
		c.JSON(code, gin.H{"error": "internal error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
