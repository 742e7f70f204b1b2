package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"metrics-consolidation-backend/internal/apperr"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/validation"
)

// respondServiceError maps service-layer errors onto the HTTP contract.
// failureMessage is the generic body for fetch/store failures; the underlying
// detail stays in the log, never in the response. Anything unclassified gets
// a fixed 500 body rather than echoing internals.
func respondServiceError(ctx *gin.Context, err error, failureMessage string) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request data", validationErr.Messages))
	case errors.Is(err, apperr.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
	case errors.Is(err, apperr.ErrNotFound):
		ctx.JSON(http.StatusNotFound, model.NewResponse("User not found", nil))
	case errors.Is(err, apperr.ErrIngestionFailed), errors.Is(err, apperr.ErrQueryFailed):
		ctx.JSON(http.StatusBadRequest, model.NewResponse(failureMessage, nil))
	default:
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("internal server error", nil))
	}
}
