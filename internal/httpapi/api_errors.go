package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	menuapp "github.com/cheezenes/pos-api/internal/domains/menu/application"
	menuports "github.com/cheezenes/pos-api/internal/domains/menu/ports"
	orderapp "github.com/cheezenes/pos-api/internal/domains/orders/application"
	orderports "github.com/cheezenes/pos-api/internal/domains/orders/ports"
	apierrors "github.com/cheezenes/pos-api/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError returns RFC 7807 responses for transport-level failures.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// respondMenuServiceError translates menu service errors into problems.
func respondMenuServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, menuports.ErrNotFound):
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, menuapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}

// respondOrderServiceError translates order service errors into problems.
func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, orderports.ErrNotFound):
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, orderapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, orderports.ErrDuplicateNumber), errors.Is(err, orderports.ErrIdempotencyConflict):
		respondProblem(c, apierrors.ErrConflict.WithDetail(err.Error()))
	case errors.Is(err, orderports.ErrStorageUnavailable):
		respondProblem(c, apierrors.ErrStorageUnavailable.WithDetail(err.Error()))
	case errors.Is(err, orderports.ErrPartialWrite):
		respondProblem(c, apierrors.ErrPartialWrite.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}

// respondReportServiceError translates report service errors into problems.
func respondReportServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}
