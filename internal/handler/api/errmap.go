package api

import (
	"errors"
	"net/http"

	"trolley-inventory/internal/handler/httperr"
	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/usecase/commands"
	"trolley-inventory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortDomainError translates usecase sentinels into the error envelope.
// Anything unrecognized is reported as a server failure without leaking
// internals to the client.
func abortDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBatchNotFound),
		errors.Is(err, errs.ErrDrawerNotFound),
		errors.Is(err, errs.ErrEmployeeNotFound),
		errors.Is(err, errs.ErrSnapshotNotFound),
		errors.Is(err, errs.ErrLoadNotFound),
		errors.Is(err, errs.ErrHistoryEntryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Resource not found", nil)

	case errors.Is(err, errs.ErrDuplicateBatchNumber):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeDuplicateBatchNumber, "Batch number already registered", nil)
	case errors.Is(err, errs.ErrDuplicateDrawerCode):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeDuplicateDrawerCode, "Drawer code already registered", nil)
	case errors.Is(err, errs.ErrDuplicateEmployeeCode):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeDuplicateEmployeeCode, "Employee code already registered", nil)
	case errors.Is(err, errs.ErrBatchAlreadyLoaded):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeBatchAlreadyLoaded, "Batch already has an active load in this drawer", nil)

	case errors.Is(err, errs.ErrInvalidStatusTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidStatusTransition, "Illegal batch status transition", nil)
	case errors.Is(err, errs.ErrLoadAlreadyDepleted):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeAlreadyDepleted, "Load is already depleted", nil)
	case errors.Is(err, commands.ErrBatchDepleted):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationError, "Depleted batch cannot be loaded", nil)
	case errors.Is(err, commands.ErrInvalidActionType):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationError, "Invalid action type", nil)
	case errors.Is(err, commands.ErrScoreOutOfRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationError, "Score out of range", nil)
	case errors.Is(err, queries.ErrInvalidMetric):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationError, "Invalid leaderboard metric", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationError, "Validation failed", nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeServerError, "Internal server error", nil)
	}
}

func abortValidationError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationError, "Invalid request", nil)
}
