package httperr

import (
	"github.com/gin-gonic/gin"
)

// Error codes surfaced to API clients.
const (
	CodeNotFound                = "NOT_FOUND"
	CodeDuplicateBatchNumber    = "DUPLICATE_BATCH_NUMBER"
	CodeDuplicateDrawerCode     = "DUPLICATE_DRAWER_CODE"
	CodeDuplicateEmployeeCode   = "DUPLICATE_EMPLOYEE_CODE"
	CodeBatchAlreadyLoaded      = "BATCH_ALREADY_LOADED"
	CodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	CodeAlreadyDepleted         = "ALREADY_DEPLETED"
	CodeValidationError         = "VALIDATION_ERROR"
	CodeServerError             = "SERVER_ERROR"
)

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, details any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	if details == nil {
		// Clients rely on the key always being present
		details = gin.H{}
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Code: code, Message: msg, Details: details},
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
