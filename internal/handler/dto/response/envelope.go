package response

import (
	domload "trolley-inventory/internal/domain/load"

	"github.com/gin-gonic/gin"
)

const (
	statusSuccess     = "success"
	statusWithWarning = "success_with_warning"
)

type Envelope struct {
	Status  string                   `json:"status"`
	Data    any                      `json:"data"`
	Warning *domload.StackingWarning `json:"warning,omitempty"`
}

func Success(c *gin.Context, httpStatus int, data any) {
	c.JSON(httpStatus, Envelope{Status: statusSuccess, Data: data})
}

// SuccessWithWarning reports 207: the write succeeded but the advisory
// stacking payload rides along for the client to surface.
func SuccessWithWarning(c *gin.Context, httpStatus int, data any, warning *domload.StackingWarning) {
	c.JSON(httpStatus, Envelope{Status: statusWithWarning, Data: data, Warning: warning})
}
