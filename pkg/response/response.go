package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/makemate/agency-backend/pkg/validation"
)

// Envelope is the JSON body returned by every public endpoint.
type Envelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Errors    validation.Errors `json:"errors,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func Success(ctx *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, Envelope{
		Success:   true,
		Message:   message,
		RequestID: ctx.GetString("request_id"),
	})
}

func Error(ctx *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	ctx.JSON(status, Envelope{
		Success:   false,
		Message:   message,
		RequestID: ctx.GetString("request_id"),
	})
}

// ValidationFailed writes a 400 carrying every field error.
func ValidationFailed(ctx *gin.Context, errs validation.Errors) {
	ctx.JSON(http.StatusBadRequest, Envelope{
		Success:   false,
		Message:   "Validation error",
		Errors:    errs,
		RequestID: ctx.GetString("request_id"),
	})
}
