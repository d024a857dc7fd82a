package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error     string      `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

// Empty is the body of successful requests that return nothing.
var Empty = gin.H{}

// Success writes data as the whole response body.
func Success[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

// Error writes an ErrorBody and aborts the handler chain.
func Error(ctx *gin.Context, status int, message string, details interface{}) ErrorBody {
	if status == 0 {
		status = http.StatusBadRequest
	}
	body := ErrorBody{
		Error:     message,
		RequestID: ctx.GetString("request_id"),
		Details:   details,
	}
	ctx.AbortWithStatusJSON(status, body)
	return body
}
