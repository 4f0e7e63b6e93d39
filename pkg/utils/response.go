package utils

import (
	"github.com/gin-gonic/gin"

	appErrors "rentease/pkg/errors"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorBody{
			Code:    appErrors.CodeInternal,
			Message: message,
		},
	})
}

// AppErrorResponse writes a structured error with its machine-readable code,
// deriving the HTTP status from the error kind.
func AppErrorResponse(c *gin.Context, err error) {
	c.JSON(appErrors.HTTPStatus(err), Response{
		Success: false,
		Error: &ErrorBody{
			Code:    appErrors.CodeOf(err),
			Message: err.Error(),
		},
	})
}
