package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusOK    = "OK"
	StatusError = "error"
)

// Response 统一返回信封 {status, message, data}
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Status:  StatusOK,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{
		Status:  StatusError,
		Message: message,
	})
}
