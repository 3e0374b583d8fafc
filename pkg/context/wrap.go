package context

import (
	"NoteAPI/pkg/errs"
	"NoteAPI/pkg/response"

	"github.com/gin-gonic/gin"
)

type HandlerFunc func(*gin.Context) error

// Wrap 把返回 error 的 handler 适配为 gin.HandlerFunc，错误按分类映射 HTTP 状态码
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			_ = c.Error(err)
			response.Fail(c, errs.HTTPStatus(errs.CodeOf(err)), err.Error())
		}
	}
}
