package handler

import (
	"NoteAPI/pkg/response"

	"github.com/gin-gonic/gin"
)

type Common struct{}

func (h *Common) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/health", h.Health)
}

func (h *Common) Health(c *gin.Context) {
	response.Success(c, "API is healthy", nil)
}
