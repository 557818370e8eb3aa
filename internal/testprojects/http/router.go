package http

import "github.com/gin-gonic/gin"

// Register attaches test project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.list)
	rg.GET("/:id", h.get)
	rg.POST("/", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
