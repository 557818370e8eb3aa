package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// StatusHandler serves the endpoints that carry no store dependency:
// the root banner, the health check, and the docs redirect.
type StatusHandler struct {
	serviceName string
	version     string
}

func NewStatusHandler(serviceName, version string) *StatusHandler {
	return &StatusHandler{
		serviceName: serviceName,
		version:     version,
	}
}

func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": h.serviceName + " is running",
		"status":  "ok",
		"swagger": "/docs",
		"api":     "/api/test",
	})
}

func (h *StatusHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
	})
}

func (h *StatusHandler) SwaggerRedirect(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/docs")
}

func (h *StatusHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.HealthCheck)
	r.GET("/swagger", h.SwaggerRedirect)
}
