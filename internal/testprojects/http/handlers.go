package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/testboard/webapi-backend/internal/storage/postgres"
	"github.com/testboard/webapi-backend/internal/testprojects/domain"
)

// fail maps recognized store errors to their status codes. Anything else is
// attached to the context so the catch-all middleware reports it.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Project not found"})
	case errors.Is(err, postgres.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	case errors.Is(err, postgres.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Database connection error: " + err.Error()})
	default:
		c.Error(err) //nolint:errcheck
		c.Abort()
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body"})
		return
	}

	p, err := h.store.Create(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, projectResp{ID: p.ID, Name: p.Name})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body"})
		return
	}

	if err := h.store.Update(c.Request.Context(), id, req.Name); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully"})
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
