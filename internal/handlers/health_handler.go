package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-boutique/internal/store"
)

// HealthHandler reports whether the document store is reachable.
type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// GET /test
// A failed ping is reported in the body, not as an HTTP failure.
func (h *HealthHandler) Status(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
