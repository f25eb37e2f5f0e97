package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-app/internal/domain/content"
)

type Handler struct {
	svc *content.Service
}

func NewHandler(svc *content.Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/content — key/value map for the public pages.
func (h *Handler) PublicMap(c *gin.Context) {
	m, err := h.svc.Map()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// GET /admin/content — full rows so the editor can show update times.
func (h *Handler) List(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /admin/content {"key": "...", "value": "..."}
func (h *Handler) Set(c *gin.Context) {
	var body struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	row, err := h.svc.Set(body.Key, body.Value)
	if err != nil {
		if errors.Is(err, content.ErrKeyMissing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content"})
		return
	}
	c.JSON(http.StatusOK, row)
}
