package sections

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-app/internal/domain/ordering"
	"storefront-app/internal/domain/sections"
)

// Handler serves one section-backed page. The commission and about pages
// each get their own instance over their own table.
type Handler struct {
	svc *sections.Service
}

func NewHandler(svc *sections.Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/commission, GET /api/about — visible sections only.
func (h *Handler) PublicList(c *gin.Context) {
	rows, err := h.svc.List(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sections"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /admin/commission, GET /admin/about — everything, hidden included.
func (h *Handler) List(c *gin.Context) {
	rows, err := h.svc.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sections"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type sectionBody struct {
	SectionType string          `json:"section_type"`
	Title       string          `json:"title"`
	Content     json.RawMessage `json:"content"`
	Visible     *bool           `json:"visible"`
}

// POST /admin/commission, /admin/about
func (h *Handler) Create(c *gin.Context) {
	var body sectionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	visible := true
	if body.Visible != nil {
		visible = *body.Visible
	}
	row, err := h.svc.Create(sections.Input{
		SectionType: body.SectionType,
		Title:       body.Title,
		Content:     body.Content,
		Visible:     visible,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// PUT /admin/commission/:id, /admin/about/:id — the section type is fixed at
// creation; updates carry title, content and visibility.
func (h *Handler) Update(c *gin.Context) {
	var body sectionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	visible := true
	if body.Visible != nil {
		visible = *body.Visible
	}
	row, err := h.svc.Update(c.Param("id"), body.Title, body.Content, visible)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /admin/commission/:id, /admin/about/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /admin/commission/:id/reorder, /admin/about/:id/reorder
func (h *Handler) Reorder(c *gin.Context) {
	var body struct {
		Direction int `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be -1 or 1"})
		return
	}

	if err := h.svc.Reorder(c.Param("id"), body.Direction); err != nil {
		writeError(c, err)
		return
	}

	rows, err := h.svc.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sections"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sections.ErrNotFound), errors.Is(err, ordering.ErrRowMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
	case errors.Is(err, sections.ErrTitleRequired),
		errors.Is(err, sections.ErrUnknownType),
		errors.Is(err, sections.ErrInvalidJSON),
		errors.Is(err, sections.ErrInvalidContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Section operation failed"})
	}
}
