package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-app/internal/api/form"
	"storefront-app/internal/domain/gallery"
	"storefront-app/internal/domain/ordering"
)

type Handler struct {
	svc *gallery.Service
}

func NewHandler(svc *gallery.Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/gallery and GET /admin/gallery — the gallery has no hidden rows,
// so both surfaces return the same list.
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /admin/gallery (multipart: image + fields)
func (h *Handler) Create(c *gin.Context) {
	file, err := form.File(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	item, err := h.svc.Create(c.Request.Context(), inputFromForm(c), file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /admin/gallery/:id (multipart; image optional)
func (h *Handler) Update(c *gin.Context) {
	file, err := form.File(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), inputFromForm(c), file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /admin/gallery/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /admin/gallery/:id/reorder {"direction": -1 | 1}
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

	items, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func inputFromForm(c *gin.Context) gallery.Input {
	col, _ := strconv.Atoi(c.PostForm("column_index"))
	return gallery.Input{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Size:        c.DefaultPostForm("size", "medium"),
		ColumnIndex: col,
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gallery.ErrNotFound), errors.Is(err, ordering.ErrRowMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery item not found"})
	case errors.Is(err, gallery.ErrImageRequired), errors.Is(err, gallery.ErrInvalidSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gallery operation failed"})
	}
}
