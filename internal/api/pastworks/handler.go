package pastworks

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-app/internal/api/form"
	"storefront-app/internal/domain/ordering"
	"storefront-app/internal/domain/pastworks"
)

type Handler struct {
	svc *pastworks.Service
}

func NewHandler(svc *pastworks.Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/past-works — visible builds only.
func (h *Handler) PublicList(c *gin.Context) {
	works, err := h.svc.List(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load past works"})
		return
	}
	c.JSON(http.StatusOK, works)
}

// GET /api/past-works/:slug
func (h *Handler) PublicGet(c *gin.Context) {
	w, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// GET /admin/past-works
func (h *Handler) List(c *gin.Context) {
	works, err := h.svc.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load past works"})
		return
	}
	c.JSON(http.StatusOK, works)
}

// POST /admin/past-works (multipart: cover + images[] + fields)
func (h *Handler) Create(c *gin.Context) {
	cover, err := form.File(c, "cover")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}
	images, err := form.Files(c, "images")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	w, err := h.svc.Create(c.Request.Context(), inputFromForm(c), cover, images)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// PUT /admin/past-works/:id (multipart; cover and images optional,
// remove_images is a repeated field of gallery image URLs to drop)
func (h *Handler) Update(c *gin.Context) {
	cover, err := form.File(c, "cover")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}
	images, err := form.Files(c, "images")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	w, err := h.svc.Update(c.Request.Context(), c.Param("id"), inputFromForm(c), cover, images, c.PostFormArray("remove_images"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// DELETE /admin/past-works/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /admin/past-works/:id/reorder
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

	works, err := h.svc.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load past works"})
		return
	}
	c.JSON(http.StatusOK, works)
}

func inputFromForm(c *gin.Context) pastworks.Input {
	in := pastworks.Input{
		Title:       c.PostForm("title"),
		Slug:        c.PostForm("slug"),
		Description: c.PostForm("description"),
		SpecsJSON:   c.DefaultPostForm("specs", "{}"),
		Visible:     c.DefaultPostForm("visible", "true") != "false",
	}
	for _, tag := range strings.Split(c.PostForm("tags"), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			in.Tags = append(in.Tags, tag)
		}
	}
	if raw := c.PostForm("completed_at"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			in.CompletedAt = &t
		}
	}
	return in
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pastworks.ErrNotFound), errors.Is(err, ordering.ErrRowMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "Past work not found"})
	case errors.Is(err, pastworks.ErrTitleRequired),
		errors.Is(err, pastworks.ErrInvalidSpecs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pastworks.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Past work operation failed"})
	}
}
