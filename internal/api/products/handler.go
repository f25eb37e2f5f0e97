package products

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-app/internal/api/form"
	"storefront-app/internal/domain/ordering"
	"storefront-app/internal/domain/products"
)

type Handler struct {
	svc *products.Service
}

func NewHandler(svc *products.Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/products — sold items stay listed so the page can badge them.
func (h *Handler) PublicList(c *gin.Context) {
	items, err := h.svc.List(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /admin/products
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /admin/products (multipart: image + fields)
func (h *Handler) Create(c *gin.Context) {
	image, err := form.File(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), inputFromForm(c), image)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PUT /admin/products/:id
func (h *Handler) Update(c *gin.Context) {
	image, err := form.File(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), inputFromForm(c), image)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /admin/products/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /admin/products/:id/reorder
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

	items, err := h.svc.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func inputFromForm(c *gin.Context) products.Input {
	cents, _ := strconv.ParseInt(c.PostForm("price_cents"), 10, 64)
	return products.Input{
		Name:          c.PostForm("name"),
		Description:   c.PostForm("description"),
		PriceCents:    cents,
		StripePriceID: c.PostForm("stripe_price_id"),
		Visible:       c.DefaultPostForm("visible", "true") != "false",
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, products.ErrNotFound), errors.Is(err, ordering.ErrRowMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, products.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, products.ErrSold):
		c.JSON(http.StatusConflict, gin.H{"error": "This product has already been sold"})
	case errors.Is(err, products.ErrNoCheckout):
		c.JSON(http.StatusConflict, gin.H{"error": "This product cannot be purchased online"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product operation failed"})
	}
}
