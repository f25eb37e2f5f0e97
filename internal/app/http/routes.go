package routes

import (
	authapi "storefront-app/internal/api/auth"
	contactapi "storefront-app/internal/api/contact"
	contentapi "storefront-app/internal/api/content"
	galleryapi "storefront-app/internal/api/gallery"
	pastworksapi "storefront-app/internal/api/pastworks"
	productsapi "storefront-app/internal/api/products"
	sectionsapi "storefront-app/internal/api/sections"
	stripewebhooks "storefront-app/internal/api/stripewebhook"
	"storefront-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every API handler the router wires up.
type Handlers struct {
	Auth       *authapi.Handler
	Gallery    *galleryapi.Handler
	Content    *contentapi.Handler
	Commission *sectionsapi.Handler
	About      *sectionsapi.Handler
	PastWorks  *pastworksapi.Handler
	Products   *productsapi.Handler
	Contact    *contactapi.Handler
	Webhook    *stripewebhooks.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	// Stripe needs the raw body for signature checks, so the webhook stays
	// outside the sanitized group.
	r.POST("/webhook", h.Webhook.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public reads
	r.GET("/api/gallery", h.Gallery.List)
	r.GET("/api/content", h.Content.PublicMap)
	r.GET("/api/commission", h.Commission.PublicList)
	r.GET("/api/about", h.About.PublicList)
	r.GET("/api/past-works", h.PastWorks.PublicList)
	r.GET("/api/past-works/:slug", h.PastWorks.PublicGet)
	r.GET("/api/products", h.Products.PublicList)

	// Public writes get input sanitization
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/api/contact", h.Contact.Submit)
	public.POST("/api/checkout", h.Products.CreateCheckoutSession)
	public.POST("/admin/login", h.Auth.Login)

	r.GET("/auth/google", h.Auth.GoogleStart)
	r.GET("/auth/google/callback", h.Auth.GoogleCallback)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/me", h.Auth.Me)

	admin.GET("/gallery", h.Gallery.List)
	admin.POST("/gallery", h.Gallery.Create)
	admin.PUT("/gallery/:id", h.Gallery.Update)
	admin.DELETE("/gallery/:id", h.Gallery.Delete)
	admin.POST("/gallery/:id/reorder", h.Gallery.Reorder)

	admin.GET("/content", h.Content.List)
	admin.PUT("/content", h.Content.Set)

	admin.GET("/commission", h.Commission.List)
	admin.POST("/commission", h.Commission.Create)
	admin.PUT("/commission/:id", h.Commission.Update)
	admin.DELETE("/commission/:id", h.Commission.Delete)
	admin.POST("/commission/:id/reorder", h.Commission.Reorder)

	admin.GET("/about", h.About.List)
	admin.POST("/about", h.About.Create)
	admin.PUT("/about/:id", h.About.Update)
	admin.DELETE("/about/:id", h.About.Delete)
	admin.POST("/about/:id/reorder", h.About.Reorder)

	admin.GET("/past-works", h.PastWorks.List)
	admin.POST("/past-works", h.PastWorks.Create)
	admin.PUT("/past-works/:id", h.PastWorks.Update)
	admin.DELETE("/past-works/:id", h.PastWorks.Delete)
	admin.POST("/past-works/:id/reorder", h.PastWorks.Reorder)

	admin.GET("/products", h.Products.List)
	admin.POST("/products", h.Products.Create)
	admin.PUT("/products/:id", h.Products.Update)
	admin.DELETE("/products/:id", h.Products.Delete)
	admin.POST("/products/:id/reorder", h.Products.Reorder)

	admin.GET("/messages", h.Contact.List)
	admin.DELETE("/messages/:id", h.Contact.Delete)
}
