package products

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"

	"storefront-app/config"
)

// POST /api/checkout {"product_id": "..."} — creates a one-off payment
// session for an unsold product. The price is resolved server side; the
// client never sends a price id.
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var body struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid product_id"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	p, err := h.svc.CheckoutTarget(body.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}

	appURL := config.APP_URL
	if appURL == "" {
		appURL = "http://localhost:5173"
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(appURL + "/products?success=1"),
		CancelURL:  stripe.String(appURL + "/products?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    p.StripePriceID,
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"product_id": p.ID,
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": sess.URL})
}
