package stripewebhooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/webhook"

	"storefront-app/config"
	"storefront-app/internal/domain/products"
)

type Handler struct {
	products *products.Service
}

func NewHandler(products *products.Service) *Handler {
	return &Handler{products: products}
}

// POST /webhook — Stripe event sink. Only checkout.session.completed is
// acted on; everything else is acknowledged so Stripe stops retrying.
func (h *Handler) StripeWebhook(c *gin.Context) {
	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_SECRET_KEY not configured"})
		return
	}

	endpointSecret := config.STRIPE_WEBHOOK_SECRET
	if endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		fmt.Println("❌ Stripe signature verification failed:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		if err := h.handleCheckoutCompleted(&session); err != nil {
			if errors.Is(err, products.ErrNotFound) {
				// Not retryable; acknowledge and move on.
				c.JSON(http.StatusOK, gin.H{"status": "ignored"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return

	default:
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
}

// handleCheckoutCompleted marks the bought product sold. The product id set
// as session metadata at checkout time is preferred; older sessions fall
// back to matching the line item's price id.
func (h *Handler) handleCheckoutCompleted(session *stripe.CheckoutSession) error {
	if id := session.Metadata["product_id"]; id != "" {
		return h.products.MarkSold(id)
	}

	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{stripe.String("line_items")},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}
	if fullSession.LineItems == nil || len(fullSession.LineItems.Data) == 0 || fullSession.LineItems.Data[0].Price == nil {
		return errors.New("checkout session has no line items")
	}

	return h.products.MarkSoldByPriceID(fullSession.LineItems.Data[0].Price.ID)
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
