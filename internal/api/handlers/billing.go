package handlers

import (
	"io"
	"net/http"

	"psicomapa-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody caps Stripe payloads
const maxWebhookBody = int64(65536)

// BillingHandler handles plans, checkout and the Stripe webhook
type BillingHandler struct {
	service service.BillingServiceInterface
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(service service.BillingServiceInterface) *BillingHandler {
	return &BillingHandler{service: service}
}

// ListPlans handles GET /api/v1/plans
// @Summary Plan catalogue
// @Tags billing
// @Produce json
// @Success 200 {array} service.Plan
// @Router /api/v1/plans [get]
func (h *BillingHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.service.Plans()})
}

// CreateCheckout handles POST /api/v1/billing/checkout
// @Summary Start a subscription checkout
// @Description accept_terms must be true
// @Tags billing
// @Accept json
// @Produce json
// @Param checkout body service.CheckoutRequest true "Plan and terms acceptance"
// @Success 200 {object} service.CheckoutResponse
// @Failure 400 {object} ErrorResponse "Terms not accepted"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 503 {object} ErrorResponse "Stripe not configured"
// @Security BearerAuth
// @Router /api/v1/billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var req service.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateCheckout(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err, "create checkout session")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSubscription handles GET /api/v1/billing/subscription
// @Summary Billing state of the organization
// @Tags billing
// @Produce json
// @Param organization_id query string false "Organization (platform admins only)"
// @Success 200 {object} service.SubscriptionResponse
// @Failure 404 {object} ErrorResponse "No subscription"
// @Security BearerAuth
// @Router /api/v1/billing/subscription [get]
func (h *BillingHandler) GetSubscription(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	orgID, ok := organizationQuery(c)
	if !ok {
		return
	}

	sub, err := h.service.GetSubscription(identity, orgID)
	if err != nil {
		respondError(c, err, "get subscription")
		return
	}

	c.JSON(http.StatusOK, sub)
}

// StripeWebhook handles POST /api/webhooks/stripe
// @Summary Stripe webhook receiver
// @Description Verifies the Stripe-Signature header. Redeliveries are acknowledged with duplicate=true.
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} service.WebhookResult
// @Failure 400 {object} ErrorResponse "Invalid signature"
// @Failure 500 {object} ErrorResponse "Processing failed, Stripe will retry"
// @Router /api/webhooks/stripe [post]
func (h *BillingHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Failed to read request body", "details": err.Error()})
		return
	}

	result, err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		respondError(c, err, "process webhook")
		return
	}

	c.JSON(http.StatusOK, result)
}
