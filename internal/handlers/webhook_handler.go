package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/cache"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/subscription"
	"github.com/BruksfildServices01/salon-booking/internal/gateway"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	ucSubscription "github.com/BruksfildServices01/salon-booking/internal/usecase/subscription"
)

////////////////////////////////////////////////////////
// HANDLER — eventos assíncronos do gateway
////////////////////////////////////////////////////////

type WebhookHandler struct {
	config *config.Config
	dedup  *cache.EventDedup
	uc     *ucSubscription.ProcessGatewayEvent
}

func NewWebhookHandler(
	cfg *config.Config,
	dedup *cache.EventDedup,
	uc *ucSubscription.ProcessGatewayEvent,
) *WebhookHandler {
	return &WebhookHandler{
		config: cfg,
		dedup:  dedup,
		uc:     uc,
	}
}

type SubscriptionEventRequest struct {
	ID   string `json:"id"`
	Type string `json:"type" binding:"required"`
	Data struct {
		ID string `json:"id"`
	} `json:"data" binding:"required"`
	DateCreated string `json:"date_created"`
}

// SubscriptionEvent aceita sempre com 200 depois de verificada a
// assinatura: id desconhecido, reentrega e evento atrasado são no-op.
func (h *WebhookHandler) SubscriptionEvent(c *gin.Context) {
	var req SubscriptionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Payload inválido.")
		return
	}

	if !gateway.VerifySignature(
		h.config.MPWebhookSecret,
		c.GetHeader("x-signature"),
		c.GetHeader("x-request-id"),
		req.Data.ID,
	) {
		httperr.BadRequest(c, "invalid_signature", "Assinatura do webhook inválida.")
		return
	}

	// dedup best-effort: se o redis falhar, processamos mesmo assim
	// (o use case já é idempotente)
	eventID := req.ID
	if eventID == "" {
		eventID = c.GetHeader("x-request-id")
	}
	if eventID != "" {
		first, err := h.dedup.FirstDelivery(c.Request.Context(), eventID)
		if err == nil && !first {
			c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
		if err != nil {
			log.Println("webhook dedup error:", err)
		}
	}

	eventType := domain.EventType(req.Type)
	switch eventType {
	case domain.EventMandateAuthorized,
		domain.EventCharged,
		domain.EventChargeFailed,
		domain.EventCancelled:
	default:
		// tipo que não nos interessa → aceita e ignora
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	occurredAt := time.Now().UTC()
	if req.DateCreated != "" {
		if t, err := time.Parse(time.RFC3339, req.DateCreated); err == nil {
			occurredAt = t
		}
	}

	if err := h.uc.Execute(
		c.Request.Context(),
		ucSubscription.GatewayEventInput{
			Type:                   eventType,
			ExternalSubscriptionID: req.Data.ID,
			OccurredAt:             occurredAt,
		},
	); err != nil {
		httperr.Internal(c, "webhook_failed", "Erro ao processar evento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
