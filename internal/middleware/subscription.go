package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain/subscription"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// SubscriptionGate bloqueia escrita de profissional cuja assinatura
// não esteja em trial ou active. Roda depois do AuthMiddleware em
// rotas de papel provider.
func SubscriptionGate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID := c.MustGet(ContextActorID).(uint)

		var p models.Provider
		if err := db.First(&p, providerID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "provider_not_found"})
			return
		}

		if !subscription.CanWrite(subscription.State(p.SubscriptionState)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error_code": "subscription_inactive",
				"message":    "Assinatura inativa. Regularize para continuar.",
			})
			return
		}

		c.Next()
	}
}
