package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER — vitrine pública (catálogo + horários)
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucBooking.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucBooking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
	}
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	providerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Profissional inválido.")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, providerID).Error; err != nil {
		httperr.NotFound(c, "provider_not_found", "Profissional não encontrado.")
		return
	}

	var services []models.ServiceOffering
	if err := h.db.
		Where("provider_id = ? AND active = true", providerID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": gin.H{
			"id":           provider.ID,
			"name":         provider.Name,
			"is_available": provider.IsAvailable,
		},
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	providerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Profissional inválido.")
		return
	}

	dateStr := c.Query("date")
	serviceIDsStr := c.Query("service_ids")

	if dateStr == "" || serviceIDsStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviços obrigatórios.")
		return
	}

	serviceIDs, err := parseServiceIDs(serviceIDsStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_ids", "Serviços inválidos.")
		return
	}

	out, err := h.availabilityUC.Execute(
		c.Request.Context(),
		ucBooking.AvailabilityInput{
			ProviderID: uint(providerID),
			Date:       dateStr,
			ServiceIDs: serviceIDs,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "provider_not_found"):
			httperr.NotFound(c, "provider_not_found", "Profissional não encontrado.")
		case httperr.IsBusiness(err, "no_valid_services"):
			httperr.BadRequest(c, "no_valid_services", "Nenhum serviço válido informado.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		default:
			httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		}
		return
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

// "1,2,3" → []uint{1,2,3}
func parseServiceIDs(raw string) ([]uint, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, strconv.ErrSyntax
	}
	return ids, nil
}
