package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC          *ucBooking.CreateBooking
	confirmUC         *ucBooking.ConfirmBooking
	cancelUC          *ucBooking.CancelBooking
	completeUC        *ucBooking.CompleteBooking
	listByDateUC      *ucBooking.ListBookingsByDate
	listForCustomerUC *ucBooking.ListBookingsForCustomer
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	listByDateUC *ucBooking.ListBookingsByDate,
	listForCustomerUC *ucBooking.ListBookingsForCustomer,
) *BookingHandler {
	return &BookingHandler{
		createUC:          createUC,
		confirmUC:         confirmUC,
		cancelUC:          cancelUC,
		completeUC:        completeUC,
		listByDateUC:      listByDateUC,
		listForCustomerUC: listForCustomerUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CustomerID nunca vem do body: sempre da sessão autenticada.
type CreateBookingRequest struct {
	ProviderID       uint   `json:"provider_id" binding:"required"`
	Date             string `json:"date" binding:"required"` // YYYY-MM-DD
	Time             string `json:"time" binding:"required"` // HH:MM
	ServiceIDs       []uint `json:"service_ids" binding:"required,min=1"`
	PaymentReference string `json:"payment_reference"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextActorID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			CustomerID:       customerID,
			ProviderID:       req.ProviderID,
			Date:             req.Date,
			StartTime:        req.Time,
			ServiceIDs:       req.ServiceIDs,
			PaymentReference: req.PaymentReference,
		},
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// STATE TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	id, actor, ok := bookingIDAndActor(c)
	if !ok {
		return
	}

	b, err := h.confirmUC.Execute(c.Request.Context(), id, actor)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, actor, ok := bookingIDAndActor(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.cancelUC.Execute(c.Request.Context(), id, actor, req.Reason)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id, actor, ok := bookingIDAndActor(c)
	if !ok {
		return
	}

	b, err := h.completeUC.Execute(c.Request.Context(), id, actor)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// LISTS
// ======================================================

func (h *BookingHandler) ListForProvider(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextActorID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), providerID, dateStr)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.List(c, toBookingListDTOs(bookings))
}

func (h *BookingHandler) ListForCustomer(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextActorID).(uint)

	bookings, err := h.listForCustomerUC.Execute(c.Request.Context(), customerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// HELPERS
// ======================================================

func bookingIDAndActor(c *gin.Context) (uint, domain.Actor, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Agendamento inválido.")
		return 0, domain.Actor{}, false
	}

	actor := domain.Actor{
		Role: domain.Role(c.GetString(middleware.ContextRole)),
		ID:   c.MustGet(middleware.ContextActorID).(uint),
	}

	return uint(id), actor, true
}

func toBookingListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		item := dto.BookingListDTO{
			ID:           b.ID,
			Date:         b.Date.Format("2006-01-02"),
			Start:        domain.ToTimeOfDay(b.StartMinutes),
			End:          domain.ToTimeOfDay(b.StartMinutes + b.DurationMinutes),
			Status:       b.Status,
			CustomerName: b.Customer.Name,
			TotalAmount:  b.TotalAmount,
		}
		for _, it := range b.Items {
			item.Services = append(item.Services, it.ServiceOffering.Name)
		}
		out = append(out, item)
	}
	return out
}

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_already_booked"):
		httperr.Conflict(c, "slot_already_booked", "Horário já reservado.")
	case httperr.IsBusiness(err, "no_valid_services"):
		httperr.BadRequest(c, "no_valid_services", "Nenhum serviço válido informado.")
	case httperr.IsBusiness(err, "provider_not_found"):
		httperr.NotFound(c, "provider_not_found", "Profissional não encontrado.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "customer_not_found"):
		httperr.BadRequest(c, "customer_not_found", "Cliente não encontrado.")
	case httperr.IsBusiness(err, "malformed_time"):
		httperr.BadRequest(c, "malformed_time", "Hora inválida.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Fora do horário de atendimento.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário muito em cima da hora.")
	case httperr.IsBusiness(err, "provider_unavailable"):
		httperr.BadRequest(c, "provider_unavailable", "Profissional indisponível.")
	case httperr.IsBusiness(err, "subscription_inactive"):
		httperr.Forbidden(c, "subscription_inactive", "Assinatura do profissional inativa.")
	case httperr.IsBusiness(err, "payment_not_approved"):
		httperr.BadRequest(c, "payment_not_approved", "Pagamento não aprovado.")
	case httperr.IsBusiness(err, "payment_amount_mismatch"):
		httperr.BadRequest(c, "payment_amount_mismatch", "Valor pago não cobre o total dos serviços.")
	case httperr.IsBusiness(err, "invalid_payment_reference"):
		httperr.BadRequest(c, "invalid_payment_reference", "Referência de pagamento inválida.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
	case httperr.IsBusiness(err, "not_authorized"):
		httperr.Forbidden(c, "not_authorized", "Ação não permitida para este usuário.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
