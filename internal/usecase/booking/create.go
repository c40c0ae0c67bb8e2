package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/domain/subscription"
	"github.com/BruksfildServices01/salon-booking/internal/gateway"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	ProviderID uint

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM

	ServiceIDs []uint

	// Fluxo pré-pago: id do pagamento já feito no gateway.
	PaymentReference string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo       domain.Repository
	gateway    gateway.Client
	window     domain.Window
	minAdvance int
	audit      *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	gw gateway.Client,
	window domain.Window,
	minAdvanceMinutes int,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:       repo,
		gateway:    gw,
		window:     window,
		minAdvance: minAdvanceMinutes,
		audit:      audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Profissional (disponível e com assinatura ativa)
	// --------------------------------------------------
	provider, err := uc.repo.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	if !provider.IsAvailable {
		return nil, httperr.ErrBusiness("provider_unavailable")
	}

	if !subscription.CanWrite(subscription.State(provider.SubscriptionState)) {
		return nil, httperr.ErrBusiness("subscription_inactive")
	}

	// --------------------------------------------------
	// 2. Cliente
	// --------------------------------------------------
	if _, err := uc.repo.GetCustomer(ctx, in.CustomerID); err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	// --------------------------------------------------
	// 3. Data / hora
	// --------------------------------------------------
	startMinutes, err := domain.ToMinutes(in.StartTime)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(provider.Timezone)
	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 4. Serviços (preço e duração congelados aqui)
	// --------------------------------------------------
	services, err := uc.repo.ResolveActiveServices(ctx, in.ProviderID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, httperr.ErrBusiness("no_valid_services")
	}

	var totalDuration int
	var totalAmount float64
	for _, s := range services {
		totalDuration += s.DurationMin
		totalAmount += s.Price
	}

	// --------------------------------------------------
	// 5. Janela de atendimento + antecedência mínima
	// --------------------------------------------------
	if startMinutes < uc.window.StartMinutes ||
		startMinutes+totalDuration > uc.window.EndMinutes {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	startAt := date.Add(time.Duration(startMinutes) * time.Minute)
	now := timezone.NowIn(provider.Timezone)
	if startAt.Before(now.Add(time.Duration(uc.minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 6. Pagamento pré-pago (verificado fora da transação)
	// --------------------------------------------------
	var paid *gateway.PaymentInfo
	if in.PaymentReference != "" {
		info, err := uc.gateway.VerifyPayment(ctx, in.PaymentReference)
		if err != nil {
			return nil, err
		}
		if info.Status != gateway.StatusApproved {
			return nil, httperr.ErrBusiness("payment_not_approved")
		}
		// pagamento aprovado mas menor que o total não confirma nada
		if info.Amount < totalAmount {
			return nil, httperr.ErrBusiness("payment_amount_mismatch")
		}
		paid = info
	}

	// --------------------------------------------------
	// 7. Unidade atômica: re-checa conflito e grava tudo.
	// O FOR UPDATE do AssertNoConflict fecha a corrida
	// check-then-insert; a constraint de exclusão do banco
	// segura o que escapar.
	// --------------------------------------------------
	var created *models.Booking

	err = uc.repo.InTransaction(ctx, func(txRepo domain.Repository) error {

		if err := txRepo.AssertNoConflict(
			ctx,
			in.ProviderID,
			date,
			startMinutes,
			totalDuration,
		); err != nil {
			return err
		}

		items := make([]models.BookingLineItem, 0, len(services))
		for _, s := range services {
			items = append(items, models.BookingLineItem{
				ServiceOfferingID: s.ID,
				Price:             s.Price,
				DurationMin:       s.DurationMin,
			})
		}

		b := &models.Booking{
			ProviderID:      in.ProviderID,
			CustomerID:      in.CustomerID,
			Date:            date,
			StartMinutes:    startMinutes,
			DurationMinutes: totalDuration,
			TotalAmount:     totalAmount,
			Status:          string(domain.InitialStatus(paid != nil)),
			Items:           items,
		}
		if paid != nil {
			b.ConfirmedAt = &now
		}

		if err := txRepo.CreateBooking(ctx, b); err != nil {
			return err
		}

		if paid != nil {
			// registra o valor informado pelo gateway, não o calculado
			if err := txRepo.CreatePayment(ctx, &models.Payment{
				BookingID:  b.ID,
				Amount:     paid.Amount,
				ExternalID: paid.ExternalID,
				Gateway:    "mercadopago",
				Status:     "completed",
			}); err != nil {
				return err
			}
		}

		created = b
		return nil
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("slot_already_booked")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 8. Auditoria + retorno hidratado
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &created.ID,
	})

	return uc.repo.GetBooking(ctx, created.ID)
}
