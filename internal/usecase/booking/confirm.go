package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type ConfirmBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{repo: repo, audit: audit}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	bookingID uint,
	actor domain.Actor,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanMutate(b, actor); err != nil {
		return nil, err
	}

	now := timezone.NowIn(b.Provider.Timezone)
	changed, err := domain.Confirm(b, now)
	if err != nil {
		return nil, err
	}

	// já estava confirmado → sucesso sem regravar ConfirmedAt
	if !changed {
		return b, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		ProviderID: b.ProviderID,
		ActorID:    &actorID,
		Action:     "booking_confirmed",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
