package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{repo: repo, audit: audit}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	actor domain.Actor,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanMutate(b, actor); err != nil {
		return nil, err
	}

	now := timezone.NowIn(b.Provider.Timezone)
	if err := domain.Cancel(b, reason, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		ProviderID: b.ProviderID,
		ActorID:    &actorID,
		Action:     "booking_cancelled",
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata:   map[string]any{"reason": reason},
	})

	return b, nil
}
