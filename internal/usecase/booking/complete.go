package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{repo: repo, audit: audit}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	actor domain.Actor,
) (*models.Booking, error) {

	// cliente não conclui atendimento; só profissional ou admin
	if actor.Role == domain.RoleCustomer {
		return nil, httperr.ErrBusiness("not_authorized")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanMutate(b, actor); err != nil {
		return nil, err
	}

	now := timezone.NowIn(b.Provider.Timezone)
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		ProviderID: b.ProviderID,
		ActorID:    &actorID,
		Action:     "booking_completed",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
