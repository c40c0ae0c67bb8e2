package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	providerID uint,
	dateStr string,
) ([]models.Booking, error) {

	provider, err := uc.repo.GetProvider(ctx, providerID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(provider.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListBookingsForDay(ctx, providerID, date)
}

type ListBookingsForCustomer struct {
	repo domain.Repository
}

func NewListBookingsForCustomer(repo domain.Repository) *ListBookingsForCustomer {
	return &ListBookingsForCustomer{repo: repo}
}

func (uc *ListBookingsForCustomer) Execute(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForCustomer(ctx, customerID)
}
