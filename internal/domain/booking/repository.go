package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	// -------- Provider / Customer --------
	GetProvider(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	GetCustomer(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	// -------- Catálogo --------
	ResolveActiveServices(
		ctx context.Context,
		providerID uint,
		serviceIDs []uint,
	) ([]models.ServiceOffering, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	AssertNoConflict(
		ctx context.Context,
		providerID uint,
		date time.Time,
		startMinutes int,
		durationMinutes int,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------
	ListDayIntervals(
		ctx context.Context,
		providerID uint,
		date time.Time,
	) ([]Interval, error)

	ListBookingsForDay(
		ctx context.Context,
		providerID uint,
		date time.Time,
	) ([]models.Booking, error)

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)

	// -------- Transação --------
	InTransaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
