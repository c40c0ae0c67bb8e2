package booking

import (
	"context"
	"errors"
	"slices"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/gateway"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// Repositório em memória para os testes de use case. A transação
// tira snapshot do estado e restaura em caso de erro, imitando o
// rollback do banco.
type fakeRepo struct {
	providers map[uint]models.Provider
	customers map[uint]models.Customer
	services  map[uint]models.ServiceOffering
	bookings  map[uint]models.Booking
	payments  map[uint]models.Payment
	nextID    uint

	failCreatePayment bool
	createBookingErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		providers: map[uint]models.Provider{},
		customers: map[uint]models.Customer{},
		services:  map[uint]models.ServiceOffering{},
		bookings:  map[uint]models.Booking{},
		payments:  map[uint]models.Payment{},
		nextID:    1,
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) GetProvider(_ context.Context, id uint) (*models.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &p, nil
}

func (r *fakeRepo) GetCustomer(_ context.Context, id uint) (*models.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &c, nil
}

func (r *fakeRepo) ResolveActiveServices(
	_ context.Context,
	providerID uint,
	serviceIDs []uint,
) ([]models.ServiceOffering, error) {
	var out []models.ServiceOffering
	for _, id := range serviceIDs {
		s, ok := r.services[id]
		if ok && s.ProviderID == providerID && s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createBookingErr != nil {
		return r.createBookingErr
	}
	b.ID = r.nextID
	r.nextID++
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	if r.failCreatePayment {
		return errors.New("payment insert failed")
	}
	p.ID = r.nextID
	r.nextID++
	r.payments[p.ID] = *p
	return nil
}

func (r *fakeRepo) AssertNoConflict(
	_ context.Context,
	providerID uint,
	date time.Time,
	startMinutes int,
	durationMinutes int,
) error {
	day := date.Format("2006-01-02")
	for _, b := range r.bookings {
		if b.ProviderID != providerID || b.Date.Format("2006-01-02") != day {
			continue
		}
		if !domain.Status(b.Status).HoldsSlot() {
			continue
		}
		if startMinutes < b.StartMinutes+b.DurationMinutes &&
			startMinutes+durationMinutes > b.StartMinutes {
			return httperr.ErrBusiness("slot_already_booked")
		}
	}
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	if p, ok := r.providers[b.ProviderID]; ok {
		b.Provider = p
	}
	return &b, nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return errors.New("record not found")
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeRepo) ListDayIntervals(
	_ context.Context,
	providerID uint,
	date time.Time,
) ([]domain.Interval, error) {
	day := date.Format("2006-01-02")
	var out []domain.Interval
	for _, b := range r.bookings {
		if b.ProviderID != providerID || b.Date.Format("2006-01-02") != day {
			continue
		}
		if !domain.Status(b.Status).HoldsSlot() {
			continue
		}
		out = append(out, domain.Interval{
			Start: b.StartMinutes,
			End:   b.StartMinutes + b.DurationMinutes,
		})
	}
	slices.SortFunc(out, func(a, b domain.Interval) int { return a.Start - b.Start })
	return out, nil
}

func (r *fakeRepo) ListBookingsForDay(
	_ context.Context,
	providerID uint,
	date time.Time,
) ([]models.Booking, error) {
	day := date.Format("2006-01-02")
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date.Format("2006-01-02") == day {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForCustomer(
	_ context.Context,
	customerID uint,
) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) InTransaction(
	_ context.Context,
	fn func(domain.Repository) error,
) error {
	bookings := make(map[uint]models.Booking, len(r.bookings))
	for k, v := range r.bookings {
		bookings[k] = v
	}
	payments := make(map[uint]models.Payment, len(r.payments))
	for k, v := range r.payments {
		payments[k] = v
	}
	nextID := r.nextID

	if err := fn(r); err != nil {
		r.bookings = bookings
		r.payments = payments
		r.nextID = nextID
		return err
	}
	return nil
}

// Gateway fake: aprova ou recusa conforme configurado.
type fakeGateway struct {
	paymentStatus string
	paymentAmount float64
}

var _ gateway.Client = (*fakeGateway)(nil)

func (g *fakeGateway) InitMandate(_ context.Context, _, reference string) (string, error) {
	return "sub-" + reference, nil
}

func (g *fakeGateway) VerifyPayment(_ context.Context, reference string) (*gateway.PaymentInfo, error) {
	status := g.paymentStatus
	if status == "" {
		status = gateway.StatusApproved
	}
	amount := g.paymentAmount
	if amount == 0 {
		amount = 100
	}
	return &gateway.PaymentInfo{
		ExternalID: reference,
		Amount:     amount,
		Status:     status,
	}, nil
}
