package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

const dateLayout = "2006-01-02"

// --------------------------------------------------
// Provider / Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetProvider(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var cu models.Customer
	if err := r.db.WithContext(ctx).First(&cu, id).Error; err != nil {
		return nil, err
	}
	return &cu, nil
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

// Ids desconhecidos ou inativos são simplesmente ignorados; quem
// decide se a lista vazia é erro é o use case.
func (r *BookingGormRepository) ResolveActiveServices(
	ctx context.Context,
	providerID uint,
	serviceIDs []uint,
) ([]models.ServiceOffering, error) {

	var services []models.ServiceOffering
	if err := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND active = true AND id IN ?",
			providerID, serviceIDs,
		).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// AssertNoConflict refaz o teste de sobreposição dentro da transação
// de criação, travando as linhas concorrentes (FOR UPDATE) para fechar
// a corrida check-then-insert.
func (r *BookingGormRepository) AssertNoConflict(
	ctx context.Context,
	providerID uint,
	date time.Time,
	startMinutes int,
	durationMinutes int,
) error {

	var conflicts []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"provider_id = ? AND date = ? AND status IN ('pending', 'confirmed') AND start_minutes < ? AND start_minutes + duration_minutes > ?",
			providerID,
			date.Format(dateLayout),
			startMinutes+durationMinutes,
			startMinutes,
		).
		Find(&conflicts).Error; err != nil {
		return err
	}

	if len(conflicts) > 0 {
		return httperr.ErrBusiness("slot_already_booked")
	}

	return nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Customer").
		Preload("Items.ServiceOffering").
		Preload("Payment").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(b).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// Só pending e confirmed seguram horário; cancelados liberam o slot.
func (r *BookingGormRepository) ListDayIntervals(
	ctx context.Context,
	providerID uint,
	date time.Time,
) ([]domain.Interval, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_minutes", "duration_minutes").
		Where(
			"provider_id = ? AND date = ? AND status IN ('pending', 'confirmed')",
			providerID, date.Format(dateLayout),
		).
		Order("start_minutes ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	intervals := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, domain.Interval{
			Start: b.StartMinutes,
			End:   b.StartMinutes + b.DurationMinutes,
		})
	}

	return intervals, nil
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	providerID uint,
	date time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.ServiceOffering").
		Where(
			"provider_id = ? AND date = ?",
			providerID, date.Format(dateLayout),
		).
		Order("start_minutes ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Items.ServiceOffering").
		Where("customer_id = ?", customerID).
		Order("date DESC, start_minutes DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *BookingGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewBookingGormRepository(tx))
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
