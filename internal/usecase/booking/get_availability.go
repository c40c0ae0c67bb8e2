package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type AvailabilityInput struct {
	ProviderID uint
	Date       string // YYYY-MM-DD
	ServiceIDs []uint
}

type Availability struct {
	Date          string   `json:"date"`
	TotalDuration int      `json:"total_duration"`
	Slots         []string `json:"slots"`
}

type GetAvailability struct {
	repo       domain.Repository
	window     domain.Window
	minAdvance int
}

func NewGetAvailability(
	repo domain.Repository,
	window domain.Window,
	minAdvanceMinutes int,
) *GetAvailability {
	return &GetAvailability{
		repo:       repo,
		window:     window,
		minAdvance: minAdvanceMinutes,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*Availability, error) {

	provider, err := uc.repo.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	services, err := uc.repo.ResolveActiveServices(ctx, in.ProviderID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, httperr.ErrBusiness("no_valid_services")
	}

	var totalDuration int
	for _, s := range services {
		totalDuration += s.DurationMin
	}

	loc := timezone.Location(provider.Timezone)
	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	out := &Availability{
		Date:          in.Date,
		TotalDuration: totalDuration,
		Slots:         []string{},
	}

	// dia já passado → agenda vazia, não é erro
	now := timezone.NowIn(provider.Timezone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if date.Before(today) {
		return out, nil
	}

	busy, err := uc.repo.ListDayIntervals(ctx, in.ProviderID, date)
	if err != nil {
		return nil, err
	}

	// mesma régua de antecedência da criação: horário que a criação
	// recusaria com too_soon nunca é ofertado
	cutoff := now.Add(time.Duration(uc.minAdvance) * time.Minute)

	for slot := range domain.Slots(uc.window, busy, totalDuration) {
		startMinutes, err := domain.ToMinutes(slot)
		if err != nil {
			return nil, err
		}
		if date.Add(time.Duration(startMinutes) * time.Minute).Before(cutoff) {
			continue
		}
		out.Slots = append(out.Slots, slot)
	}

	return out, nil
}
