package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func seedBooking(repo *fakeRepo, status string) uint {
	date, _ := time.Parse("2006-01-02", futureDate())
	repo.bookings[1] = models.Booking{
		ID:              1,
		ProviderID:      1,
		CustomerID:      10,
		Date:            date,
		StartMinutes:    600,
		DurationMinutes: 30,
		Status:          status,
	}
	repo.nextID = 2
	return 1
}

var providerActor = domain.Actor{ID: 1, Role: domain.RoleProvider}

func TestConfirmBookingIdempotent(t *testing.T) {
	repo := seedRepo()
	id := seedBooking(repo, "pending")
	uc := NewConfirmBooking(repo, nil)

	first, err := uc.Execute(context.Background(), id, providerActor)
	if err != nil {
		t.Fatalf("first confirm error: %v", err)
	}
	if first.Status != "confirmed" || first.ConfirmedAt == nil {
		t.Fatalf("confirm did not apply: %+v", first)
	}

	// reenvio do mesmo comando: sucesso, nada muda
	second, err := uc.Execute(context.Background(), id, providerActor)
	if err != nil {
		t.Fatalf("repeat confirm error: %v", err)
	}
	if !second.ConfirmedAt.Equal(*first.ConfirmedAt) {
		t.Fatalf("ConfirmedAt changed on repeat: %v vs %v",
			second.ConfirmedAt, first.ConfirmedAt)
	}
}

func TestConfirmBookingAuthorization(t *testing.T) {
	repo := seedRepo()
	id := seedBooking(repo, "pending")
	uc := NewConfirmBooking(repo, nil)

	cases := []struct {
		actor domain.Actor
		code  string
	}{
		{domain.Actor{ID: 2, Role: domain.RoleProvider}, "not_authorized"},
		{domain.Actor{ID: 11, Role: domain.RoleCustomer}, "not_authorized"},
	}
	for _, tc := range cases {
		if _, err := uc.Execute(context.Background(), id, tc.actor); !httperr.IsBusiness(err, tc.code) {
			t.Fatalf("actor %+v: err = %v, want %s", tc.actor, err, tc.code)
		}
	}

	// admin confirma qualquer agendamento
	if _, err := uc.Execute(context.Background(), id, domain.Actor{ID: 42, Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("admin confirm error: %v", err)
	}
}

func TestConfirmBookingNotFound(t *testing.T) {
	uc := NewConfirmBooking(seedRepo(), nil)
	if _, err := uc.Execute(context.Background(), 999, providerActor); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("err = %v, want booking_not_found", err)
	}
}

func TestCancelBooking(t *testing.T) {
	repo := seedRepo()
	id := seedBooking(repo, "confirmed")
	uc := NewCancelBooking(repo, nil)

	customer := domain.Actor{ID: 10, Role: domain.RoleCustomer}
	b, err := uc.Execute(context.Background(), id, customer, "imprevisto")
	if err != nil {
		t.Fatalf("cancel error: %v", err)
	}
	if b.Status != "cancelled" || b.CancelReason != "imprevisto" {
		t.Fatalf("cancel did not apply: %+v", b)
	}

	// cancelado é terminal: segundo cancelamento falha
	if _, err := uc.Execute(context.Background(), id, customer, "de novo"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("err = %v, want invalid_state", err)
	}
}

func TestCompleteBooking(t *testing.T) {
	repo := seedRepo()
	id := seedBooking(repo, "confirmed")
	uc := NewCompleteBooking(repo, nil)

	// cliente nunca conclui atendimento
	if _, err := uc.Execute(context.Background(), id, domain.Actor{ID: 10, Role: domain.RoleCustomer}); !httperr.IsBusiness(err, "not_authorized") {
		t.Fatalf("err = %v, want not_authorized", err)
	}

	b, err := uc.Execute(context.Background(), id, providerActor)
	if err != nil {
		t.Fatalf("complete error: %v", err)
	}
	if b.Status != "completed" || b.CompletedAt == nil {
		t.Fatalf("complete did not apply: %+v", b)
	}
}

func TestCompleteBookingFromPending(t *testing.T) {
	repo := seedRepo()
	id := seedBooking(repo, "pending")
	uc := NewCompleteBooking(repo, nil)

	if _, err := uc.Execute(context.Background(), id, providerActor); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("err = %v, want invalid_state", err)
	}
}
