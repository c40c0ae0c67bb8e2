package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestConfirmIdempotent(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	changed, err := Confirm(b, first)
	if err != nil || !changed {
		t.Fatalf("first confirm: changed=%v err=%v", changed, err)
	}
	if b.ConfirmedAt == nil || !b.ConfirmedAt.Equal(first) {
		t.Fatalf("ConfirmedAt not set: %v", b.ConfirmedAt)
	}

	changed, err = Confirm(b, first.Add(time.Hour))
	if err != nil {
		t.Fatalf("second confirm error: %v", err)
	}
	if changed {
		t.Fatalf("second confirm should be a no-op")
	}
	if !b.ConfirmedAt.Equal(first) {
		t.Fatalf("ConfirmedAt mutated on repeat confirm: %v", b.ConfirmedAt)
	}
}

func TestConfirmFromTerminal(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		b := &models.Booking{Status: string(status)}
		if _, err := Confirm(b, time.Now()); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("confirm from %s = %v, want invalid_state", status, err)
		}
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusPending, StatusConfirmed} {
		b := &models.Booking{Status: string(status)}
		if err := Cancel(b, "cliente desistiu", now); err != nil {
			t.Fatalf("cancel from %s error: %v", status, err)
		}
		if b.Status != string(StatusCancelled) || b.CancelledAt == nil {
			t.Fatalf("cancel did not apply: %+v", b)
		}
		if b.CancelReason != "cliente desistiu" {
			t.Fatalf("reason not recorded: %q", b.CancelReason)
		}
	}

	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		b := &models.Booking{Status: string(status)}
		if err := Cancel(b, "", now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("cancel from %s = %v, want invalid_state", status, err)
		}
	}
}

func TestComplete(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusConfirmed)}
	if err := Complete(b, now); err != nil {
		t.Fatalf("complete error: %v", err)
	}
	if b.Status != string(StatusCompleted) || b.CompletedAt == nil {
		t.Fatalf("complete did not apply: %+v", b)
	}

	for _, status := range []Status{StatusPending, StatusCancelled, StatusCompleted} {
		b := &models.Booking{Status: string(status)}
		if err := Complete(b, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("complete from %s = %v, want invalid_state", status, err)
		}
	}
}

func TestCanMutate(t *testing.T) {
	b := &models.Booking{ProviderID: 7, CustomerID: 3}

	allowed := []Actor{
		{Role: RoleAdmin, ID: 99},
		{Role: RoleProvider, ID: 7},
		{Role: RoleCustomer, ID: 3},
	}
	for _, actor := range allowed {
		if err := CanMutate(b, actor); err != nil {
			t.Fatalf("CanMutate(%+v) = %v, want nil", actor, err)
		}
	}

	denied := []Actor{
		{Role: RoleProvider, ID: 8},
		{Role: RoleCustomer, ID: 4},
		{Role: "unknown", ID: 7},
	}
	for _, actor := range denied {
		if err := CanMutate(b, actor); !httperr.IsBusiness(err, "not_authorized") {
			t.Fatalf("CanMutate(%+v) = %v, want not_authorized", actor, err)
		}
	}
}

func TestStatusFlags(t *testing.T) {
	if !StatusCancelled.Terminal() || !StatusCompleted.Terminal() {
		t.Fatalf("terminal states wrong")
	}
	if StatusPending.Terminal() || StatusConfirmed.Terminal() {
		t.Fatalf("non-terminal states wrong")
	}
	if !StatusPending.HoldsSlot() || !StatusConfirmed.HoldsSlot() {
		t.Fatalf("holds-slot states wrong")
	}
	if StatusCancelled.HoldsSlot() || StatusCompleted.HoldsSlot() {
		t.Fatalf("cancelled/completed should release the slot")
	}
}
