package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm é idempotente: confirmar um agendamento já confirmado
// responde sucesso sem mexer de novo em ConfirmedAt.
func Confirm(b *models.Booking, now time.Time) (bool, error) {
	if Status(b.Status) == StatusConfirmed {
		return false, nil
	}
	if Status(b.Status) != StatusPending {
		return false, httperr.ErrBusiness("invalid_state")
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return true, nil
}

func Cancel(b *models.Booking, reason string, now time.Time) error {
	if Status(b.Status).Terminal() {
		return httperr.ErrBusiness("invalid_state")
	}

	b.Status = string(StatusCancelled)
	b.CancelReason = reason
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if Status(b.Status) != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// ===============================
// Autorização
// ===============================

type Role string

const (
	RoleProvider Role = "provider"
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type Actor struct {
	Role Role
	ID   uint
}

// CanMutate: só o cliente dono, o profissional dono ou um admin podem
// transicionar um agendamento.
func CanMutate(b *models.Booking, actor Actor) error {
	switch actor.Role {
	case RoleAdmin:
		return nil
	case RoleProvider:
		if b.ProviderID == actor.ID {
			return nil
		}
	case RoleCustomer:
		if b.CustomerID == actor.ID {
			return nil
		}
	}
	return httperr.ErrBusiness("not_authorized")
}
