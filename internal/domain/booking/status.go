package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal: nenhuma transição definida a partir destes estados.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// HoldsSlot indica se o agendamento ainda segura o intervalo de tempo
// para fins de conflito (cancelados liberam o horário).
func (s Status) HoldsSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

func InitialStatus(paid bool) Status {
	if paid {
		return StatusConfirmed
	}
	return StatusPending
}
