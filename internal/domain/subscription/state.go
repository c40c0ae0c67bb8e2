package subscription

// ===============================
// Subscription State
// ===============================

// Estado da assinatura do profissional. Só trial e active liberam
// operações de escrita autenticadas como profissional.
type State string

const (
	StatePendingMandate State = "pending_mandate"
	StateTrial          State = "trial"
	StateActive         State = "active"
	StateFailed         State = "failed"
	StateCancelled      State = "cancelled"
)

type EventType string

const (
	EventMandateAuthorized EventType = "mandate.authorized"
	EventCharged           EventType = "subscription.charged"
	EventChargeFailed      EventType = "subscription.charge_failed"
	EventCancelled         EventType = "subscription.cancelled"
)

// Transition devolve o próximo estado para o evento recebido. O
// segundo retorno indica se o evento é aplicável no estado atual;
// combinações inválidas viram no-op no webhook, nunca erro.
func Transition(current State, ev EventType) (State, bool) {
	switch ev {
	case EventMandateAuthorized:
		if current == StatePendingMandate {
			return StateTrial, true
		}
	case EventCharged:
		if current == StateTrial || current == StateActive {
			return StateActive, true
		}
	case EventChargeFailed:
		if current == StateTrial || current == StateActive {
			return StateFailed, true
		}
	case EventCancelled:
		if current != StateCancelled {
			return StateCancelled, true
		}
	}
	return current, false
}

func CanWrite(s State) bool {
	return s == StateTrial || s == StateActive
}

func Terminal(s State) bool {
	return s == StateFailed || s == StateCancelled
}
